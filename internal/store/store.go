// Package store is the SQLite-backed persistence layer: a read-through
// metadata cache with TTL expiry and durable storage for finished
// presentations. Cached metadata is immutable once written; writes are
// last-writer-wins and expiry is checked on read.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"slidesmith/internal/core"
)

// Store wraps the SQLite database holding the cache and presentations.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "slidesmith.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	metadataTable := `
	CREATE TABLE IF NOT EXISTS metadata_cache (
		url TEXT PRIMARY KEY,
		payload TEXT,
		fetched_at DATETIME
	);`

	presentationsTable := `
	CREATE TABLE IF NOT EXISTS presentations (
		id TEXT PRIMARY KEY,
		title TEXT,
		mode TEXT,
		language TEXT,
		payload TEXT,
		created_at DATETIME
	);`

	for _, table := range []string{metadataTable, presentationsTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetMetadata returns the cached metadata for url, or nil on a miss.
// Entries older than maxAge are treated as misses.
func (s *Store) GetMetadata(url string, maxAge time.Duration) (*core.RepositoryMetadata, error) {
	query := `SELECT payload FROM metadata_cache WHERE url = ? AND fetched_at > ?`
	cutoff := time.Now().UTC().Add(-maxAge)

	var payload string
	err := s.db.QueryRow(query, url, cutoff).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata cache: %w", err)
	}

	var meta core.RepositoryMetadata
	if err := json.Unmarshal([]byte(payload), &meta); err != nil {
		return nil, fmt.Errorf("failed to decode cached metadata: %w", err)
	}
	return &meta, nil
}

// PutMetadata stores metadata under its URL, replacing any older entry.
func (s *Store) PutMetadata(url string, meta *core.RepositoryMetadata) error {
	payload, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	query := `INSERT OR REPLACE INTO metadata_cache (url, payload, fetched_at) VALUES (?, ?, ?)`
	_, err = s.db.Exec(query, url, string(payload), time.Now().UTC())
	return err
}

// SavePresentation persists a finished deck keyed by its id.
func (s *Store) SavePresentation(p *core.SlidePresentation) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode presentation: %w", err)
	}

	query := `
	INSERT OR REPLACE INTO presentations (id, title, mode, language, payload, created_at)
	VALUES (?, ?, ?, ?, ?, ?)`
	_, err = s.db.Exec(query, p.ID, p.Title, string(p.Mode), string(p.Language), string(payload), p.CreatedAt)
	return err
}

// GetPresentation loads a stored deck by id, or nil when absent.
func (s *Store) GetPresentation(id string) (*core.SlidePresentation, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM presentations WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read presentation: %w", err)
	}

	var p core.SlidePresentation
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to decode presentation: %w", err)
	}
	return &p, nil
}

// FindPresentation loads a stored deck by id or id prefix, newest
// first when the prefix is ambiguous. Returns nil when nothing matches.
func (s *Store) FindPresentation(prefix string) (*core.SlidePresentation, error) {
	var payload string
	err := s.db.QueryRow(
		`SELECT payload FROM presentations WHERE id = ? OR id LIKE ? ORDER BY created_at DESC LIMIT 1`,
		prefix, prefix+"%",
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read presentation: %w", err)
	}

	var p core.SlidePresentation
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to decode presentation: %w", err)
	}
	return &p, nil
}

// PresentationSummary is a row in the stored deck listing.
type PresentationSummary struct {
	ID        string
	Title     string
	Mode      string
	Language  string
	CreatedAt time.Time
}

// ListPresentations returns stored decks, newest first.
func (s *Store) ListPresentations() ([]PresentationSummary, error) {
	rows, err := s.db.Query(`SELECT id, title, mode, language, created_at FROM presentations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list presentations: %w", err)
	}
	defer rows.Close()

	var out []PresentationSummary
	for rows.Next() {
		var p PresentationSummary
		if err := rows.Scan(&p.ID, &p.Title, &p.Mode, &p.Language, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan presentation row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CacheStats reports cache contents for the cache command.
type CacheStats struct {
	MetadataCount     int
	PresentationCount int
	CacheSize         int64
	LastUpdated       time.Time
}

// GetCacheStats returns statistics about the cache database.
func (s *Store) GetCacheStats() (*CacheStats, error) {
	stats := &CacheStats{}

	queries := map[string]*int{
		"SELECT COUNT(*) FROM metadata_cache": &stats.MetadataCount,
		"SELECT COUNT(*) FROM presentations":  &stats.PresentationCount,
	}
	for query, target := range queries {
		if err := s.db.QueryRow(query).Scan(target); err != nil {
			return nil, fmt.Errorf("failed to get count: %w", err)
		}
	}

	if fileInfo, err := os.Stat(s.path); err == nil {
		stats.CacheSize = fileInfo.Size()
		stats.LastUpdated = fileInfo.ModTime()
	}
	return stats, nil
}

// ClearCache removes all cached metadata, keeping stored presentations.
func (s *Store) ClearCache() error {
	if _, err := s.db.Exec(`DELETE FROM metadata_cache`); err != nil {
		return fmt.Errorf("failed to clear metadata cache: %w", err)
	}
	if _, err := s.db.Exec("VACUUM"); err != nil {
		return fmt.Errorf("failed to vacuum database: %w", err)
	}
	return nil
}
