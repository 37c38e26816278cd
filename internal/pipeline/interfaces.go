package pipeline

import (
	"context"
	"time"

	"slidesmith/internal/core"
)

// MetadataSource acquires repository metadata for an owner/repo pair.
// Implementations: the GitHub REST client and the HTML scraper.
type MetadataSource interface {
	Fetch(ctx context.Context, owner, repo string) (*core.RepositoryMetadata, error)
}

// MetadataCache is the read-through cache keyed by canonical URL.
// A nil result with a nil error is a miss; expired entries are misses.
type MetadataCache interface {
	GetMetadata(url string, maxAge time.Duration) (*core.RepositoryMetadata, error)
	PutMetadata(url string, meta *core.RepositoryMetadata) error
}

// PresentationStore persists finished decks.
type PresentationStore interface {
	SavePresentation(p *core.SlidePresentation) error
}

// TextPolisher optionally rewrites section prose. It runs at the I/O
// boundary, never inside the pure transform stages, and its failures
// are swallowed in favor of the original template text.
type TextPolisher interface {
	Polish(ctx context.Context, text string, lang core.Language) (string, error)
}

// ProgressFunc receives a progress record at every state transition.
type ProgressFunc func(core.Progress)
