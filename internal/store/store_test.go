package store

import (
	"testing"
	"time"

	"slidesmith/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleMeta() *core.RepositoryMetadata {
	return &core.RepositoryMetadata{
		Owner:           "octo",
		Name:            "demo",
		URL:             "https://github.com/octo/demo",
		Description:     "A fast JSON parser",
		PrimaryLanguage: "Go",
		Languages:       map[string]int64{"Go": 9000},
		Stars:           42,
	}
}

func TestMetadataCacheRoundTrip(t *testing.T) {
	s := newTestStore(t)
	meta := sampleMeta()

	if err := s.PutMetadata(meta.URL, meta); err != nil {
		t.Fatalf("PutMetadata failed: %v", err)
	}

	got, err := s.GetMetadata(meta.URL, 24*time.Hour)
	if err != nil {
		t.Fatalf("GetMetadata failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected a cache hit")
	}
	if got.FullName() != "octo/demo" || got.Stars != 42 {
		t.Errorf("Expected cached metadata back, got %+v", got)
	}
	if got.Languages["Go"] != 9000 {
		t.Errorf("Expected language map to survive the round trip, got %v", got.Languages)
	}
}

func TestMetadataCacheMiss(t *testing.T) {
	s := newTestStore(t)

	got, err := s.GetMetadata("https://github.com/octo/unknown", 24*time.Hour)
	if err != nil {
		t.Fatalf("GetMetadata failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected a miss, got %+v", got)
	}
}

func TestMetadataCacheExpiry(t *testing.T) {
	s := newTestStore(t)
	meta := sampleMeta()

	if err := s.PutMetadata(meta.URL, meta); err != nil {
		t.Fatalf("PutMetadata failed: %v", err)
	}

	// A zero freshness window makes every entry stale.
	got, err := s.GetMetadata(meta.URL, 0)
	if err != nil {
		t.Fatalf("GetMetadata failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected an expired entry to read as a miss, got %+v", got)
	}
}

func samplePresentation(id string) *core.SlidePresentation {
	return &core.SlidePresentation{
		ID:              id,
		Title:           "octo/demo",
		Mode:            core.ModeTED,
		Language:        core.LangEN,
		DurationMinutes: 5,
		Slides: []core.Slide{
			{ID: "slide-1", Type: core.SlideTitle, Title: "octo/demo", SpeakerNotes: "open", Duration: 300},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestPresentationRoundTrip(t *testing.T) {
	s := newTestStore(t)
	p := samplePresentation("11111111-2222-3333-4444-555555555555")

	if err := s.SavePresentation(p); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}

	got, err := s.GetPresentation(p.ID)
	if err != nil {
		t.Fatalf("GetPresentation failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected the stored presentation back")
	}
	if got.Title != p.Title || got.Mode != p.Mode || len(got.Slides) != 1 {
		t.Errorf("Expected presentation to survive the round trip, got %+v", got)
	}
}

func TestFindPresentationByPrefix(t *testing.T) {
	s := newTestStore(t)
	p := samplePresentation("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	if err := s.SavePresentation(p); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}

	got, err := s.FindPresentation("aaaaaaaa")
	if err != nil {
		t.Fatalf("FindPresentation failed: %v", err)
	}
	if got == nil || got.ID != p.ID {
		t.Errorf("Expected prefix lookup to find the deck, got %+v", got)
	}

	missing, err := s.FindPresentation("zzzz")
	if err != nil {
		t.Fatalf("FindPresentation failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for an unknown prefix, got %+v", missing)
	}
}

func TestListPresentationsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	older := samplePresentation("11111111-0000-0000-0000-000000000000")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := samplePresentation("22222222-0000-0000-0000-000000000000")

	if err := s.SavePresentation(older); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}
	if err := s.SavePresentation(newer); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}

	list, err := s.ListPresentations()
	if err != nil {
		t.Fatalf("ListPresentations failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected two presentations, got %d", len(list))
	}
	if list[0].ID != newer.ID {
		t.Errorf("Expected newest first, got %s", list[0].ID)
	}
}

func TestClearCacheKeepsPresentations(t *testing.T) {
	s := newTestStore(t)

	if err := s.PutMetadata("https://github.com/octo/demo", sampleMeta()); err != nil {
		t.Fatalf("PutMetadata failed: %v", err)
	}
	if err := s.SavePresentation(samplePresentation("33333333-0000-0000-0000-000000000000")); err != nil {
		t.Fatalf("SavePresentation failed: %v", err)
	}

	if err := s.ClearCache(); err != nil {
		t.Fatalf("ClearCache failed: %v", err)
	}

	stats, err := s.GetCacheStats()
	if err != nil {
		t.Fatalf("GetCacheStats failed: %v", err)
	}
	if stats.MetadataCount != 0 {
		t.Errorf("Expected metadata cache emptied, got %d entries", stats.MetadataCount)
	}
	if stats.PresentationCount != 1 {
		t.Errorf("Expected presentations kept, got %d", stats.PresentationCount)
	}
}
