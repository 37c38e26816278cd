package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"slidesmith/internal/core"
	"slidesmith/internal/github"
)

type fakeSource struct {
	calls int
	meta  *core.RepositoryMetadata
	err   error
}

func (f *fakeSource) Fetch(ctx context.Context, owner, repo string) (*core.RepositoryMetadata, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.meta, nil
}

type fakeCache struct {
	entries map[string]*core.RepositoryMetadata
	puts    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]*core.RepositoryMetadata{}}
}

func (f *fakeCache) GetMetadata(url string, maxAge time.Duration) (*core.RepositoryMetadata, error) {
	return f.entries[url], nil
}

func (f *fakeCache) PutMetadata(url string, meta *core.RepositoryMetadata) error {
	f.puts++
	f.entries[url] = meta
	return nil
}

type fakeStore struct {
	saved []*core.SlidePresentation
}

func (f *fakeStore) SavePresentation(p *core.SlidePresentation) error {
	f.saved = append(f.saved, p)
	return nil
}

type failingPolisher struct{}

func (failingPolisher) Polish(ctx context.Context, text string, lang core.Language) (string, error) {
	return "", errors.New("model unavailable")
}

func fetchedMeta() *core.RepositoryMetadata {
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

func request() GenerateRequest {
	return GenerateRequest{
		URL:      "https://github.com/octo/demo",
		Mode:     core.ModeTED,
		Duration: 5,
		Language: core.LangEN,
	}
}

func TestGenerateInvalidURLSkipsNetwork(t *testing.T) {
	source := &fakeSource{meta: fetchedMeta()}
	orch := NewOrchestrator(source, nil, nil, nil, nil, Options{})

	var stages []core.Stage
	req := request()
	req.URL = "not-a-url"
	_, err := orch.Generate(context.Background(), req, func(p core.Progress) {
		stages = append(stages, p.Stage)
	})

	if err == nil {
		t.Fatal("Expected an error for an invalid URL")
	}
	var invalid *github.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidInputError, got %T", err)
	}
	if source.calls != 0 {
		t.Errorf("Expected no fetch for an invalid URL, got %d calls", source.calls)
	}
	if len(stages) != 1 || stages[0] != core.StageError {
		t.Errorf("Expected a single error transition, got %v", stages)
	}
}

func TestGenerateHappyPath(t *testing.T) {
	source := &fakeSource{meta: fetchedMeta()}
	cache := newFakeCache()
	store := &fakeStore{}
	orch := NewOrchestrator(source, nil, cache, store, nil, Options{CacheEnabled: true})

	var stages []core.Stage
	lastPercent := -1
	deck, err := orch.Generate(context.Background(), request(), func(p core.Progress) {
		stages = append(stages, p.Stage)
		if p.Percent < lastPercent {
			t.Errorf("Progress went backwards: %d after %d", p.Percent, lastPercent)
		}
		lastPercent = p.Percent
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []core.Stage{core.StageRepository, core.StageFiles, core.StageStory, core.StageSlides, core.StageComplete}
	if len(stages) != len(want) {
		t.Fatalf("Expected stages %v, got %v", want, stages)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("Stage %d: expected %s, got %s", i, want[i], stages[i])
		}
	}

	if deck.ID == "" {
		t.Error("Expected a stamped presentation id")
	}
	if deck.CreatedAt.IsZero() {
		t.Error("Expected a stamped creation time")
	}
	if deck.TotalDuration() != 300 {
		t.Errorf("Expected a 300 second deck, got %d", deck.TotalDuration())
	}
	if len(store.saved) != 1 || store.saved[0].ID != deck.ID {
		t.Errorf("Expected the deck persisted once, got %v", store.saved)
	}
	if cache.puts != 1 {
		t.Errorf("Expected fetched metadata cached once, got %d puts", cache.puts)
	}
}

func TestGenerateServesFromCache(t *testing.T) {
	source := &fakeSource{meta: fetchedMeta()}
	cache := newFakeCache()
	cache.entries["https://github.com/octo/demo"] = fetchedMeta()
	orch := NewOrchestrator(source, nil, cache, nil, nil, Options{CacheEnabled: true})

	if _, err := orch.Generate(context.Background(), request(), nil); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if source.calls != 0 {
		t.Errorf("Expected a cache hit to skip the fetch, got %d calls", source.calls)
	}
}

func TestGenerateFallsBackThroughLadder(t *testing.T) {
	source := &fakeSource{err: &github.AcquisitionError{Repo: "octo/demo", Err: errors.New("rate limited")}}
	fallback := &fakeSource{err: &github.AcquisitionError{Repo: "octo/demo", Err: errors.New("blocked")}}
	cache := newFakeCache()
	orch := NewOrchestrator(source, fallback, cache, nil, nil, Options{CacheEnabled: true})

	deck, err := orch.Generate(context.Background(), request(), nil)
	if err != nil {
		t.Fatalf("Expected degraded generation to succeed, got %v", err)
	}

	if source.calls != 1 || fallback.calls != 1 {
		t.Errorf("Expected both ladder rungs tried once, got %d and %d", source.calls, fallback.calls)
	}
	if !deck.Metadata.Synthesized {
		t.Error("Expected synthesized metadata after both sources failed")
	}
	if len(deck.Slides) != 8 {
		t.Errorf("Expected a full deck from degraded metadata, got %d slides", len(deck.Slides))
	}
	for _, s := range deck.Slides {
		if s.SpeakerNotes == "" {
			t.Errorf("Slide %s has empty speaker notes in degraded mode", s.ID)
		}
	}
	if cache.puts != 0 {
		t.Error("Synthesized metadata must not be cached")
	}
}

func TestGenerateScraperRecovers(t *testing.T) {
	source := &fakeSource{err: &github.AcquisitionError{Repo: "octo/demo", Err: errors.New("rate limited")}}
	fallback := &fakeSource{meta: fetchedMeta()}
	orch := NewOrchestrator(source, fallback, nil, nil, nil, Options{})

	deck, err := orch.Generate(context.Background(), request(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if fallback.calls != 1 {
		t.Errorf("Expected the fallback source to be tried, got %d calls", fallback.calls)
	}
	if deck.Metadata.Synthesized {
		t.Error("Expected fallback metadata, not synthesis")
	}
}

func TestGeneratePolisherFailureKeepsTemplateText(t *testing.T) {
	source := &fakeSource{meta: fetchedMeta()}
	orch := NewOrchestrator(source, nil, nil, nil, failingPolisher{}, Options{})

	deck, err := orch.Generate(context.Background(), request(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, section := range deck.Story.Sections() {
		if section.Content == "" {
			t.Error("Expected template text kept when polishing fails")
		}
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := &fakeSource{err: &github.AcquisitionError{Repo: "octo/demo", Err: context.Canceled}}
	orch := NewOrchestrator(source, nil, nil, nil, nil, Options{})

	if _, err := orch.Generate(ctx, request(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context cancellation to surface, got %v", err)
	}
}

func TestGenerateFromMetadata(t *testing.T) {
	orch := NewOrchestrator(&fakeSource{}, nil, nil, nil, nil, Options{})

	deck, err := orch.GenerateFromMetadata(context.Background(), fetchedMeta(), request(), nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if deck.Title != "octo/demo" {
		t.Errorf("Expected deck titled after the repository, got %s", deck.Title)
	}
}
