// Package pipeline orchestrates the repository-to-deck flow: acquire
// metadata, compute insights, generate the narrative, assemble slides
// and persist the result. Every stage transition is reported through a
// progress callback, and all I/O runs through injected collaborators
// so the transform stages stay pure and testable.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"slidesmith/internal/core"
	"slidesmith/internal/github"
	"slidesmith/internal/insights"
	"slidesmith/internal/logger"
	"slidesmith/internal/narrative"
	"slidesmith/internal/slides"
)

// Options configures an Orchestrator.
type Options struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// DefaultCacheTTL is the metadata freshness window.
const DefaultCacheTTL = 24 * time.Hour

// GenerateRequest carries the user's inputs for one run. Unknown or
// unsupported values are normalized downstream rather than rejected:
// unknown languages fall back to Japanese, unknown modes to TED and
// unsupported durations to five minutes.
type GenerateRequest struct {
	URL      string
	Mode     core.Mode
	Duration int
	Language core.Language
	Purpose  string // Optional user-supplied purpose hint for the narrative
}

// Orchestrator runs the generation state machine. Fallback is tried
// when the primary source fails; Cache, Store and Polisher may be nil.
type Orchestrator struct {
	Source   MetadataSource
	Fallback MetadataSource
	Cache    MetadataCache
	Store    PresentationStore
	Polisher TextPolisher
	opts     Options
}

// NewOrchestrator assembles an orchestrator from its collaborators.
func NewOrchestrator(source, fallback MetadataSource, cache MetadataCache, store PresentationStore, polisher TextPolisher, opts Options) *Orchestrator {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Orchestrator{
		Source:   source,
		Fallback: fallback,
		Cache:    cache,
		Store:    store,
		Polisher: polisher,
		opts:     opts,
	}
}

// Generate runs the full pipeline for a repository URL and returns the
// finished presentation. onProgress may be nil.
func (o *Orchestrator) Generate(ctx context.Context, req GenerateRequest, onProgress ProgressFunc) (*core.SlidePresentation, error) {
	emit := func(p core.Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	owner, repo, err := github.ParseRepoURL(req.URL)
	if err != nil {
		// Invalid input never reaches the network.
		emit(core.Progress{Stage: core.StageError, Percent: 0, Message: err.Error(), Err: err})
		return nil, err
	}

	emit(core.Progress{Stage: core.StageRepository, Percent: 10, Message: fmt.Sprintf("Fetching %s/%s", owner, repo)})
	meta, err := o.acquire(ctx, owner, repo)
	if err != nil {
		emit(core.Progress{Stage: core.StageError, Percent: 10, Message: err.Error(), Err: err})
		return nil, err
	}

	return o.run(ctx, meta, req, emit)
}

// GenerateFromMetadata runs the transform stages over metadata that was
// acquired elsewhere, such as a local working copy.
func (o *Orchestrator) GenerateFromMetadata(ctx context.Context, meta *core.RepositoryMetadata, req GenerateRequest, onProgress ProgressFunc) (*core.SlidePresentation, error) {
	emit := func(p core.Progress) {
		if onProgress != nil {
			onProgress(p)
		}
	}
	emit(core.Progress{Stage: core.StageRepository, Percent: 10, Message: fmt.Sprintf("Using metadata for %s", meta.FullName())})
	return o.run(ctx, meta, req, emit)
}

func (o *Orchestrator) run(ctx context.Context, meta *core.RepositoryMetadata, req GenerateRequest, emit ProgressFunc) (*core.SlidePresentation, error) {
	if err := ctx.Err(); err != nil {
		emit(core.Progress{Stage: core.StageError, Percent: 10, Message: "canceled", Err: err})
		return nil, err
	}

	emit(core.Progress{Stage: core.StageFiles, Percent: 40, Message: "Analyzing repository structure"})
	ins := insights.Compute(meta)

	if err := ctx.Err(); err != nil {
		emit(core.Progress{Stage: core.StageError, Percent: 40, Message: "canceled", Err: err})
		return nil, err
	}

	emit(core.Progress{Stage: core.StageStory, Percent: 60, Message: "Building narrative"})
	var hints *narrative.Hints
	if req.Purpose != "" {
		hints = &narrative.Hints{Purpose: req.Purpose}
	}
	story := narrative.Generate(meta, ins, req.Language, hints)
	o.polish(ctx, &story)

	if err := ctx.Err(); err != nil {
		emit(core.Progress{Stage: core.StageError, Percent: 60, Message: "canceled", Err: err})
		return nil, err
	}

	emit(core.Progress{Stage: core.StageSlides, Percent: 80, Message: "Assembling slides"})
	deck := slides.Assemble(meta, &story, req.Mode, req.Duration, req.Language)
	deck.ID = uuid.NewString()
	deck.CreatedAt = time.Now().UTC()

	if o.Store != nil {
		if err := o.Store.SavePresentation(deck); err != nil {
			logger.Warn("failed to persist presentation", map[string]any{
				"id":    deck.ID,
				"error": err.Error(),
			})
		}
	}

	emit(core.Progress{Stage: core.StageComplete, Percent: 100, Message: fmt.Sprintf("Generated %d slides", len(deck.Slides))})
	return deck, nil
}

// acquire resolves metadata through the cache, the primary source, the
// fallback source and finally a synthesized placeholder, in that order.
// It only fails on context cancellation.
func (o *Orchestrator) acquire(ctx context.Context, owner, repo string) (*core.RepositoryMetadata, error) {
	url := github.CanonicalURL(owner, repo)

	if o.opts.CacheEnabled && o.Cache != nil {
		cached, err := o.Cache.GetMetadata(url, o.opts.CacheTTL)
		if err != nil {
			logger.Warn("cache read failed", map[string]any{"url": url, "error": err.Error()})
		} else if cached != nil {
			logger.Debug("cache hit", map[string]any{"url": url})
			return cached, nil
		}
	}

	meta, err := o.Source.Fetch(ctx, owner, repo)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("primary acquisition failed", map[string]any{
			"repo":  owner + "/" + repo,
			"error": err.Error(),
		})
		meta = nil
		if o.Fallback != nil {
			meta, err = o.Fallback.Fetch(ctx, owner, repo)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				logger.Warn("fallback acquisition failed", map[string]any{
					"repo":  owner + "/" + repo,
					"error": err.Error(),
				})
				meta = nil
			}
		}
		if meta == nil {
			// Degraded mode: proceed with what the URL alone tells us.
			meta = github.Synthesize(owner, repo)
		}
	}

	if o.opts.CacheEnabled && o.Cache != nil && !meta.Synthesized {
		if err := o.Cache.PutMetadata(url, meta); err != nil {
			logger.Warn("cache write failed", map[string]any{"url": url, "error": err.Error()})
		}
	}
	return meta, nil
}

// polish rewrites section prose through the optional polisher. Any
// failure leaves the template text in place.
func (o *Orchestrator) polish(ctx context.Context, story *core.StoryStructure) {
	if o.Polisher == nil {
		return
	}
	for _, section := range []*core.StorySection{
		&story.Why, &story.Problem, &story.Approach, &story.Result, &story.Next,
	} {
		polished, err := o.Polisher.Polish(ctx, section.Content, story.Language)
		if err != nil {
			logger.Debug("polish skipped", map[string]any{
				"section": section.Title,
				"error":   err.Error(),
			})
			continue
		}
		section.Content = polished
	}
}
