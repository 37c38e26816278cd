package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"slidesmith/internal/core"
	"slidesmith/internal/github"
	"slidesmith/internal/gitlocal"
	"slidesmith/internal/llm"
	"slidesmith/internal/logger"
	"slidesmith/internal/pipeline"
	"slidesmith/internal/render"
	"slidesmith/internal/store"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	generateCmd := &cobra.Command{
		Use:   "generate [repository-url | owner/repo]",
		Short: "Generate a slide deck from a repository",
		Long: `Fetch repository metadata, build a narrative and assemble a timed
slide deck, written as a Marp markdown file.

Example:
  slidesmith generate https://github.com/golang/go
  slidesmith generate rails/rails --mode imrad --duration 5 --lang en
  slidesmith generate --local . --lang ja`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			mode, _ := cmd.Flags().GetString("mode")
			duration, _ := cmd.Flags().GetInt("duration")
			lang, _ := cmd.Flags().GetString("lang")
			output, _ := cmd.Flags().GetString("output")
			localPath, _ := cmd.Flags().GetString("local")
			polish, _ := cmd.Flags().GetBool("polish")
			purpose, _ := cmd.Flags().GetString("purpose")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			if localPath == "" && len(args) == 0 {
				fmt.Fprintln(os.Stderr, "Error: provide a repository URL or --local <path>")
				os.Exit(1)
			}

			url := ""
			if len(args) > 0 {
				url = args[0]
			}

			req := pipeline.GenerateRequest{
				URL:      url,
				Mode:     core.Mode(mode),
				Duration: duration,
				Language: core.Language(lang),
				Purpose:  purpose,
			}
			if err := runGenerate(cmd.Context(), req, localPath, output, polish, noCache); err != nil {
				logger.Error("Failed to generate deck", err, nil)
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	generateCmd.Flags().StringP("mode", "m", "ted", "Deck template: ted or imrad")
	generateCmd.Flags().IntP("duration", "d", 5, "Talk duration in minutes: 3 or 5")
	generateCmd.Flags().StringP("lang", "l", "ja", "Output language: ja, en or zh")
	generateCmd.Flags().StringP("output", "o", "", "Output directory for the deck file")
	generateCmd.Flags().String("local", "", "Analyze a local working copy instead of fetching")
	generateCmd.Flags().Bool("polish", false, "Polish narrative prose with Gemini")
	generateCmd.Flags().String("purpose", "", "Optional purpose hint woven into the narrative")
	generateCmd.Flags().Bool("no-cache", false, "Bypass the metadata cache")

	return generateCmd
}

func runGenerate(ctx context.Context, req pipeline.GenerateRequest, localPath, output string, polish, noCache bool) error {
	st, err := store.NewStore(cfg.App.DataDir)
	if err != nil {
		logger.Warn("store unavailable, continuing without cache or history", map[string]any{"error": err.Error()})
		st = nil
	} else {
		defer st.Close()
	}

	var polisher pipeline.TextPolisher
	if polish {
		client, err := llm.NewClient(ctx, cfg.Gemini.Model)
		if err != nil {
			return fmt.Errorf("polish requested but unavailable: %w", err)
		}
		polisher = client
	}

	opts := pipeline.Options{
		CacheEnabled: cfg.Cache.Enabled && !noCache,
		CacheTTL:     time.Duration(cfg.Cache.TTLHours) * time.Hour,
	}

	var cache pipeline.MetadataCache
	var presStore pipeline.PresentationStore
	if st != nil {
		cache = st
		presStore = st
	}

	orch := pipeline.NewOrchestrator(
		github.NewClient(cfg.GitHub.Token),
		github.NewScraper(),
		cache,
		presStore,
		polisher,
		opts,
	)

	onProgress := func(p core.Progress) {
		if p.Stage == core.StageError {
			return // The error path prints its own message.
		}
		fmt.Printf("[%3d%%] %s\n", p.Percent, p.Message)
	}

	var deck *core.SlidePresentation
	if localPath != "" {
		meta, err := gitlocal.BuildMetadata(localPath)
		if err != nil {
			return fmt.Errorf("failed to analyze local repository: %w", err)
		}
		deck, err = orch.GenerateFromMetadata(ctx, meta, req, onProgress)
		if err != nil {
			return err
		}
	} else {
		deck, err = orch.Generate(ctx, req, onProgress)
		if err != nil {
			return err
		}
	}

	if output == "" {
		output = cfg.Output.Directory
	}
	path, err := render.RenderMarkdownDeck(deck, output)
	if err != nil {
		return err
	}

	fmt.Printf("\nDeck: %s (%s, %d min, %s)\n", deck.Title, deck.Mode, deck.DurationMinutes, deck.Language)
	fmt.Printf("Slides: %d, total %d seconds\n", len(deck.Slides), deck.TotalDuration())
	fmt.Printf("Written to: %s\n", path)
	fmt.Printf("ID: %s\n", deck.ID)
	return nil
}
