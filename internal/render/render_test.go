package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slidesmith/internal/core"
)

func samplePresentation() *core.SlidePresentation {
	return &core.SlidePresentation{
		ID:              "deck-1",
		Title:           "octo/demo",
		Mode:            core.ModeTED,
		Language:        core.LangEN,
		DurationMinutes: 5,
		Metadata:        &core.RepositoryMetadata{Owner: "octo", Name: "demo"},
		Slides: []core.Slide{
			{
				ID:           "slide-1",
				Type:         core.SlideTitle,
				Title:        "octo/demo",
				Content:      "A fast JSON parser",
				SpeakerNotes: "Open with the hook.",
				Duration:     37,
			},
			{
				ID:           "slide-2",
				Type:         core.SlideCode,
				Title:        "The Approach",
				Bullets:      []string{"Custom Architecture", "Go"},
				Code:         "demo/\n  main.go",
				SpeakerNotes: "Walk the tree.",
				Duration:     37,
			},
			{
				ID:           "slide-3",
				Type:         core.SlideChart,
				Title:        "Language Breakdown",
				Chart:        &core.ChartSpec{Type: core.ChartPie, Title: "Language Share", Labels: []string{"Go"}, Data: []float64{100}},
				SpeakerNotes: "Point at the chart.",
				Duration:     41,
			},
		},
	}
}

func TestRenderDeck(t *testing.T) {
	out := RenderDeck(samplePresentation())

	if !strings.HasPrefix(out, "---\nmarp: true\n") {
		t.Error("Expected Marp front matter")
	}
	if !strings.Contains(out, "title: octo/demo") {
		t.Error("Expected deck title in front matter")
	}
	if !strings.Contains(out, "# octo/demo") {
		t.Error("Expected h1 for the title slide")
	}
	if !strings.Contains(out, "## The Approach") {
		t.Error("Expected h2 for content slides")
	}
	if !strings.Contains(out, "- Custom Architecture\n") {
		t.Error("Expected bullets rendered as a list")
	}
	if !strings.Contains(out, "```\ndemo/\n  main.go\n```") {
		t.Error("Expected fenced code block")
	}
	if !strings.Contains(out, "| Go | 100.0 |") {
		t.Error("Expected chart rendered as a table")
	}
	if !strings.Contains(out, "<!--\nOpen with the hook.\n-->") {
		t.Error("Expected speaker notes as comments")
	}
	if got := strings.Count(out, "\n---\n"); got < 2 {
		t.Errorf("Expected slide separators between slides, got %d", got)
	}
}

func TestRenderMarkdownDeckWritesFile(t *testing.T) {
	dir := t.TempDir()
	path, err := RenderMarkdownDeck(samplePresentation(), dir)
	if err != nil {
		t.Fatalf("RenderMarkdownDeck failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("Expected the deck under %s, got %s", dir, path)
	}
	if !strings.HasPrefix(filepath.Base(path), "demo_") || !strings.HasSuffix(path, ".md") {
		t.Errorf("Expected a dated markdown filename, got %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read deck file: %v", err)
	}
	if !strings.Contains(string(data), "# octo/demo") {
		t.Error("Expected the rendered deck on disk")
	}
}
