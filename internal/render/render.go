// Package render writes a finished presentation to a Marp-flavored
// markdown file. Charts stay declarative (rendered as tables); turning
// them into images and exporting PDF/PPTX belongs to external tooling.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"slidesmith/internal/core"
)

// RenderMarkdownDeck renders the deck and writes it under outputDir,
// returning the file path.
func RenderMarkdownDeck(p *core.SlidePresentation, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = "decks" // Default output directory
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	name := p.Metadata.Name
	if name == "" {
		name = "deck"
	}
	filename := fmt.Sprintf("%s_%s.md", name, time.Now().UTC().Format("2006-01-02"))
	filePath := filepath.Join(outputDir, filename)

	if err := os.WriteFile(filePath, []byte(RenderDeck(p)), 0644); err != nil {
		return "", fmt.Errorf("failed to write deck file %s: %w", filePath, err)
	}
	return filePath, nil
}

// RenderDeck builds the full Marp markdown document for a deck.
func RenderDeck(p *core.SlidePresentation) string {
	var b strings.Builder

	b.WriteString("---\n")
	b.WriteString("marp: true\n")
	b.WriteString("theme: default\n")
	b.WriteString("paginate: true\n")
	fmt.Fprintf(&b, "title: %s\n", p.Title)
	b.WriteString("---\n")

	for i, slide := range p.Slides {
		if i > 0 {
			b.WriteString("\n---\n")
		}
		renderSlide(&b, slide)
	}
	return b.String()
}

func renderSlide(b *strings.Builder, slide core.Slide) {
	b.WriteString("\n")
	if slide.Type == core.SlideTitle {
		fmt.Fprintf(b, "# %s\n\n", slide.Title)
	} else {
		fmt.Fprintf(b, "## %s\n\n", slide.Title)
	}

	if slide.Content != "" {
		b.WriteString(slide.Content + "\n\n")
	}

	for _, bullet := range slide.Bullets {
		fmt.Fprintf(b, "- %s\n", bullet)
	}
	if len(slide.Bullets) > 0 {
		b.WriteString("\n")
	}

	if slide.Code != "" {
		fmt.Fprintf(b, "```\n%s\n```\n\n", slide.Code)
	}

	if slide.Chart != nil {
		renderChart(b, slide.Chart)
	}

	if slide.SpeakerNotes != "" {
		fmt.Fprintf(b, "<!--\n%s\n-->\n", slide.SpeakerNotes)
	}
}

// renderChart emits the chart spec as a markdown table so the deck is
// readable even before a charting collaborator picks up the spec.
func renderChart(b *strings.Builder, chart *core.ChartSpec) {
	fmt.Fprintf(b, "**%s** (%s)\n\n", chart.Title, chart.Type)
	b.WriteString("| Label | Value |\n|---|---|\n")
	for i, label := range chart.Labels {
		if i >= len(chart.Data) {
			break
		}
		fmt.Fprintf(b, "| %s | %.1f |\n", label, chart.Data[i])
	}
	b.WriteString("\n")
}
