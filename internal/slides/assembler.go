// Package slides lays a story structure out into a bounded-duration
// deck. Assembly is pure and deterministic; the orchestrator stamps the
// presentation id and timestamp at the I/O boundary.
package slides

import (
	"fmt"
	"sort"
	"strings"

	"slidesmith/internal/core"
)

// maxBullets is the single enforcement point for bullet truncation.
// Generators emit relevance-ordered supersets; everything past the top
// three is dropped here.
const maxBullets = 3

// purpose identifies what a skeleton slot is for. It drives slide type,
// title, content source and speaker notes.
type purpose string

const (
	purposeTitle          purpose = "title"
	purposeWhy            purpose = "why"
	purposeProblem        purpose = "problem"
	purposeApproach       purpose = "approach"
	purposeChart          purpose = "chart"
	purposeResult         purpose = "result"
	purposeNext           purpose = "next"
	purposeIntro          purpose = "introduction"
	purposeMethods        purpose = "methods"
	purposeImplementation purpose = "implementation"
	purposeResults        purpose = "results"
	purposeAnalysis       purpose = "analysis"
	purposeDiscussion     purpose = "discussion"
	purposeConclusion     purpose = "conclusion"
)

// skeleton returns the fixed ordered slide purposes for a mode/duration
// configuration. duration=3 omits the variable slides; ids are assigned
// sequentially afterwards so no gaps appear.
func skeleton(mode core.Mode, duration int) []purpose {
	switch mode {
	case core.ModeIMRAD:
		if duration == 3 {
			return []purpose{purposeTitle, purposeIntro, purposeMethods, purposeResults, purposeAnalysis, purposeConclusion}
		}
		return []purpose{purposeTitle, purposeIntro, purposeMethods, purposeImplementation, purposeResults, purposeAnalysis, purposeDiscussion, purposeConclusion}
	default:
		if duration == 3 {
			return []purpose{purposeTitle, purposeWhy, purposeProblem, purposeChart, purposeResult, purposeConclusion}
		}
		return []purpose{purposeTitle, purposeWhy, purposeProblem, purposeApproach, purposeChart, purposeResult, purposeNext, purposeConclusion}
	}
}

// Assemble maps a story onto the fixed skeleton for (mode, duration)
// and distributes the time budget so per-slide durations sum to exactly
// duration*60 seconds. It never fails: missing section fields become
// empty lists, unknown modes fall back to ted, unknown durations to 5,
// unknown languages to ja.
func Assemble(meta *core.RepositoryMetadata, story *core.StoryStructure, mode core.Mode, duration int, lang core.Language) *core.SlidePresentation {
	if mode != core.ModeIMRAD {
		mode = core.ModeTED
	}
	if duration != 3 {
		duration = 5
	}
	txt := deckTextFor(lang)
	lang = txt.lang

	plan := skeleton(mode, duration)
	deck := make([]core.Slide, 0, len(plan))
	for i, p := range plan {
		slide := buildSlide(p, meta, story, txt)
		slide.ID = fmt.Sprintf("slide-%d", i+1)
		deck = append(deck, slide)
	}

	total := duration * 60
	per := total / len(deck)
	for i := range deck {
		deck[i].Duration = per
	}
	// Integer division remainder lands on the conclusion slide.
	deck[len(deck)-1].Duration += total - per*len(deck)

	return &core.SlidePresentation{
		Title:           meta.FullName(),
		Mode:            mode,
		Language:        lang,
		DurationMinutes: duration,
		Slides:          deck,
		Story:           story,
		Metadata:        meta,
	}
}

func buildSlide(p purpose, meta *core.RepositoryMetadata, story *core.StoryStructure, txt deckText) core.Slide {
	slide := core.Slide{
		Type:         slideType(p),
		Title:        txt.titles[p],
		SpeakerNotes: speakerNotes(p, meta, txt),
		Bullets:      []string{},
	}

	switch p {
	case purposeTitle:
		slide.Title = meta.FullName()
		slide.Content = titleContent(meta, story, txt)
	case purposeWhy:
		fillFromSection(&slide, story.Why, true)
	case purposeIntro:
		// IMRAD folds the why and problem sections into one introduction.
		fillFromSection(&slide, story.Why, false)
		slide.Content = strings.TrimSpace(story.Why.Content + " " + story.Problem.Content)
	case purposeProblem:
		fillFromSection(&slide, story.Problem, true)
	case purposeApproach, purposeMethods:
		fillFromSection(&slide, story.Approach, p == purposeApproach)
	case purposeImplementation:
		fillFromSection(&slide, story.Approach, false)
		slide.Code = codeSnippet(meta)
	case purposeChart, purposeAnalysis:
		slide.Content = txt.chartContent
		slide.Chart = deckChart(meta, txt)
	case purposeResult, purposeResults:
		fillFromSection(&slide, story.Result, true)
	case purposeNext, purposeDiscussion:
		fillFromSection(&slide, story.Next, true)
	case purposeConclusion:
		slide.Content = fmt.Sprintf(txt.conclusionContent, meta.FullName())
		slide.Bullets = truncateBullets(story.Next.Bullets)
	}

	if p == purposeApproach {
		slide.Code = codeSnippet(meta)
	}
	return slide
}

// fillFromSection copies a story section into a slide, using the
// section's own localized title when useSectionTitle is set (TED mode)
// and the skeleton title otherwise (IMRAD headings).
func fillFromSection(slide *core.Slide, section core.StorySection, useSectionTitle bool) {
	if useSectionTitle && section.Title != "" {
		slide.Title = section.Title
	}
	slide.Content = section.Content
	slide.Bullets = truncateBullets(section.Bullets)
}

func titleContent(meta *core.RepositoryMetadata, story *core.StoryStructure, txt deckText) string {
	if story.Why.Hook != "" {
		return story.Why.Hook
	}
	if meta.Description != "" {
		return meta.Description
	}
	return fmt.Sprintf(txt.conclusionContent, meta.FullName())
}

func slideType(p purpose) core.SlideType {
	switch p {
	case purposeTitle:
		return core.SlideTitle
	case purposeApproach, purposeImplementation:
		return core.SlideCode
	case purposeChart, purposeAnalysis:
		return core.SlideChart
	case purposeConclusion:
		return core.SlideConclusion
	default:
		return core.SlideContent
	}
}

func truncateBullets(bullets []string) []string {
	if bullets == nil {
		return []string{}
	}
	if len(bullets) > maxBullets {
		bullets = bullets[:maxBullets]
	}
	out := make([]string, len(bullets))
	copy(out, bullets)
	return out
}

// codeSnippet builds a deterministic snippet for the approach slide:
// the highest-importance files as an annotated tree, or a clone command
// when the file list is empty.
func codeSnippet(meta *core.RepositoryMetadata) string {
	if len(meta.Files) == 0 {
		return fmt.Sprintf("git clone %s\ncd %s", meta.URL, meta.Name)
	}

	top := topFiles(meta.Files, 5)
	var b strings.Builder
	b.WriteString(meta.Name + "/\n")
	for _, f := range top {
		fmt.Fprintf(&b, "  %-40s # %s\n", f.Path, f.Type)
	}
	return strings.TrimRight(b.String(), "\n")
}

func topFiles(files []core.RepoFile, n int) []core.RepoFile {
	sorted := make([]core.RepoFile, len(files))
	copy(sorted, files)
	// Stable sort keeps the original order for equal scores, so the
	// snippet is identical run to run.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Importance > sorted[j].Importance
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
