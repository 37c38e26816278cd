// Package narrative turns repository metadata and derived insights into
// the five-part Why/Problem/Approach/Result/Next story. Generation is
// pure: no I/O, no randomness, identical inputs give identical stories.
package narrative

import (
	"fmt"
	"strings"

	"slidesmith/internal/core"
	"slidesmith/internal/insights"
)

// Hints carries optional caller-supplied context about the project's
// purpose, folded into template family detection.
type Hints struct {
	Purpose string
}

// Generate builds the full story structure for the given language.
// Every section is always populated; when metadata is sparse the
// generators fall back to generic template text. Unknown languages are
// treated as the default (ja).
func Generate(meta *core.RepositoryMetadata, ins core.Insights, lang core.Language, hints *Hints) core.StoryStructure {
	if _, ok := locales[lang]; !ok {
		lang = core.LangJA
	}
	txt := textFor(lang)
	kind := detectKind(meta, hints)

	return core.StoryStructure{
		Why:      whySection(meta, ins, txt, kind, lang),
		Problem:  problemSection(meta, txt, kind, lang),
		Approach: approachSection(meta, ins, txt),
		Result:   resultSection(meta, ins, txt),
		Next:     nextSection(meta, txt),
		Language: lang,
	}
}

func whySection(meta *core.RepositoryMetadata, ins core.Insights, txt localeText, kind projectKind, lang core.Language) core.StorySection {
	var content string
	if desc := strings.TrimSpace(meta.Description); desc != "" {
		content = fmt.Sprintf(txt.whyWithDesc, meta.FullName(), desc)
	} else {
		content = fmt.Sprintf(txt.whyGeneric, meta.FullName(), kindPhrase(kind, lang))
	}

	bullets := []string{}
	if meta.PrimaryLanguage != "" {
		bullets = append(bullets, fmt.Sprintf(txt.langBullet, meta.PrimaryLanguage))
	}
	if meta.Stars > 0 {
		bullets = append(bullets, fmt.Sprintf(txt.starsBullet, meta.Stars))
	}
	bullets = append(bullets, fmt.Sprintf(txt.archBullet, ins.Architecture))

	return core.StorySection{
		Title:   txt.whyTitle,
		Content: content,
		Hook:    hook(meta, txt),
		Bullets: bullets,
		Visual: &core.VisualElement{
			Kind:    core.VisualMetrics,
			Metrics: &core.RepoMetrics{Stars: meta.Stars, Forks: meta.Forks, Commits: len(meta.Commits)},
		},
	}
}

// hook picks the rhetorical opener for the Why section. A non-empty
// description derives the question from the inferred problem statement;
// otherwise a fixed pool entry is chosen deterministically.
func hook(meta *core.RepositoryMetadata, txt localeText) string {
	if desc := strings.TrimSpace(meta.Description); desc != "" {
		return fmt.Sprintf(txt.hookDerived, truncateRunes(desc, 40))
	}
	idx := len(meta.Owner+meta.Name) % len(txt.hooks)
	return txt.hooks[idx]
}

func problemSection(meta *core.RepositoryMetadata, txt localeText, kind projectKind, lang core.Language) core.StorySection {
	var content string
	if meta.Description != "" || len(meta.Files) > 0 {
		content = fmt.Sprintf(txt.problemContent, kindPhrase(kind, lang))
	} else {
		content = fmt.Sprintf(txt.problemSparse, meta.FullName())
	}

	bullets := []string{}
	if !insights.HasTests(meta.Files) {
		bullets = append(bullets, txt.noTestsBullet)
	}
	if len(meta.Readme) < 500 {
		bullets = append(bullets, txt.thinDocsBullet)
	}
	if len(meta.Languages) > 5 {
		bullets = append(bullets, txt.manyLangsBullet)
	}

	return core.StorySection{
		Title:   txt.problemTitle,
		Content: content,
		Bullets: bullets,
	}
}

func approachSection(meta *core.RepositoryMetadata, ins core.Insights, txt localeText) core.StorySection {
	var parts []string
	if meta.PrimaryLanguage != "" {
		parts = append(parts, fmt.Sprintf(txt.approachContent, ins.Architecture, meta.PrimaryLanguage))
	} else {
		parts = append(parts, fmt.Sprintf(txt.approachGeneric, ins.Architecture))
	}
	if len(ins.Frameworks) > 0 {
		parts = append(parts, fmt.Sprintf(txt.approachFrameworks, strings.Join(ins.Frameworks, ", ")))
	} else {
		parts = append(parts, txt.approachNoFrameworks)
	}

	bullets := []string{
		fmt.Sprintf(txt.archBullet, ins.Architecture),
		txt.complexity[ins.Complexity],
	}
	bullets = append(bullets, ins.Frameworks...)

	return core.StorySection{
		Title:   txt.approachTitle,
		Content: strings.Join(parts, " "),
		Bullets: bullets,
		Visual: &core.VisualElement{
			Kind:       core.VisualFrameworks,
			Frameworks: ins.Frameworks,
		},
	}
}

// resultSection always leads with stars and commits so that positional
// truncation downstream keeps the headline metrics.
func resultSection(meta *core.RepositoryMetadata, ins core.Insights, txt localeText) core.StorySection {
	bullets := []string{
		fmt.Sprintf(txt.starsBullet, meta.Stars),
		fmt.Sprintf(txt.commitsBullet, len(meta.Commits)),
		fmt.Sprintf(txt.forksBullet, meta.Forks),
		fmt.Sprintf(txt.filesBullet, len(meta.Files)),
	}

	return core.StorySection{
		Title:   txt.resultTitle,
		Content: fmt.Sprintf(txt.resultContent, meta.FullName(), txt.maturity[ins.Maturity]),
		Bullets: bullets,
		Visual: &core.VisualElement{
			Kind:      core.VisualLanguages,
			Languages: meta.Languages,
		},
	}
}

func nextSection(meta *core.RepositoryMetadata, txt localeText) core.StorySection {
	bullets := []string{}
	if !insights.HasTests(meta.Files) {
		bullets = append(bullets, txt.addTestsBullet)
	}
	if len(meta.Readme) < 500 {
		bullets = append(bullets, txt.writeDocsBullet)
	}
	if meta.Stars <= 10 {
		bullets = append(bullets, txt.growCommunityBullet)
	}
	bullets = append(bullets, txt.keepShippingBullet)

	return core.StorySection{
		Title:   txt.nextTitle,
		Content: fmt.Sprintf(txt.nextContent, meta.FullName()),
		Bullets: bullets,
	}
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
