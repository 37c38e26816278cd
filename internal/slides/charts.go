package slides

import (
	"sort"

	"slidesmith/internal/core"
)

// deckChart builds the declarative chart for the architecture/analysis
// slide: a pie of the language byte distribution when one is known,
// otherwise a bar of the headline repository metrics. No rendering
// happens here; the spec is consumed by external renderers.
func deckChart(meta *core.RepositoryMetadata, txt deckText) *core.ChartSpec {
	if len(meta.Languages) > 0 {
		return languageChart(meta, txt)
	}
	return metricsChart(meta, txt)
}

func languageChart(meta *core.RepositoryMetadata, txt deckText) *core.ChartSpec {
	names := make([]string, 0, len(meta.Languages))
	var total int64
	for name, bytes := range meta.Languages {
		names = append(names, name)
		total += bytes
	}
	// Descending by byte count, name as tiebreaker for determinism.
	sort.Slice(names, func(i, j int) bool {
		bi, bj := meta.Languages[names[i]], meta.Languages[names[j]]
		if bi != bj {
			return bi > bj
		}
		return names[i] < names[j]
	})

	spec := &core.ChartSpec{
		Type:  core.ChartPie,
		Title: txt.languageChartTitle,
	}
	for _, name := range names {
		spec.Labels = append(spec.Labels, name)
		pct := float64(meta.Languages[name]) / float64(total) * 100
		spec.Data = append(spec.Data, pct)
	}
	return spec
}

func metricsChart(meta *core.RepositoryMetadata, txt deckText) *core.ChartSpec {
	return &core.ChartSpec{
		Type:   core.ChartBar,
		Title:  txt.metricsChartTitle,
		Labels: []string{"Stars", "Forks", "Commits"},
		Data:   []float64{float64(meta.Stars), float64(meta.Forks), float64(len(meta.Commits))},
	}
}
