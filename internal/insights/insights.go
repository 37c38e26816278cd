// Package insights derives a classification record from repository
// metadata using fixed lexical heuristics. Every function here is pure
// and total: malformed or missing fields degrade to the lowest tier or
// the "Custom Architecture" label, never to an error.
package insights

import (
	"strings"

	"slidesmith/internal/core"
)

// CustomArchitecture is the fallback label when no pattern rule fires.
const CustomArchitecture = "Custom Architecture"

// Compute maps repository metadata to an Insights record. It is
// deterministic: identical metadata always yields identical insights.
func Compute(meta *core.RepositoryMetadata) core.Insights {
	paths := normalizedPaths(meta.Files)
	patterns := matchPatterns(paths)

	architecture := CustomArchitecture
	if len(patterns) > 0 {
		architecture = patterns[0]
	}

	frameworks := DetectFrameworks(meta)

	return core.Insights{
		Architecture: architecture,
		Patterns:     patterns,
		Complexity:   ComplexityTier(meta),
		Maturity:     MaturityTier(meta),
		Frameworks:   frameworks,
		Strengths:    strengths(meta, frameworks),
		Risks:        risks(meta),
	}
}

// patternRule pairs a label with its match predicate. Rules are
// evaluated in declaration order; the first match becomes the single
// architecture label, the full match set is retained for display.
type patternRule struct {
	label string
	match func(paths []string) bool
}

var patternRules = []patternRule{
	{"MVC", hasMVC},
	{"Layered Architecture", hasLayers},
	{"Microservices", hasMicroservices},
	{"Service-Oriented", hasServices},
	{"Component-Based", hasComponents},
	{"Event-Driven", hasEvents},
	{"CLI Tool", hasCLI},
}

func matchPatterns(paths []string) []string {
	var matched []string
	for _, rule := range patternRules {
		if rule.match(paths) {
			matched = append(matched, rule.label)
		}
	}
	return matched
}

// hasMVC reports whether model, view and controller paths all exist.
func hasMVC(paths []string) bool {
	return countContaining(paths, "model") > 0 &&
		countContaining(paths, "view") > 0 &&
		countContaining(paths, "controller") > 0
}

// hasLayers looks for the classic controller/service/repository stack.
func hasLayers(paths []string) bool {
	return countContaining(paths, "controller") > 0 &&
		countContaining(paths, "service") > 0 &&
		countContaining(paths, "repositor") > 0
}

// hasMicroservices looks for per-service directories alongside
// deployment descriptors.
func hasMicroservices(paths []string) bool {
	return countContaining(paths, "services/") > 1 &&
		(countContaining(paths, "docker") > 0 || countContaining(paths, "k8s") > 0 || countContaining(paths, "kubernetes") > 0)
}

// hasServices fires when more than 3 paths mention a service.
func hasServices(paths []string) bool {
	return countContaining(paths, "service") > 3
}

// hasComponents fires when more than 5 paths mention a component.
func hasComponents(paths []string) bool {
	return countContaining(paths, "component") > 5
}

// hasEvents looks for event/queue/handler vocabulary.
func hasEvents(paths []string) bool {
	return countContaining(paths, "event") > 1 && countContaining(paths, "handler") > 0
}

// hasCLI looks for a cmd directory with a main entry point.
func hasCLI(paths []string) bool {
	return countContaining(paths, "cmd/") > 0 && countContaining(paths, "main") > 0
}

func countContaining(paths []string, fragment string) int {
	n := 0
	for _, p := range paths {
		if strings.Contains(p, fragment) {
			n++
		}
	}
	return n
}

func normalizedPaths(files []core.RepoFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, strings.ToLower(f.Path))
	}
	return paths
}

// ComplexityTier buckets file count, language diversity and commit
// count against fixed thresholds and maps the summed score to a tier.
// Each bucket function is monotone, so the tier is monotone in every
// input holding the others fixed.
func ComplexityTier(meta *core.RepositoryMetadata) core.ComplexityTier {
	score := fileCountScore(len(meta.Files)) +
		languageCountScore(len(meta.Languages)) +
		commitCountScore(len(meta.Commits))

	switch {
	case score >= 6:
		return core.ComplexityHigh
	case score >= 3:
		return core.ComplexityMedium
	default:
		return core.ComplexityLow
	}
}

func fileCountScore(n int) int {
	switch {
	case n > 100:
		return 3
	case n > 50:
		return 2
	case n > 20:
		return 1
	default:
		return 0
	}
}

func languageCountScore(n int) int {
	switch {
	case n > 5:
		return 3
	case n > 3:
		return 2
	case n > 1:
		return 1
	default:
		return 0
	}
}

func commitCountScore(n int) int {
	switch {
	case n > 100:
		return 2
	case n > 50:
		return 1
	default:
		return 0
	}
}

// MaturityTier scores documentation, test presence, configuration
// presence, stars and commit history, then maps the sum to a tier with
// the same cut points used for complexity classification.
func MaturityTier(meta *core.RepositoryMetadata) core.MaturityTier {
	score := readmeScore(len(meta.Readme)) + starScore(meta.Stars) + maturityCommitScore(len(meta.Commits))
	if HasTests(meta.Files) {
		score += 2
	}
	if HasConfig(meta.Files) {
		score++
	}

	switch {
	case score >= 6:
		return core.MaturityMature
	case score >= 3:
		return core.MaturityDeveloping
	default:
		return core.MaturityEarly
	}
}

func readmeScore(length int) int {
	switch {
	case length > 3000:
		return 2
	case length > 500:
		return 1
	default:
		return 0
	}
}

func starScore(stars int) int {
	switch {
	case stars > 100:
		return 2
	case stars > 10:
		return 1
	default:
		return 0
	}
}

func maturityCommitScore(n int) int {
	switch {
	case n > 100:
		return 2
	case n > 20:
		return 1
	default:
		return 0
	}
}

// HasTests reports whether the file list contains test files.
func HasTests(files []core.RepoFile) bool {
	for _, f := range files {
		p := strings.ToLower(f.Path)
		if strings.Contains(p, "test") || strings.Contains(p, "spec.") || strings.Contains(p, "__tests__") {
			return true
		}
	}
	return false
}

// HasConfig reports whether the file list contains configuration files.
func HasConfig(files []core.RepoFile) bool {
	for _, f := range files {
		p := strings.ToLower(f.Path)
		if f.Type == "config" ||
			strings.HasSuffix(p, ".yml") || strings.HasSuffix(p, ".yaml") ||
			strings.HasSuffix(p, ".toml") || strings.HasSuffix(p, ".ini") ||
			strings.Contains(p, "dockerfile") || strings.Contains(p, ".config.") {
			return true
		}
	}
	return false
}

func strengths(meta *core.RepositoryMetadata, frameworks []string) []string {
	var out []string
	if HasTests(meta.Files) {
		out = append(out, "Automated tests")
	}
	if len(meta.Readme) > 500 {
		out = append(out, "Documented")
	}
	if meta.Stars > 10 {
		out = append(out, "Community traction")
	}
	if len(meta.Commits) > 50 {
		out = append(out, "Active history")
	}
	if len(frameworks) > 2 {
		out = append(out, "Modern tooling")
	}
	return out
}

func risks(meta *core.RepositoryMetadata) []string {
	var out []string
	if !HasTests(meta.Files) {
		out = append(out, "No automated tests detected")
	}
	if len(meta.Readme) < 200 {
		out = append(out, "Sparse documentation")
	}
	if len(meta.Languages) > 5 {
		out = append(out, "High language fragmentation")
	}
	if len(meta.Commits) > 0 && len(meta.Commits) < 10 {
		out = append(out, "Short history")
	}
	if meta.Synthesized {
		out = append(out, "Metadata synthesized from URL only")
	}
	return out
}
