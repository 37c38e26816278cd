package github

import (
	"path"
	"strings"
)

var sourceExtensions = map[string]bool{
	".go": true, ".ts": true, ".tsx": true, ".js": true, ".jsx": true,
	".py": true, ".rb": true, ".java": true, ".kt": true, ".rs": true,
	".c": true, ".h": true, ".cpp": true, ".cs": true, ".swift": true,
	".php": true, ".scala": true, ".vue": true, ".svelte": true,
}

var configExtensions = map[string]bool{
	".yml": true, ".yaml": true, ".toml": true, ".ini": true, ".json": true,
	".env": true, ".tf": true,
}

var docExtensions = map[string]bool{
	".md": true, ".rst": true, ".txt": true, ".adoc": true,
}

var manifestNames = map[string]bool{
	"package.json": true, "go.mod": true, "cargo.toml": true,
	"requirements.txt": true, "pyproject.toml": true, "gemfile": true,
	"pom.xml": true, "build.gradle": true, "composer.json": true,
}

// InferFileType classifies a path as source, test, config, docs or asset.
func InferFileType(p string) string {
	lower := strings.ToLower(p)
	base := path.Base(lower)
	ext := path.Ext(lower)

	switch {
	case strings.Contains(lower, "test") || strings.Contains(lower, "spec.") || strings.Contains(lower, "__tests__"):
		return "test"
	case manifestNames[base] || configExtensions[ext] || strings.Contains(base, "dockerfile") || strings.Contains(base, ".config."):
		return "config"
	case docExtensions[ext]:
		return "docs"
	case sourceExtensions[ext]:
		return "source"
	default:
		return "asset"
	}
}

// ImportanceScore assigns the 3-10 heuristic importance used to pick
// representative files for the approach slide. Entry points and
// manifests score high, deeply nested and generated-looking paths low.
func ImportanceScore(p string) int {
	lower := strings.ToLower(p)
	base := path.Base(lower)
	score := 6

	switch {
	case manifestNames[base]:
		score += 3
	case base == "main.go" || base == "index.ts" || base == "index.js" || base == "app.py" || base == "main.py":
		score += 3
	case strings.HasPrefix(lower, "src/") || strings.HasPrefix(lower, "cmd/") || strings.HasPrefix(lower, "internal/"):
		score++
	}

	switch InferFileType(p) {
	case "test":
		score -= 2
	case "docs":
		score--
	case "asset":
		score -= 3
	}

	depth := strings.Count(lower, "/")
	if depth > 3 {
		score--
	}
	if strings.Contains(lower, "vendor/") || strings.Contains(lower, "node_modules/") || strings.Contains(lower, "dist/") {
		score = 3
	}

	if score < 3 {
		score = 3
	}
	if score > 10 {
		score = 10
	}
	return score
}
