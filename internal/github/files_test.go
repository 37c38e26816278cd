package github

import "testing"

func TestInferFileType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"internal/parse/parse.go", "source"},
		{"internal/parse/parse_test.go", "test"},
		{"src/__tests__/app.spec.ts", "test"},
		{"config.yaml", "config"},
		{"package.json", "config"},
		{"Dockerfile", "config"},
		{"README.md", "docs"},
		{"assets/logo.png", "asset"},
	}

	for _, tt := range tests {
		if got := InferFileType(tt.path); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.path, tt.want, got)
		}
	}
}

func TestImportanceScoreBounds(t *testing.T) {
	paths := []string{
		"go.mod",
		"cmd/demo/main.go",
		"vendor/github.com/x/y/z.go",
		"a/b/c/d/e/assets/img.png",
		"README.md",
	}
	for _, p := range paths {
		score := ImportanceScore(p)
		if score < 3 || score > 10 {
			t.Errorf("%s: score %d outside 3-10", p, score)
		}
	}
}

func TestImportanceScoreRanksEntrypoints(t *testing.T) {
	if ImportanceScore("cmd/demo/main.go") <= ImportanceScore("assets/logo.png") {
		t.Error("Expected an entry point to outrank an asset")
	}
	if ImportanceScore("go.mod") <= ImportanceScore("vendor/github.com/x/y/z.go") {
		t.Error("Expected a manifest to outrank vendored code")
	}
}
