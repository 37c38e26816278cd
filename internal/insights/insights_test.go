package insights

import (
	"reflect"
	"strings"
	"testing"

	"slidesmith/internal/core"
)

func repoWithFiles(paths ...string) *core.RepositoryMetadata {
	files := make([]core.RepoFile, 0, len(paths))
	for _, p := range paths {
		files = append(files, core.RepoFile{Path: p})
	}
	return &core.RepositoryMetadata{Owner: "octo", Name: "demo", Files: files}
}

func commits(n int) []core.Commit {
	out := make([]core.Commit, n)
	for i := range out {
		out[i] = core.Commit{SHA: "abc", Message: "change"}
	}
	return out
}

func TestComputeDeterministic(t *testing.T) {
	meta := repoWithFiles("app/models/user.rb", "app/views/index.erb", "app/controllers/users.rb", "cmd/demo/main.go")
	meta.Languages = map[string]int64{"Ruby": 1000, "Go": 500}
	meta.Commits = commits(30)
	meta.Stars = 42

	first := Compute(meta)
	second := Compute(meta)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical insights for identical metadata, got %+v and %+v", first, second)
	}
}

func TestComputeArchitecturePriority(t *testing.T) {
	meta := repoWithFiles("app/models/user.rb", "app/views/index.erb", "app/controllers/users.rb", "cmd/demo/main.go")

	ins := Compute(meta)
	if ins.Architecture != "MVC" {
		t.Errorf("Expected architecture MVC, got %s", ins.Architecture)
	}
	if len(ins.Patterns) != 2 || ins.Patterns[0] != "MVC" || ins.Patterns[1] != "CLI Tool" {
		t.Errorf("Expected patterns [MVC, CLI Tool], got %v", ins.Patterns)
	}
}

func TestComputeEmptyMetadata(t *testing.T) {
	meta := &core.RepositoryMetadata{Owner: "octo", Name: "demo"}

	ins := Compute(meta)
	if ins.Architecture != CustomArchitecture {
		t.Errorf("Expected %s for empty metadata, got %s", CustomArchitecture, ins.Architecture)
	}
	if ins.Complexity != core.ComplexityLow {
		t.Errorf("Expected low complexity for empty metadata, got %s", ins.Complexity)
	}
	if ins.Maturity != core.MaturityEarly {
		t.Errorf("Expected early maturity for empty metadata, got %s", ins.Maturity)
	}
}

func TestComplexityTierBuckets(t *testing.T) {
	tests := []struct {
		name    string
		files   int
		langs   int
		commits int
		want    core.ComplexityTier
	}{
		{"empty", 0, 0, 0, core.ComplexityLow},
		{"small", 10, 1, 10, core.ComplexityLow},
		{"medium mix", 30, 2, 60, core.ComplexityMedium},
		{"large everything", 120, 6, 120, core.ComplexityHigh},
	}

	for _, tt := range tests {
		meta := &core.RepositoryMetadata{
			Files:     make([]core.RepoFile, tt.files),
			Languages: map[string]int64{},
			Commits:   commits(tt.commits),
		}
		for i := 0; i < tt.langs; i++ {
			meta.Languages[string(rune('a'+i))] = 100
		}

		if got := ComplexityTier(meta); got != tt.want {
			t.Errorf("%s: expected complexity %s, got %s", tt.name, tt.want, got)
		}
	}
}

func TestComplexityMonotonicInFileCount(t *testing.T) {
	rank := map[core.ComplexityTier]int{
		core.ComplexityLow:    0,
		core.ComplexityMedium: 1,
		core.ComplexityHigh:   2,
	}

	prev := -1
	for _, n := range []int{0, 10, 21, 51, 101, 250} {
		meta := &core.RepositoryMetadata{Files: make([]core.RepoFile, n)}
		got := rank[ComplexityTier(meta)]
		if got < prev {
			t.Errorf("Complexity dropped when file count grew to %d", n)
		}
		prev = got
	}
}

func TestMaturityTierMature(t *testing.T) {
	meta := repoWithFiles("internal/app/app_test.go", "config.yaml", "main.go")
	meta.Readme = strings.Repeat("a", 3500)
	meta.Stars = 150
	meta.Commits = commits(120)

	if got := MaturityTier(meta); got != core.MaturityMature {
		t.Errorf("Expected mature, got %s", got)
	}
}

func TestMaturityTierDeveloping(t *testing.T) {
	meta := repoWithFiles("src/app_test.go", "main.go")
	meta.Readme = strings.Repeat("a", 600)

	if got := MaturityTier(meta); got != core.MaturityDeveloping {
		t.Errorf("Expected developing, got %s", got)
	}
}

func TestDetectFrameworks(t *testing.T) {
	meta := &core.RepositoryMetadata{
		Dependencies: []core.Dependency{
			{Name: "react", Kind: core.DependencyRuntime},
			{Name: "typescript", Kind: core.DependencyDev},
		},
		Files: []core.RepoFile{{Path: "docker-compose.yml"}},
	}

	got := DetectFrameworks(meta)
	want := []string{"React", "TypeScript", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected frameworks %v, got %v", want, got)
	}
}

func TestRisksForSynthesizedMetadata(t *testing.T) {
	meta := &core.RepositoryMetadata{Owner: "octo", Name: "demo", Synthesized: true}

	ins := Compute(meta)
	found := false
	for _, r := range ins.Risks {
		if strings.Contains(r, "synthesized") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a synthesized-metadata risk, got %v", ins.Risks)
	}
}
