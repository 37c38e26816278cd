package github

import (
	"reflect"
	"testing"

	"slidesmith/internal/core"
)

func TestParsePackageJSON(t *testing.T) {
	raw := `{
		"name": "demo",
		"dependencies": {"react": "^18.0.0", "express": "^4.18.0"},
		"devDependencies": {"jest": "^29.0.0"}
	}`

	got := ParsePackageJSON(raw)
	want := []core.Dependency{
		{Name: "express", Version: "^4.18.0", Kind: core.DependencyRuntime},
		{Name: "react", Version: "^18.0.0", Kind: core.DependencyRuntime},
		{Name: "jest", Version: "^29.0.0", Kind: core.DependencyDev},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParsePackageJSONMalformed(t *testing.T) {
	if got := ParsePackageJSON("{not json"); got != nil {
		t.Errorf("Expected nil for malformed manifest, got %v", got)
	}
}

func TestParsePackageJSONDeterministic(t *testing.T) {
	raw := `{"dependencies": {"c": "1", "a": "1", "b": "1"}}`
	first := ParsePackageJSON(raw)
	second := ParsePackageJSON(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected deterministic order, got %v and %v", first, second)
	}
	if first[0].Name != "a" || first[1].Name != "b" || first[2].Name != "c" {
		t.Errorf("Expected sorted dependency names, got %v", first)
	}
}

func TestParseGoMod(t *testing.T) {
	raw := `module demo

go 1.23

require (
	github.com/spf13/cobra v1.9.1
	github.com/inconshreveable/mousetrap v1.1.0 // indirect
)

require github.com/google/uuid v1.6.0
`

	got := ParseGoMod(raw)
	want := []core.Dependency{
		{Name: "github.com/spf13/cobra", Version: "v1.9.1", Kind: core.DependencyRuntime},
		{Name: "github.com/inconshreveable/mousetrap", Version: "v1.1.0", Kind: core.DependencyDev},
		{Name: "github.com/google/uuid", Version: "v1.6.0", Kind: core.DependencyRuntime},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
