package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"slidesmith/internal/core"
)

type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// fetchDependencies pulls the dependency list out of whichever manifest
// the repository carries. Both lookups are best effort; a repository
// without a recognized manifest simply has no dependencies.
func (c *Client) fetchDependencies(ctx context.Context, full string) []core.Dependency {
	if raw, ok := c.fetchFileContents(ctx, full, "package.json"); ok {
		if deps := ParsePackageJSON(raw); len(deps) > 0 {
			return deps
		}
	}
	if raw, ok := c.fetchFileContents(ctx, full, "go.mod"); ok {
		if deps := ParseGoMod(raw); len(deps) > 0 {
			return deps
		}
	}
	return nil
}

func (c *Client) fetchFileContents(ctx context.Context, full, path string) (string, bool) {
	var resp contentsResponse
	url := fmt.Sprintf("%s/repos/%s/contents/%s", c.baseURL, full, path)
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return "", false
	}
	if resp.Encoding == "base64" {
		decoded, err := base64.StdEncoding.DecodeString(resp.Content)
		if err != nil {
			return "", false
		}
		return string(decoded), true
	}
	return resp.Content, true
}

type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// ParsePackageJSON extracts runtime and dev dependencies from a
// package.json document. Malformed input yields an empty list.
func ParsePackageJSON(raw string) []core.Dependency {
	var manifest packageJSON
	if err := json.Unmarshal([]byte(raw), &manifest); err != nil {
		return nil
	}

	deps := make([]core.Dependency, 0, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for _, name := range sortedKeys(manifest.Dependencies) {
		deps = append(deps, core.Dependency{Name: name, Version: manifest.Dependencies[name], Kind: core.DependencyRuntime})
	}
	for _, name := range sortedKeys(manifest.DevDependencies) {
		deps = append(deps, core.Dependency{Name: name, Version: manifest.DevDependencies[name], Kind: core.DependencyDev})
	}
	return deps
}

// ParseGoMod extracts require directives from a go.mod file. Indirect
// requirements count as dev dependencies.
func ParseGoMod(raw string) []core.Dependency {
	var deps []core.Dependency
	inBlock := false
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "require (":
			inBlock = true
			continue
		case inBlock && line == ")":
			inBlock = false
			continue
		}

		var spec string
		if inBlock {
			spec = line
		} else if strings.HasPrefix(line, "require ") {
			spec = strings.TrimPrefix(line, "require ")
		} else {
			continue
		}

		fields := strings.Fields(spec)
		if len(fields) < 2 {
			continue
		}
		kind := core.DependencyRuntime
		if strings.Contains(spec, "// indirect") {
			kind = core.DependencyDev
		}
		deps = append(deps, core.Dependency{Name: fields[0], Version: fields[1], Kind: kind})
	}
	return deps
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Manifest maps have no stable order; sort so metadata is
	// deterministic run to run.
	sort.Strings(keys)
	return keys
}
