package github

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"slidesmith/internal/core"
)

// InvalidInputError reports a repository URL that cannot be parsed.
// It is fatal: the orchestrator surfaces it immediately without any
// network activity.
type InvalidInputError struct {
	Input string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid repository URL: %q", e.Input)
}

// AcquisitionError reports a failed metadata fetch for a well-formed
// URL. The orchestrator recovers from it by synthesizing degraded
// metadata instead of failing the run.
type AcquisitionError struct {
	Repo string
	Err  error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("failed to acquire metadata for %s: %v", e.Repo, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// shorthandRe matches the bare owner/repo form.
var shorthandRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*/[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ParseRepoURL extracts owner and repository name from a GitHub URL or
// an owner/repo shorthand. Anything else yields an InvalidInputError.
func ParseRepoURL(raw string) (owner, repo string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", &InvalidInputError{Input: raw}
	}

	if shorthandRe.MatchString(raw) {
		parts := strings.SplitN(raw, "/", 2)
		return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
	}

	parsed, parseErr := url.Parse(raw)
	if parseErr != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", "", &InvalidInputError{Input: raw}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", "", &InvalidInputError{Input: raw}
	}
	if parsed.Host != "github.com" && parsed.Host != "www.github.com" {
		return "", "", &InvalidInputError{Input: raw}
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", "", &InvalidInputError{Input: raw}
	}
	return segments[0], strings.TrimSuffix(segments[1], ".git"), nil
}

// CanonicalURL returns the canonical repository URL used as the cache key.
func CanonicalURL(owner, repo string) string {
	return fmt.Sprintf("https://github.com/%s/%s", owner, repo)
}

// Synthesize builds minimal degraded metadata from the repository
// identity alone. It is pure and contains no project-specific values;
// every derived field stays empty so downstream heuristics settle on
// their generic fallbacks.
func Synthesize(owner, repo string) *core.RepositoryMetadata {
	return &core.RepositoryMetadata{
		Owner:       owner,
		Name:        repo,
		URL:         CanonicalURL(owner, repo),
		Languages:   map[string]int64{},
		Synthesized: true,
	}
}
