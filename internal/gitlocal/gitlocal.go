// Package gitlocal builds RepositoryMetadata from a local clone, so a
// deck can be generated entirely offline. It mirrors the caps applied
// by the remote acquisition path: 50 commits, 100 files.
package gitlocal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"slidesmith/internal/core"
	"slidesmith/internal/github"
)

const (
	maxCommits = 50
	maxFiles   = 100
)

// extLanguages maps file extensions to GitHub-style language names for
// the byte distribution.
var extLanguages = map[string]string{
	".go":   "Go",
	".ts":   "TypeScript",
	".tsx":  "TypeScript",
	".js":   "JavaScript",
	".jsx":  "JavaScript",
	".py":   "Python",
	".rb":   "Ruby",
	".java": "Java",
	".kt":   "Kotlin",
	".rs":   "Rust",
	".c":    "C",
	".h":    "C",
	".cpp":  "C++",
	".cs":   "C#",
	".php":  "PHP",
	".html": "HTML",
	".css":  "CSS",
	".vue":  "Vue",
	".sh":   "Shell",
}

// skipDirs are directory names excluded from the file walk.
var skipDirs = map[string]bool{
	".git": true, "node_modules": true, "vendor": true, "dist": true,
	"build": true, ".next": true, "target": true,
}

// BuildMetadata opens the repository at path and derives the same
// metadata shape the remote fetcher produces.
func BuildMetadata(path string) (*core.RepositoryMetadata, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	name := filepath.Base(abs)

	meta := &core.RepositoryMetadata{
		Name:      name,
		URL:       "file://" + abs,
		Languages: map[string]int64{},
	}

	if owner, repoName, ok := remoteIdentity(repo); ok {
		meta.Owner = owner
		meta.Name = repoName
		meta.URL = github.CanonicalURL(owner, repoName)
	}

	meta.Commits = collectCommits(repo)
	if err := collectFiles(abs, meta); err != nil {
		return nil, err
	}
	meta.PrimaryLanguage = dominantLanguage(meta.Languages)
	meta.Dependencies = collectDependencies(abs)
	meta.Readme = readReadme(abs)

	if len(meta.Commits) > 0 {
		meta.UpdatedAt = meta.Commits[0].Date
		meta.CreatedAt = meta.Commits[len(meta.Commits)-1].Date
	}

	return meta, nil
}

// remoteIdentity recovers owner/name from the origin remote when the
// clone has one pointing at GitHub.
func remoteIdentity(repo *git.Repository) (string, string, bool) {
	remote, err := repo.Remote("origin")
	if err != nil || len(remote.Config().URLs) == 0 {
		return "", "", false
	}
	raw := remote.Config().URLs[0]

	// Normalize the scp-like ssh form before parsing.
	raw = strings.TrimSuffix(raw, ".git")
	if strings.HasPrefix(raw, "git@github.com:") {
		raw = "https://github.com/" + strings.TrimPrefix(raw, "git@github.com:")
	}

	owner, name, err := github.ParseRepoURL(raw)
	if err != nil {
		return "", "", false
	}
	return owner, name, true
}

func collectCommits(repo *git.Repository) []core.Commit {
	head, err := repo.Head()
	if err != nil {
		return nil
	}
	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil
	}
	defer iter.Close()

	var commits []core.Commit
	_ = iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, core.Commit{
			SHA:     c.Hash.String(),
			Message: firstLine(c.Message),
			Author:  c.Author.Name,
			Date:    c.Author.When,
		})
		if len(commits) == maxCommits {
			return storer.ErrStop
		}
		return nil
	})
	return commits
}

func collectFiles(root string, meta *core.RepositoryMetadata) error {
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if len(meta.Files) >= maxFiles {
			return filepath.SkipAll
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			return nil
		}

		meta.Files = append(meta.Files, core.RepoFile{
			Path:       rel,
			Size:       info.Size(),
			Type:       github.InferFileType(rel),
			Importance: github.ImportanceScore(rel),
		})
		if lang, ok := extLanguages[strings.ToLower(filepath.Ext(rel))]; ok {
			meta.Languages[lang] += info.Size()
		}
		return nil
	})
}

func dominantLanguage(languages map[string]int64) string {
	var best string
	var bestBytes int64
	for lang, bytes := range languages {
		if bytes > bestBytes || (bytes == bestBytes && lang < best) {
			best = lang
			bestBytes = bytes
		}
	}
	return best
}

func collectDependencies(root string) []core.Dependency {
	if raw, err := os.ReadFile(filepath.Join(root, "package.json")); err == nil {
		if deps := github.ParsePackageJSON(string(raw)); len(deps) > 0 {
			return deps
		}
	}
	if raw, err := os.ReadFile(filepath.Join(root, "go.mod")); err == nil {
		if deps := github.ParseGoMod(string(raw)); len(deps) > 0 {
			return deps
		}
	}
	return nil
}

func readReadme(root string) string {
	for _, name := range []string{"README.md", "README.rst", "README.txt", "readme.md", "README"} {
		if raw, err := os.ReadFile(filepath.Join(root, name)); err == nil {
			return string(raw)
		}
	}
	return ""
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
