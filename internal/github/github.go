// Package github acquires repository metadata from the GitHub REST API,
// with an HTML-scrape fallback and a pure degraded-metadata synthesizer
// for when the network is unavailable entirely.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"slidesmith/internal/core"
)

const (
	apiBase = "https://api.github.com"

	// maxCommits and maxFiles cap list lengths so downstream stage
	// latency stays bounded.
	maxCommits = 50
	maxFiles   = 100
)

// Client is a thin wrapper around the GitHub REST API.
type Client struct {
	token      string
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an API client. The token may be empty for
// unauthenticated (rate-limited) access.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    apiBase,
	}
}

// NewClientWithBase creates a client against a non-default API base,
// used by tests.
func NewClientWithBase(token, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{token: token, httpClient: httpClient, baseURL: baseURL}
}

type repoResponse struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	HTMLURL     string    `json:"html_url"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
}

type commitResponse struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

type treeResponse struct {
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
		Size int64  `json:"size"`
	} `json:"tree"`
}

type readmeResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Fetch assembles the full RepositoryMetadata for owner/repo. The
// per-repository endpoints are fetched concurrently; failure of the
// main repository endpoint fails the whole fetch with an
// AcquisitionError, while the auxiliary endpoints (languages, commits,
// tree, readme, manifests) degrade to empty values individually.
func (c *Client) Fetch(ctx context.Context, owner, repo string) (*core.RepositoryMetadata, error) {
	full := owner + "/" + repo

	var repoInfo repoResponse
	if err := c.getJSON(ctx, fmt.Sprintf("%s/repos/%s", c.baseURL, full), &repoInfo); err != nil {
		return nil, &AcquisitionError{Repo: full, Err: err}
	}

	meta := &core.RepositoryMetadata{
		Owner:           repoInfo.Owner.Login,
		Name:            repoInfo.Name,
		URL:             repoInfo.HTMLURL,
		Description:     repoInfo.Description,
		PrimaryLanguage: repoInfo.Language,
		Languages:       map[string]int64{},
		Stars:           repoInfo.Stars,
		Forks:           repoInfo.Forks,
		CreatedAt:       repoInfo.CreatedAt,
		UpdatedAt:       repoInfo.UpdatedAt,
	}
	if meta.Owner == "" {
		meta.Owner = owner
	}
	if meta.URL == "" {
		meta.URL = CanonicalURL(owner, repo)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var langs map[string]int64
		if err := c.getJSON(gctx, fmt.Sprintf("%s/repos/%s/languages", c.baseURL, full), &langs); err == nil {
			meta.Languages = langs
		}
		return nil
	})

	g.Go(func() error {
		var commits []commitResponse
		url := fmt.Sprintf("%s/repos/%s/commits?per_page=%d", c.baseURL, full, maxCommits)
		if err := c.getJSON(gctx, url, &commits); err == nil {
			meta.Commits = convertCommits(commits)
		}
		return nil
	})

	g.Go(func() error {
		var tree treeResponse
		url := fmt.Sprintf("%s/repos/%s/git/trees/HEAD?recursive=1", c.baseURL, full)
		if err := c.getJSON(gctx, url, &tree); err == nil {
			meta.Files = convertTree(tree)
		}
		return nil
	})

	g.Go(func() error {
		var readme readmeResponse
		if err := c.getJSON(gctx, fmt.Sprintf("%s/repos/%s/readme", c.baseURL, full), &readme); err == nil {
			meta.Readme = decodeReadme(readme)
		}
		return nil
	})

	g.Go(func() error {
		meta.Dependencies = c.fetchDependencies(gctx, full)
		return nil
	})

	// The goroutines above only report nil; Wait is for ordering.
	_ = g.Wait()

	return meta, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func convertCommits(in []commitResponse) []core.Commit {
	if len(in) > maxCommits {
		in = in[:maxCommits]
	}
	out := make([]core.Commit, 0, len(in))
	for _, c := range in {
		out = append(out, core.Commit{
			SHA:     c.SHA,
			Message: firstLine(c.Commit.Message),
			Author:  c.Commit.Author.Name,
			Date:    c.Commit.Author.Date,
		})
	}
	return out
}

func convertTree(tree treeResponse) []core.RepoFile {
	out := make([]core.RepoFile, 0, maxFiles)
	for _, entry := range tree.Tree {
		if entry.Type != "blob" {
			continue
		}
		out = append(out, core.RepoFile{
			Path:       entry.Path,
			Size:       entry.Size,
			Type:       InferFileType(entry.Path),
			Importance: ImportanceScore(entry.Path),
		})
		if len(out) == maxFiles {
			break
		}
	}
	return out
}

func decodeReadme(r readmeResponse) string {
	if r.Encoding != "base64" {
		return r.Content
	}
	decoded, err := base64.StdEncoding.DecodeString(r.Content)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
