package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchAssemblesMetadata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/demo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"name": "demo",
			"description": "A fast JSON parser",
			"language": "Go",
			"stargazers_count": 42,
			"forks_count": 7,
			"html_url": "https://github.com/octo/demo",
			"owner": {"login": "octo"}
		}`)
	})
	mux.HandleFunc("/repos/octo/demo/languages", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Go": 9000, "Makefile": 100}`)
	})
	mux.HandleFunc("/repos/octo/demo/commits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"sha": "abc123", "commit": {"message": "first line\nbody", "author": {"name": "Octo"}}}]`)
	})
	mux.HandleFunc("/repos/octo/demo/git/trees/HEAD", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tree": [
			{"path": "main.go", "type": "blob", "size": 100},
			{"path": "internal", "type": "tree", "size": 0},
			{"path": "main_test.go", "type": "blob", "size": 50}
		]}`)
	})
	mux.HandleFunc("/repos/octo/demo/readme", func(w http.ResponseWriter, r *http.Request) {
		content := base64.StdEncoding.EncodeToString([]byte("# demo"))
		fmt.Fprintf(w, `{"content": %q, "encoding": "base64"}`, content)
	})
	// Manifest endpoints are absent; dependencies degrade to empty.

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClientWithBase("", server.URL, server.Client())
	meta, err := client.Fetch(context.Background(), "octo", "demo")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if meta.FullName() != "octo/demo" {
		t.Errorf("Expected octo/demo, got %s", meta.FullName())
	}
	if meta.Stars != 42 || meta.Forks != 7 {
		t.Errorf("Expected 42 stars and 7 forks, got %d and %d", meta.Stars, meta.Forks)
	}
	if meta.Languages["Go"] != 9000 {
		t.Errorf("Expected Go byte count 9000, got %d", meta.Languages["Go"])
	}
	if len(meta.Commits) != 1 || meta.Commits[0].Message != "first line" {
		t.Errorf("Expected one commit with first-line message, got %v", meta.Commits)
	}
	if len(meta.Files) != 2 {
		t.Errorf("Expected tree entries filtered to blobs, got %v", meta.Files)
	}
	if meta.Files[1].Type != "test" {
		t.Errorf("Expected inferred test type, got %s", meta.Files[1].Type)
	}
	if meta.Readme != "# demo" {
		t.Errorf("Expected decoded readme, got %q", meta.Readme)
	}
	if meta.Synthesized {
		t.Error("API-fetched metadata must not carry the degraded flag")
	}
}

func TestFetchFailsOnRepoEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer server.Close()

	client := NewClientWithBase("", server.URL, server.Client())
	_, err := client.Fetch(context.Background(), "octo", "gone")
	if err == nil {
		t.Fatal("Expected an error when the repository endpoint fails")
	}
	if _, ok := err.(*AcquisitionError); !ok {
		t.Errorf("Expected AcquisitionError, got %T", err)
	}
}

func TestConvertCommitsCaps(t *testing.T) {
	in := make([]commitResponse, maxCommits+20)
	if got := len(convertCommits(in)); got != maxCommits {
		t.Errorf("Expected commits capped at %d, got %d", maxCommits, got)
	}
}

func TestConvertTreeCaps(t *testing.T) {
	var tree treeResponse
	for i := 0; i < maxFiles+30; i++ {
		tree.Tree = append(tree.Tree, struct {
			Path string `json:"path"`
			Type string `json:"type"`
			Size int64  `json:"size"`
		}{Path: fmt.Sprintf("file%d.go", i), Type: "blob"})
	}
	if got := len(convertTree(tree)); got != maxFiles {
		t.Errorf("Expected files capped at %d, got %d", maxFiles, got)
	}
}
