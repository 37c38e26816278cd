package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"42", 42},
		{"1,234", 1234},
		{"1.2k", 1200},
		{"3m", 3000000},
		{"", 0},
		{"n/a", 0},
	}

	for _, tt := range tests {
		if got := parseCount(tt.text); got != tt.want {
			t.Errorf("%q: expected %d, got %d", tt.text, tt.want, got)
		}
	}
}

func TestScrape(t *testing.T) {
	page := `<html><head>
		<meta property="og:description" content="octo/demo - A fast JSON parser">
	</head><body>
		<span id="repo-stars-counter-star" title="1,234">1.2k</span>
		<span id="repo-network-counter">56</span>
		<span class="color-fg-default text-bold mr-1">Go</span>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/octo/demo" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, page)
	}))
	defer server.Close()

	scraper := NewScraperWithBase(server.URL, server.Client())
	meta, err := scraper.Fetch(context.Background(), "octo", "demo")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if meta.Description != "A fast JSON parser" {
		t.Errorf("Expected contributor prefix stripped, got %q", meta.Description)
	}
	if meta.Stars != 1234 {
		t.Errorf("Expected exact star count from title attribute, got %d", meta.Stars)
	}
	if meta.Forks != 56 {
		t.Errorf("Expected 56 forks, got %d", meta.Forks)
	}
	if meta.PrimaryLanguage != "Go" {
		t.Errorf("Expected primary language Go, got %q", meta.PrimaryLanguage)
	}
	if !meta.Synthesized {
		t.Error("Expected scraped metadata to keep the degraded flag")
	}
}

func TestScrapeNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer server.Close()

	scraper := NewScraperWithBase(server.URL, server.Client())
	if _, err := scraper.Fetch(context.Background(), "octo", "gone"); err == nil {
		t.Error("Expected an error for a missing page")
	}
}
