package github

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"slidesmith/internal/core"
)

// Scraper extracts minimal repository metadata from the public GitHub
// HTML page. It is the middle rung of the acquisition ladder: tried
// after the REST API fails and before pure synthesis, so decks built
// without API access still carry a real description and star count.
type Scraper struct {
	httpClient *http.Client
	baseURL    string
}

// NewScraper creates a scraper against github.com.
func NewScraper() *Scraper {
	return &Scraper{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    "https://github.com",
	}
}

// NewScraperWithBase creates a scraper against a non-default base, used
// by tests.
func NewScraperWithBase(baseURL string, httpClient *http.Client) *Scraper {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Scraper{httpClient: httpClient, baseURL: baseURL}
}

var countSuffixRe = regexp.MustCompile(`^([\d.,]+)([km]?)$`)

// Fetch fetches the repository page and pulls out description, star
// and fork counts and the primary language. Anything it cannot find
// stays at its zero value; a failed page load is an AcquisitionError.
func (s *Scraper) Fetch(ctx context.Context, owner, repo string) (*core.RepositoryMetadata, error) {
	full := owner + "/" + repo
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+full, nil)
	if err != nil {
		return nil, &AcquisitionError{Repo: full, Err: err}
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &AcquisitionError{Repo: full, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &AcquisitionError{Repo: full, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &AcquisitionError{Repo: full, Err: err}
	}

	meta := Synthesize(owner, repo)
	meta.Description = scrapeDescription(doc)
	meta.Stars = scrapeCount(doc, "#repo-stars-counter-star")
	meta.Forks = scrapeCount(doc, "#repo-network-counter")
	meta.PrimaryLanguage = strings.TrimSpace(doc.Find("span.color-fg-default.text-bold.mr-1").First().Text())
	return meta, nil
}

func scrapeDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find("meta[property='og:description']").Attr("content"); ok {
		// GitHub appends a contributor suffix to the OG description.
		if idx := strings.Index(desc, " - "); idx > 0 {
			desc = desc[idx+3:]
		}
		return strings.TrimSpace(desc)
	}
	return strings.TrimSpace(doc.Find("p.f4.my-3").First().Text())
}

func scrapeCount(doc *goquery.Document, selector string) int {
	text := strings.ToLower(strings.TrimSpace(doc.Find(selector).First().Text()))
	if title, ok := doc.Find(selector).Attr("title"); ok {
		text = strings.ToLower(strings.TrimSpace(title))
	}
	return parseCount(text)
}

// parseCount handles GitHub's abbreviated counters ("1.2k", "3m") as
// well as exact comma-separated values.
func parseCount(text string) int {
	m := countSuffixRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0
	}
	switch m[2] {
	case "k":
		value *= 1_000
	case "m":
		value *= 1_000_000
	}
	return int(value)
}
