package core

import "time"

// DependencyKind classifies a dependency as runtime or development-only.
type DependencyKind string

const (
	DependencyRuntime DependencyKind = "runtime"
	DependencyDev     DependencyKind = "dev"
)

// Dependency represents a single entry from a repository's manifest file.
type Dependency struct {
	Name    string         `json:"name"`    // Package name as it appears in the manifest
	Version string         `json:"version"` // Declared version constraint (may be empty)
	Kind    DependencyKind `json:"kind"`    // runtime or dev
}

// Commit represents one entry from the repository's commit history.
type Commit struct {
	SHA     string    `json:"sha"`     // Commit hash
	Message string    `json:"message"` // First line of the commit message
	Author  string    `json:"author"`  // Author name
	Date    time.Time `json:"date"`    // Author timestamp
}

// RepoFile represents a single file in the repository tree.
type RepoFile struct {
	Path       string `json:"path"`       // Path relative to the repository root
	Size       int64  `json:"size"`       // Size in bytes
	Type       string `json:"type"`       // Inferred type (source, test, config, docs, asset)
	Importance int    `json:"importance"` // Heuristic importance score, 3-10
}

// RepositoryMetadata is the immutable input to the generation pipeline.
// It is fetched once per generation request (or served from the cache)
// and never mutated by the transform stages.
type RepositoryMetadata struct {
	Owner           string           `json:"owner"`            // Repository owner login
	Name            string           `json:"name"`             // Repository name
	URL             string           `json:"url"`              // Canonical repository URL
	Description     string           `json:"description"`      // Short description (may be empty)
	PrimaryLanguage string           `json:"primary_language"` // Dominant language by bytes
	Languages       map[string]int64 `json:"languages"`        // Language name -> byte count
	Dependencies    []Dependency     `json:"dependencies"`     // Parsed manifest dependencies
	Commits         []Commit         `json:"commits"`          // Recent commits, capped at 50
	Files           []RepoFile       `json:"files"`            // Repository files, capped at 100
	Readme          string           `json:"readme"`           // README contents (may be empty)
	Stars           int              `json:"stars"`            // Stargazer count
	Forks           int              `json:"forks"`            // Fork count
	CreatedAt       time.Time        `json:"created_at"`       // Repository creation time
	UpdatedAt       time.Time        `json:"updated_at"`       // Last update time
	Synthesized     bool             `json:"synthesized"`      // True when built from the URL alone after a fetch failure
}

// CommitCount returns the number of known commits.
func (m *RepositoryMetadata) CommitCount() int { return len(m.Commits) }

// FullName returns the owner/name form of the repository identity.
func (m *RepositoryMetadata) FullName() string {
	if m.Owner == "" {
		return m.Name
	}
	return m.Owner + "/" + m.Name
}

// ComplexityTier buckets a repository's structural complexity.
type ComplexityTier string

const (
	ComplexityLow    ComplexityTier = "low"
	ComplexityMedium ComplexityTier = "medium"
	ComplexityHigh   ComplexityTier = "high"
)

// MaturityTier buckets a repository's project maturity.
type MaturityTier string

const (
	MaturityEarly      MaturityTier = "early"
	MaturityDeveloping MaturityTier = "developing"
	MaturityMature     MaturityTier = "mature"
)

// Insights is the derived classification record. It is recomputed on
// every generation run and never persisted independently.
//
// Architecture is the single classification label used by all branching
// logic; Patterns retains every matched pattern and is consumed only by
// display surfaces (slide bullets, rendering).
type Insights struct {
	Architecture string         `json:"architecture"` // Best-match label, "Custom Architecture" when no rule fires
	Patterns     []string       `json:"patterns"`     // All matched pattern labels, priority order
	Complexity   ComplexityTier `json:"complexity"`   // low / medium / high
	Maturity     MaturityTier   `json:"maturity"`     // early / developing / mature
	Frameworks   []string       `json:"frameworks"`   // Detected frameworks and tools
	Strengths    []string       `json:"strengths"`    // Short strength labels
	Risks        []string       `json:"risks"`        // Short risk labels
}

// Language is a supported output language for narratives and decks.
type Language string

const (
	LangJA Language = "ja"
	LangEN Language = "en"
	LangZH Language = "zh"
)

// VisualKind tags the payload carried by a VisualElement.
type VisualKind string

const (
	VisualMetrics    VisualKind = "metrics"
	VisualLanguages  VisualKind = "languages"
	VisualFrameworks VisualKind = "frameworks"
)

// RepoMetrics is the payload for a metrics visual element.
type RepoMetrics struct {
	Stars   int `json:"stars"`
	Forks   int `json:"forks"`
	Commits int `json:"commits"`
}

// VisualElement is a typed rendering hint attached to a story section.
// Exactly one payload field is set, selected by Kind. It is consumed
// only by the assembler and renderers, never by narrative logic.
type VisualElement struct {
	Kind       VisualKind       `json:"kind"`
	Metrics    *RepoMetrics     `json:"metrics,omitempty"`    // Set when Kind == metrics
	Languages  map[string]int64 `json:"languages,omitempty"`  // Set when Kind == languages
	Frameworks []string         `json:"frameworks,omitempty"` // Set when Kind == frameworks
}

// StorySection is one of the five narrative sections.
type StorySection struct {
	Title   string         `json:"title"`            // Localized section title
	Content string         `json:"content"`          // Prose content, never empty
	Hook    string         `json:"hook,omitempty"`   // Rhetorical opener, set on the Why section only
	Bullets []string       `json:"bullets"`          // Relevance-ordered highlights; truncation happens in the assembler
	Visual  *VisualElement `json:"visual,omitempty"` // Optional rendering hint
}

// StoryStructure is the five-part Why/Problem/Approach/Result/Next
// narrative. All five sections are always populated; sparse metadata
// falls back to generic template text rather than dropping a section.
type StoryStructure struct {
	Why      StorySection `json:"why"`
	Problem  StorySection `json:"problem"`
	Approach StorySection `json:"approach"`
	Result   StorySection `json:"result"`
	Next     StorySection `json:"next"`
	Language Language     `json:"language"`
}

// Sections returns the five sections in narrative order.
func (s *StoryStructure) Sections() []StorySection {
	return []StorySection{s.Why, s.Problem, s.Approach, s.Result, s.Next}
}

// Mode selects the deck template family.
type Mode string

const (
	ModeTED   Mode = "ted"   // General-audience storytelling skeleton
	ModeIMRAD Mode = "imrad" // Introduction-Methods-Results-Discussion skeleton
)

// SlideType classifies a slide for rendering.
type SlideType string

const (
	SlideTitle      SlideType = "title"
	SlideContent    SlideType = "content"
	SlideImage      SlideType = "image"
	SlideCode       SlideType = "code"
	SlideChart      SlideType = "chart"
	SlideConclusion SlideType = "conclusion"
)

// ChartType selects the declarative chart form.
type ChartType string

const (
	ChartBar ChartType = "bar"
	ChartPie ChartType = "pie"
)

// ChartSpec is a declarative chart description. Rendering to an image
// or markup is an external collaborator's job.
type ChartSpec struct {
	Type   ChartType `json:"type"`
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// Slide is a single deck entry with its time budget.
type Slide struct {
	ID           string     `json:"id"`              // Sequential id, "slide-1", "slide-2", ...
	Type         SlideType  `json:"type"`            // Slide kind for renderers
	Title        string     `json:"title"`           // Localized slide title
	Content      string     `json:"content"`         // Main prose content
	Bullets      []string   `json:"bullets"`         // At most three bullets
	Code         string     `json:"code,omitempty"`  // Optional code snippet
	Chart        *ChartSpec `json:"chart,omitempty"` // Optional chart spec
	SpeakerNotes string     `json:"speaker_notes"`   // Presenter notes, never empty
	Duration     int        `json:"duration"`        // Time budget in seconds
}

// SlidePresentation is the finished deck plus back-references to its
// inputs, the unit persisted by the store.
type SlidePresentation struct {
	ID              string              `json:"id"`               // Unique presentation id
	Title           string              `json:"title"`            // Deck title
	Mode            Mode                `json:"mode"`             // ted or imrad
	Language        Language            `json:"language"`         // ja, en or zh
	DurationMinutes int                 `json:"duration_minutes"` // Target duration, 3 or 5
	Slides          []Slide             `json:"slides"`           // Ordered slides
	Story           *StoryStructure     `json:"story"`            // Originating narrative
	Metadata        *RepositoryMetadata `json:"metadata"`         // Originating metadata
	CreatedAt       time.Time           `json:"created_at"`       // Generation timestamp
}

// TotalDuration returns the sum of per-slide time budgets in seconds.
func (p *SlidePresentation) TotalDuration() int {
	total := 0
	for _, s := range p.Slides {
		total += s.Duration
	}
	return total
}

// Stage identifies a pipeline state.
type Stage string

const (
	StageRepository Stage = "repository"
	StageFiles      Stage = "files"
	StageStory      Stage = "story"
	StageSlides     Stage = "slides"
	StageComplete   Stage = "complete"
	StageError      Stage = "error"
)

// Progress is the record emitted to observers at each state transition.
type Progress struct {
	Stage   Stage  `json:"stage"`
	Percent int    `json:"progress"` // 0-100
	Message string `json:"message"`  // Human-readable status
	Err     error  `json:"-"`        // Set only in the error state
}
