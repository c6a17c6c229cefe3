package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Format identifies one of the supported article output shapes.
type Format string

const (
	// FormatBlogPost is a full article with introduction, sections, and conclusion.
	FormatBlogPost Format = "blog"
	// FormatFAQ is a question-and-answer article extracted from the content.
	FormatFAQ Format = "faq"
	// FormatListicle is a numbered list of key points and insights.
	FormatListicle Format = "listicle"
	// FormatSummary is a brief executive summary (2-3 paragraphs).
	FormatSummary Format = "summary"
	// FormatSocial is a set of short snippets for social media (under 280 chars).
	FormatSocial Format = "social"
)

// AllFormats returns every supported format in canonical generation order.
func AllFormats() []Format {
	return []Format{FormatBlogPost, FormatFAQ, FormatListicle, FormatSummary, FormatSocial}
}

// ParseFormat maps a user-supplied name to a Format. Unknown names are an
// error here: the closed format set is validated at the CLI boundary, before
// anything reaches the generation pipeline.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatBlogPost, "blog-post", "blogpost":
		return FormatBlogPost, nil
	case FormatFAQ:
		return FormatFAQ, nil
	case FormatListicle:
		return FormatListicle, nil
	case FormatSummary:
		return FormatSummary, nil
	case FormatSocial:
		return FormatSocial, nil
	}
	return "", fmt.Errorf("unknown article format %q (valid: blog, faq, listicle, summary, social)", name)
}

// TopicAnalysis holds the structured information extracted once from source
// text and shared, read-only, across every format generation in a run.
type TopicAnalysis struct {
	Topics   []string `json:"topics"`   // Main topics discussed in the source
	Insights []string `json:"insights"` // Key insights or takeaways
	Quotes   []string `json:"quotes"`   // Notable quotes or statements
	Titles   []string `json:"titles"`   // Suggested article titles
}

// Article is one generated artifact in a single format.
type Article struct {
	ID           string    `json:"id"`            // Unique identifier for the article
	Title        string    `json:"title"`         // Resolved title
	Format       Format    `json:"format"`        // Output format this article was generated in
	Content      string    `json:"content"`       // Format-specific markdown body
	Topics       []string  `json:"topics"`        // Snapshot of the topic list used during generation
	WordCount    int       `json:"word_count"`    // Whitespace-token count of Content, derived at construction
	QualityScore float64   `json:"quality_score"` // 1-10 rubric score; zero until scored
	CreatedAt    time.Time `json:"created_at"`    // Timestamp when the article was generated
}

// NewArticle constructs an Article. WordCount is always derived from content
// here and is not independently settable.
func NewArticle(title string, format Format, content string, topics []string) Article {
	return Article{
		ID:        uuid.NewString(),
		Title:     title,
		Format:    format,
		Content:   content,
		Topics:    append([]string(nil), topics...),
		WordCount: len(strings.Fields(content)),
		CreatedAt: time.Now().UTC(),
	}
}

// GenerationResult aggregates one generation run. It is immutable once
// returned to the caller.
type GenerationResult struct {
	ID         string         `json:"id"`         // Unique identifier for the run
	SourceText string         `json:"-"`          // Original source text
	Topics     *TopicAnalysis `json:"topics"`     // Topic analysis shared across the run
	Articles   []Article      `json:"articles"`   // Generated articles, in request order
	Duration   time.Duration  `json:"duration"`   // Wall-clock duration of the run
	CreatedAt  time.Time      `json:"created_at"` // Timestamp when the run started
}

// ProgressFunc receives progress checkpoints as a percentage (0-100) and a
// short status message. Callbacks are invoked synchronously on the calling
// goroutine; a nil ProgressFunc is allowed everywhere.
type ProgressFunc func(pct int, status string)

// Report invokes the callback if it is non-nil.
func (f ProgressFunc) Report(pct int, status string) {
	if f != nil {
		f(pct, status)
	}
}
