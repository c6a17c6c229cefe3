// Package generate orchestrates multi-format article generation.
package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"draftsmith/internal/core"
	"draftsmith/internal/llm"
	"draftsmith/internal/logger"
	"draftsmith/internal/templates"
	"draftsmith/internal/topics"
)

// Generation is a creative task, unlike extraction, so it runs with higher
// randomness and a large output budget.
const (
	generationTemperature = 0.7
	generationMaxTokens   = 4096
)

// FailedTitle marks the sentinel article produced when the service returns
// nothing; callers detect failure by inspecting title and content.
const FailedTitle = "Generation Failed"

const failedContent = "Unable to generate article. Please check the text-generation service connection."

// Generator sequences topic extraction, prompt building, service calls,
// and title resolution across one or many formats. Every stage is
// synchronous; a single request is in flight against the backend at a time.
type Generator struct {
	client    llm.Client
	extractor *topics.Extractor
}

// New creates a Generator on top of the given service client.
func New(client llm.Client) *Generator {
	return &Generator{
		client:    client,
		extractor: topics.NewExtractor(client),
	}
}

// Available reports whether the text-generation service answers a probe.
func (g *Generator) Available(ctx context.Context) bool {
	return g.client.Probe(ctx).Available
}

// ExtractTopics runs topic extraction on its own. See topics.Extractor.
func (g *Generator) ExtractTopics(ctx context.Context, text string, onProgress core.ProgressFunc) *core.TopicAnalysis {
	return g.extractor.Extract(ctx, text, onProgress)
}

// GenerateArticle produces a single article in the given format. When
// analysis is nil, topics are extracted first and bear their own progress
// weight. Service failure yields the sentinel failure article, never an error.
func (g *Generator) GenerateArticle(ctx context.Context, text string, format core.Format, analysis *core.TopicAnalysis, onProgress core.ProgressFunc) core.Article {
	onProgress.Report(0, fmt.Sprintf("Generating %s article...", format))

	if analysis == nil {
		analysis = g.extractor.Extract(ctx, text, onProgress)
	}

	prompt := templates.Build(text, format, analysis)

	onProgress.Report(40, fmt.Sprintf("Writing %s content...", format))

	response, err := g.client.Complete(ctx, prompt, llm.Options{
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
	if err != nil {
		logger.Warnf("%s generation failed: %v", format, err)
		return core.NewArticle(FailedTitle, format, failedContent, analysis.Topics)
	}

	title := ResolveTitle(response, analysis)

	onProgress.Report(90, "Finalizing article...")

	article := core.NewArticle(title, format, response, analysis.Topics)

	onProgress.Report(100, "Article complete")

	return article
}

// GenerateAllFormats produces one article per requested format, in request
// order, sharing a single topic extraction across the run. A nil or empty
// formats slice means all five formats.
func (g *Generator) GenerateAllFormats(ctx context.Context, text string, formats []core.Format, onProgress core.ProgressFunc) core.GenerationResult {
	start := time.Now()

	if len(formats) == 0 {
		formats = core.AllFormats()
	}

	onProgress.Report(0, "Starting article generation...")

	// Extraction is the expensive shared prerequisite; it runs exactly once.
	analysis := g.extractor.Extract(ctx, text, onProgress)

	articles := make([]core.Article, 0, len(formats))
	total := len(formats)

	for i, format := range formats {
		formatProgress := func(pct int, msg string) {
			onProgress.Report(ScaleProgress(i, total, pct), msg)
		}
		articles = append(articles, g.GenerateArticle(ctx, text, format, analysis, formatProgress))
	}

	duration := time.Since(start)

	onProgress.Report(100, fmt.Sprintf("Generated %d articles in %.1fs", len(articles), duration.Seconds()))

	return core.GenerationResult{
		ID:         uuid.NewString(),
		SourceText: text,
		Topics:     analysis,
		Articles:   articles,
		Duration:   duration,
		CreatedAt:  start.UTC(),
	}
}

// ScaleProgress maps a format's internal 0-100 progress into its slice of
// the run-level 30-90 range: slice i of n starts at 30 + 60*i/n and spans
// 60/n points. The mapping is monotonically non-decreasing in (i, pct).
func ScaleProgress(i, n, pct int) int {
	base := 30 + int(60*float64(i)/float64(n))
	return base + int(float64(pct)*0.6/float64(n))
}
