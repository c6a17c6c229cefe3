// Package topics derives structured topic metadata from source text.
package topics

import (
	"context"
	"fmt"

	"draftsmith/internal/core"
	"draftsmith/internal/llm"
	"draftsmith/internal/logger"
	"draftsmith/internal/parse"
	"draftsmith/internal/templates"
)

// MaxAnalysisText caps how much source text is sent for extraction. Later
// characters are sacrificed rather than failing the request.
const MaxAnalysisText = 15000

const extractionPrompt = `Analyze this transcription and extract key information.

Transcription:
---
%s
---

Respond ONLY with valid JSON in this exact format:
{
  "topics": ["topic1", "topic2", "topic3"],
  "insights": ["key insight 1", "key insight 2"],
  "quotes": ["notable quote 1", "notable quote 2"],
  "titles": ["suggested title 1", "suggested title 2"]
}

Extract 3-7 main topics, 2-5 key insights, 2-4 notable quotes, and 2-3 suggested article titles.`

// Extraction is a constrained, near-deterministic task, so it runs with low
// randomness and a small output budget.
const (
	extractionTemperature = 0.5
	extractionMaxTokens   = 1024
)

// Extractor builds the extraction prompt, invokes the service, and parses
// the reply into a TopicAnalysis.
type Extractor struct {
	client llm.Client
}

// NewExtractor creates an Extractor on top of the given service client.
func NewExtractor(client llm.Client) *Extractor {
	return &Extractor{client: client}
}

// Fallback is the TopicAnalysis used when the service is unreachable or its
// reply cannot be parsed. The pipeline always has some topic context.
func Fallback() *core.TopicAnalysis {
	return &core.TopicAnalysis{
		Topics:   []string{"General Discussion"},
		Insights: []string{"Content analysis unavailable"},
		Quotes:   []string{},
		Titles:   []string{"Untitled Article"},
	}
}

// Extract analyzes the source text. It never fails: service absence and
// malformed replies both degrade to the fixed fallback analysis.
func (e *Extractor) Extract(ctx context.Context, text string, onProgress core.ProgressFunc) *core.TopicAnalysis {
	onProgress.Report(10, "Extracting topics...")

	prompt := buildPrompt(text)
	response, err := e.client.Complete(ctx, prompt, llm.Options{
		Temperature: extractionTemperature,
		MaxTokens:   extractionMaxTokens,
	})

	onProgress.Report(30, "Parsing topic analysis...")

	if err != nil {
		logger.Warnf("topic extraction unavailable, using fallback: %v", err)
		return Fallback()
	}

	var analysis core.TopicAnalysis
	if err := parse.JSON(response, &analysis); err != nil {
		logger.Warnf("topic analysis unparseable, using fallback: %v", err)
		return Fallback()
	}

	// Partial replies keep their fields; missing keys become empty lists.
	if analysis.Topics == nil {
		analysis.Topics = []string{}
	}
	if analysis.Insights == nil {
		analysis.Insights = []string{}
	}
	if analysis.Quotes == nil {
		analysis.Quotes = []string{}
	}
	if analysis.Titles == nil {
		analysis.Titles = []string{}
	}

	return &analysis
}

func buildPrompt(text string) string {
	return fmt.Sprintf(extractionPrompt, templates.Truncate(text, MaxAnalysisText))
}
