// Package quality rates generated articles, both through the
// text-generation service (rubric scoring) and with local structural checks.
package quality

import (
	"context"
	"fmt"

	"draftsmith/internal/core"
	"draftsmith/internal/llm"
	"draftsmith/internal/logger"
	"draftsmith/internal/parse"
	"draftsmith/internal/templates"
)

// DefaultScore is the numeric midpoint of the 1-10 rubric, used whenever
// the service cannot produce a usable rating.
const DefaultScore = 5.0

// MaxScoringText caps how much article content is sent for rating; the
// rubric does not require the full body.
const MaxScoringText = 3000

const scoringPrompt = `Rate this article on a scale of 1-10 for each criterion:

Article:
---
%s
---

Rate (respond with JSON only):
{
  "clarity": [1-10 score],
  "structure": [1-10 score],
  "engagement": [1-10 score],
  "accuracy": [1-10 score],
  "overall": [1-10 average score]
}`

// Rating is a low-randomness, small-budget exchange.
const (
	scoringTemperature = 0.3
	scoringMaxTokens   = 256
)

// rubric mirrors the JSON shape the scoring prompt requests.
type rubric struct {
	Clarity    float64  `json:"clarity"`
	Structure  float64  `json:"structure"`
	Engagement float64  `json:"engagement"`
	Accuracy   float64  `json:"accuracy"`
	Overall    *float64 `json:"overall"`
}

// Scorer rates article quality through the text-generation service.
type Scorer struct {
	client llm.Client
}

// NewScorer creates a Scorer on top of the given service client.
func NewScorer(client llm.Client) *Scorer {
	return &Scorer{client: client}
}

// Score rates an article and returns the overall rubric value. It is pure:
// the caller assigns the result to Article.QualityScore, which is the one
// sanctioned write to that field after construction. Any failure (absent
// response, unparseable reply, missing overall field) yields DefaultScore.
func (s *Scorer) Score(ctx context.Context, article core.Article) float64 {
	prompt := fmt.Sprintf(scoringPrompt, templates.Truncate(article.Content, MaxScoringText))

	response, err := s.client.Complete(ctx, prompt, llm.Options{
		Temperature: scoringTemperature,
		MaxTokens:   scoringMaxTokens,
	})
	if err != nil {
		logger.Warnf("quality scoring unavailable for %q: %v", article.Title, err)
		return DefaultScore
	}

	var r rubric
	if err := parse.JSON(response, &r); err != nil {
		logger.Warnf("quality rating unparseable for %q: %v", article.Title, err)
		return DefaultScore
	}
	if r.Overall == nil {
		return DefaultScore
	}
	return *r.Overall
}
