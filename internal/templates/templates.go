// Package templates renders format-specific generation prompts.
//
// Each supported format carries a fixed template with explicit structural
// requirements. Build is a pure function: source text in, prompt string out.
package templates

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"draftsmith/internal/core"
)

const (
	// MaxPromptText caps the source text interpolated into a prompt.
	MaxPromptText = 12000
	// MaxSocialText is the tighter cap for the social format.
	MaxSocialText = 5000
)

const blogPostPrompt = `Write a blog post based on this content and topics.

Topics: %s
Key Insights: %s

Source Content:
---
%s
---

Create a well-structured blog post with:
1. An engaging title (format: # Title)
2. Introduction paragraph that hooks the reader
3. 2-4 main sections with ## headers based on the topics
4. Key takeaways section (## Key Takeaways with bullet points)
5. Brief conclusion

Write in a conversational but professional style. Use markdown formatting.
Output ONLY the blog post, no meta-commentary.`

const faqPrompt = `Create an FAQ article from this content.

Source Content:
---
%s
---

Generate 5-8 frequently asked questions with detailed answers based on the content.
Use this format:

# Frequently Asked Questions

## Q: [Question 1]?
[Detailed answer paragraph]

## Q: [Question 2]?
[Detailed answer paragraph]

...continue for all questions

Extract real questions and answers from the content. Do NOT invent information.`

const listiclePrompt = `Create a listicle article from this content.

Topics: %s

Source Content:
---
%s
---

Create a numbered list article with 5-10 key points.
Format:

# [Number] [Topic] Tips/Insights/Lessons

1. **[Point Title]**
   [2-3 sentence explanation]

2. **[Point Title]**
   [2-3 sentence explanation]

...continue for all points

Each point should be actionable and insightful. Use markdown formatting.`

const summaryPrompt = `Write an executive summary of this content.

Source Content:
---
%s
---

Create a brief summary with:
- 1 paragraph overview (what this is about)
- 2-3 bullet points of main takeaways
- 1 paragraph conclusion/recommendation

Keep it under 300 words. Be concise but comprehensive.
Format with markdown (use **bold** for emphasis).`

const socialPrompt = `Create social media snippets from this content.

Key Insights: %s
Notable Quotes: %s

Source Content:
---
%s
---

Generate 5 short social media posts:
- Each must be under 280 characters
- Make them engaging and shareable
- Include relevant emoji
- Vary the style (quote, insight, question, tip)

Format as a numbered list:
1. [first post]
2. [second post]
...etc`

// Build renders the generation prompt for the given format. Source text is
// truncated to the format's cap before interpolation. A Format value outside
// the known set falls back to a generic summarization prompt; validation of
// user input happens earlier, at the CLI boundary.
func Build(text string, format core.Format, topics *core.TopicAnalysis) string {
	body := Truncate(text, MaxPromptText)

	switch format {
	case core.FormatBlogPost:
		return fmt.Sprintf(blogPostPrompt,
			strings.Join(topics.Topics, ", "),
			bulleted(topics.Insights),
			body)

	case core.FormatFAQ:
		return fmt.Sprintf(faqPrompt, body)

	case core.FormatListicle:
		return fmt.Sprintf(listiclePrompt,
			strings.Join(topics.Topics, ", "),
			body)

	case core.FormatSummary:
		return fmt.Sprintf(summaryPrompt, body)

	case core.FormatSocial:
		return fmt.Sprintf(socialPrompt,
			bulleted(topics.Insights),
			quoted(topics.Quotes),
			Truncate(text, MaxSocialText))
	}

	return fmt.Sprintf("Summarize this text:\n%s", body)
}

// Truncate bounds text to max bytes without splitting a rune. Applying it to
// already-truncated text is a no-op, so prompts are identical on either side
// of the cap.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	for max > 0 && !utf8.RuneStart(text[max]) {
		max--
	}
	return text[:max]
}

func bulleted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s", item))
	}
	return strings.Join(lines, "\n")
}

func quoted(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%q", item))
	}
	return strings.Join(lines, "\n")
}
