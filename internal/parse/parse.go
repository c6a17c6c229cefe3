// Package parse extracts structured JSON from free-form model output.
//
// Models frequently wrap JSON replies in a markdown code fence, with or
// without a language tag. Every structured exchange in the pipeline (topic
// extraction, quality scoring) goes through this one tolerant path; callers
// are responsible for supplying a default value when decoding fails.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Unfence strips a surrounding markdown code fence from raw model output.
// It trims whitespace, and when the text opens with a fence marker it drops
// the first fence line together with an optional "json" language tag and a
// trailing fence line. Text without a fence is returned trimmed.
func Unfence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")

	if idx := strings.LastIndex(s, "```"); idx >= 0 {
		s = s[:idx]
	}

	return strings.TrimSpace(s)
}

// JSON unfences raw model output and strictly decodes it into v.
func JSON(raw string, v any) error {
	cleaned := Unfence(raw)
	if cleaned == "" {
		return fmt.Errorf("empty response body")
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("decoding model response: %w", err)
	}
	return nil
}
