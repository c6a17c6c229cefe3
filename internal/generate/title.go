package generate

import (
	"strings"

	"draftsmith/internal/core"
)

const defaultTitle = "Untitled Article"

// titleScanLines bounds how far into generated content the heading scan looks.
const titleScanLines = 5

// ResolveTitle derives a human-readable title for generated content.
// Precedence is fixed: a top-level heading within the first few lines of the
// content, then the first suggested title, then the first topic, then a
// literal default.
func ResolveTitle(content string, analysis *core.TopicAnalysis) string {
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		// "# " only; "## " shares the prefix and is not a title.
		if strings.HasPrefix(line, "# ") && !strings.HasPrefix(line, "## ") {
			return strings.TrimSpace(line[2:])
		}
	}

	if analysis != nil {
		if len(analysis.Titles) > 0 {
			return analysis.Titles[0]
		}
		if len(analysis.Topics) > 0 {
			return analysis.Topics[0]
		}
	}

	return defaultTitle
}
