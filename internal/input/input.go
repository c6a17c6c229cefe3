// Package input loads source text for article generation. Transcripts and
// plain notes are the normal case; saved HTML pages are reduced to text.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankLineRegex = regexp.MustCompile(`(\n\s*){2,}`)

// Load reads source text from path. "-" reads stdin; .html/.htm files are
// stripped down to their visible text; anything else is returned verbatim.
func Load(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractText(string(data))
	default:
		return string(data), nil
	}
}

// ExtractText pulls readable text out of an HTML document, dropping
// scripts, styles and other non-content elements and collapsing blank runs.
func ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, header, aside, form, iframe, noscript").Remove()

	var textBuilder strings.Builder
	doc.Find("body").Find("p, h1, h2, h3, h4, h5, h6, li, blockquote, pre").Each(func(_ int, item *goquery.Selection) {
		text := strings.TrimSpace(item.Text())
		if text != "" {
			textBuilder.WriteString(text)
			textBuilder.WriteString("\n\n")
		}
	})

	text := textBuilder.String()
	if text == "" {
		// No block elements, fall back to whatever text the body holds.
		text = doc.Find("body").Text()
	}

	text = blankLineRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text), nil
}
