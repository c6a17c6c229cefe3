package render

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"draftsmith/internal/core"
)

// maxSlugLen caps the title-derived portion of exported filenames.
const maxSlugLen = 50

// Slug converts an article title into a filesystem-safe filename stem.
// Letters, digits, spaces, hyphens and underscores pass through; everything
// else becomes an underscore. The result is capped at 50 characters and an
// empty title falls back to "article".
func Slug(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	s := b.String()
	if runes := []rune(s); len(runes) > maxSlugLen {
		s = string(runes[:maxSlugLen])
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "article"
	}
	return s
}

// ExportArticle writes the article's markdown content to
// <dir>/<slug>_<format>.md and returns the created path. The file contains
// exactly Article.Content so a round-trip through export is lossless.
func ExportArticle(article core.Article, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.md", Slug(article.Title), article.Format)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(article.Content), 0644); err != nil {
		return "", fmt.Errorf("failed to write article %s: %w", path, err)
	}
	return path, nil
}

// ExportAll writes every article into dir and returns the created paths in
// input order. The first write failure aborts the export.
func ExportAll(articles []core.Article, dir string) ([]string, error) {
	paths := make([]string, 0, len(articles))
	for _, article := range articles {
		path, err := ExportArticle(article, dir)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: system-ui, -apple-system, sans-serif; max-width: 800px; margin: 0 auto; padding: 2rem; line-height: 1.6; }
        h1, h2, h3 { color: #1a1a1a; }
        h1 { border-bottom: 2px solid #6366f1; padding-bottom: 0.5rem; }
        blockquote { border-left: 4px solid #6366f1; padding-left: 1rem; color: #666; }
        ul, ol { padding-left: 2rem; }
        li { margin-bottom: 0.5rem; }
    </style>
</head>
<body>
%s
</body>
</html>`

// ExportHTML renders the article's markdown through goldmark and writes a
// standalone styled HTML page to <dir>/<slug>_<format>.html.
func ExportHTML(article core.Article, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	var body bytes.Buffer
	if err := markdown.Convert([]byte(article.Content), &body); err != nil {
		return "", fmt.Errorf("failed to render markdown for %s: %w", article.Title, err)
	}

	page := fmt.Sprintf(htmlPage, html.EscapeString(article.Title), body.String())
	filename := fmt.Sprintf("%s_%s.html", Slug(article.Title), article.Format)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(page), 0644); err != nil {
		return "", fmt.Errorf("failed to write article %s: %w", path, err)
	}
	return path, nil
}

// SessionDir creates <base>/<stem>_<YYYY-MM-DD_HH-MM> and returns its path.
// The stem is typically the source filename without extension.
func SessionDir(base, stem string) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15-04")
	dir := filepath.Join(base, fmt.Sprintf("%s_%s", stem, timestamp))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create session directory %s: %w", dir, err)
	}
	return dir, nil
}
