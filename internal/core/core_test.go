package core

import (
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{"blog", "blog", FormatBlogPost, false},
		{"blog hyphenated alias", "blog-post", FormatBlogPost, false},
		{"faq", "faq", FormatFAQ, false},
		{"listicle", "listicle", FormatListicle, false},
		{"summary", "summary", FormatSummary, false},
		{"social", "social", FormatSocial, false},
		{"case insensitive", "FAQ", FormatFAQ, false},
		{"surrounding whitespace", "  summary ", FormatSummary, false},
		{"unknown", "haiku", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAllFormatsOrder(t *testing.T) {
	formats := AllFormats()
	want := []Format{FormatBlogPost, FormatFAQ, FormatListicle, FormatSummary, FormatSocial}

	if len(formats) != len(want) {
		t.Fatalf("AllFormats() returned %d formats, want %d", len(formats), len(want))
	}
	for i, f := range formats {
		if f != want[i] {
			t.Errorf("AllFormats()[%d] = %q, want %q", i, f, want[i])
		}
	}
}

func TestNewArticleWordCount(t *testing.T) {
	article := NewArticle("Test", FormatSummary, "one two three", nil)

	if article.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", article.WordCount)
	}
	if article.ID == "" {
		t.Error("Article ID should not be empty")
	}
	if article.QualityScore != 0 {
		t.Errorf("QualityScore should default to 0, got %f", article.QualityScore)
	}
}

func TestNewArticleWordCountWhitespace(t *testing.T) {
	content := "  leading\tand\n\nmixed   whitespace "
	article := NewArticle("Test", FormatBlogPost, content, nil)

	want := len(strings.Fields(content))
	if article.WordCount != want {
		t.Errorf("WordCount = %d, want %d", article.WordCount, want)
	}
}

func TestNewArticleCopiesTopics(t *testing.T) {
	topics := []string{"productivity", "focus"}
	article := NewArticle("Test", FormatFAQ, "body", topics)

	topics[0] = "mutated"
	if article.Topics[0] != "productivity" {
		t.Error("Article should hold its own copy of the topic snapshot")
	}
}

func TestProgressFuncNilSafe(t *testing.T) {
	var f ProgressFunc
	f.Report(50, "should not panic") // nil callback is a no-op

	var got int
	f = func(pct int, status string) { got = pct }
	f.Report(100, "done")
	if got != 100 {
		t.Errorf("Report did not invoke callback, got %d", got)
	}
}
