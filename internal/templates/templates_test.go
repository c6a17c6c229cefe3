package templates

import (
	"strings"
	"testing"
	"unicode/utf8"

	"draftsmith/internal/core"
)

var testTopics = &core.TopicAnalysis{
	Topics:   []string{"productivity", "time management"},
	Insights: []string{"prioritize high-impact tasks", "breaks restore focus"},
	Quotes:   []string{"your brain needs rest"},
	Titles:   []string{"Working Smarter"},
}

func TestBuildIncludesStructuralRequirements(t *testing.T) {
	tests := []struct {
		format   core.Format
		contains []string
	}{
		{core.FormatBlogPost, []string{"# Title", "## Key Takeaways", "productivity, time management", "- prioritize high-impact tasks"}},
		{core.FormatFAQ, []string{"5-8 frequently asked questions", "Do NOT invent information"}},
		{core.FormatListicle, []string{"5-10 key points", "productivity, time management"}},
		{core.FormatSummary, []string{"under 300 words", "2-3 bullet points"}},
		{core.FormatSocial, []string{"under 280 characters", `"your brain needs rest"`, "Vary the style"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			prompt := Build("source text", tt.format, testTopics)
			for _, want := range tt.contains {
				if !strings.Contains(prompt, want) {
					t.Errorf("%s prompt missing %q", tt.format, want)
				}
			}
			if !strings.Contains(prompt, "source text") {
				t.Errorf("%s prompt missing source text", tt.format)
			}
		})
	}
}

func TestBuildUnknownFormatFallsBack(t *testing.T) {
	prompt := Build("some text", core.Format("teleplay"), testTopics)
	if !strings.HasPrefix(prompt, "Summarize this text:") {
		t.Errorf("unknown format should produce generic prompt, got %q", prompt[:40])
	}
}

func TestTruncationIdempotent(t *testing.T) {
	long := strings.Repeat("a", MaxPromptText+5000)
	capped := Truncate(long, MaxPromptText)

	for _, format := range core.AllFormats() {
		if Build(long, format, testTopics) != Build(capped, format, testTopics) {
			t.Errorf("%s: prompt differs between raw and pre-truncated text", format)
		}
	}
}

func TestSocialCapAppliesEvenForLongSources(t *testing.T) {
	long := strings.Repeat("b", 50000)
	prompt := Build(long, core.FormatSocial, testTopics)

	if strings.Contains(prompt, strings.Repeat("b", MaxSocialText+1)) {
		t.Error("social prompt contains more than the 5000-char cap of source text")
	}
	if !strings.Contains(prompt, strings.Repeat("b", MaxSocialText)) {
		t.Error("social prompt should contain exactly the capped source prefix")
	}
}

func TestGeneralCapAppliesToBlogPost(t *testing.T) {
	long := strings.Repeat("c", 40000)
	prompt := Build(long, core.FormatBlogPost, testTopics)

	if strings.Contains(prompt, strings.Repeat("c", MaxPromptText+1)) {
		t.Error("blog prompt exceeds the 12000-char source cap")
	}
}

func TestBuildIsPure(t *testing.T) {
	a := Build("text", core.FormatSummary, testTopics)
	b := Build("text", core.FormatSummary, testTopics)
	if a != b {
		t.Error("Build should be deterministic for identical inputs")
	}
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	// A multibyte rune straddling the cap must be dropped whole, not split.
	text := strings.Repeat("a", 9) + "é" // 'é' occupies bytes 9-10
	got := Truncate(text, 10)
	if !utf8.ValidString(got) {
		t.Errorf("Truncate produced invalid UTF-8: %q", got)
	}
	if got != strings.Repeat("a", 9) {
		t.Errorf("Truncate(%q, 10) = %q, want the rune dropped whole", text, got)
	}

	// A cap on a rune boundary keeps everything up to it.
	if got := Truncate("aé", 3); got != "aé" {
		t.Errorf("Truncate(%q, 3) = %q", "aé", got)
	}
}
