package quality

import (
	"fmt"
	"regexp"
	"strings"

	"draftsmith/internal/core"
)

// Report contains the local structural checks for one article. These run
// without a service call and complement the rubric score.
type Report struct {
	Format    core.Format `json:"format"`
	WordCount int         `json:"word_count"`
	Warnings  []string    `json:"warnings"`
	Passed    bool        `json:"passed"`
}

var (
	topHeadingRe = regexp.MustCompile(`(?m)^# .+$`)
	questionRe   = regexp.MustCompile(`(?m)^## .+$`)
	numberedRe   = regexp.MustCompile(`(?m)^\s*\d+\.\s+\*\*.+\*\*`)
	postRe       = regexp.MustCompile(`(?m)^\s*(\d+)\.\s+(.+)$`)
)

// summaryWordCeiling is the soft length contract of the summary format.
const summaryWordCeiling = 300

// socialPostLimit is the per-post character contract of the social format.
const socialPostLimit = 280

// Check runs the structural contract of the article's format against its
// content and reports violations as warnings.
func Check(article core.Article) *Report {
	report := &Report{
		Format:    article.Format,
		WordCount: article.WordCount,
		Warnings:  []string{},
	}

	switch article.Format {
	case core.FormatBlogPost:
		checkBlogPost(article.Content, report)
	case core.FormatFAQ:
		checkFAQ(article.Content, report)
	case core.FormatListicle:
		checkListicle(article.Content, report)
	case core.FormatSummary:
		checkSummary(article, report)
	case core.FormatSocial:
		checkSocial(article.Content, report)
	}

	report.Passed = len(report.Warnings) == 0
	return report
}

func checkBlogPost(content string, report *Report) {
	if !topHeadingRe.MatchString(content) {
		report.Warnings = append(report.Warnings, "no top-level heading title")
	}
	sections := len(questionRe.FindAllString(content, -1))
	if sections < 2 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("only %d section headings (want 2-4 plus takeaways)", sections))
	}
	if !strings.Contains(strings.ToLower(content), "key takeaways") {
		report.Warnings = append(report.Warnings, "missing key takeaways section")
	}
}

func checkFAQ(content string, report *Report) {
	questions := 0
	for _, heading := range questionRe.FindAllString(content, -1) {
		if strings.Contains(heading, "?") || strings.HasPrefix(heading, "## Q:") {
			questions++
		}
	}
	if questions < 5 || questions > 8 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d question/answer pairs (want 5-8)", questions))
	}
}

func checkListicle(content string, report *Report) {
	points := len(numberedRe.FindAllString(content, -1))
	if points < 5 || points > 10 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d numbered bold-titled points (want 5-10)", points))
	}
}

func checkSummary(article core.Article, report *Report) {
	if article.WordCount > summaryWordCeiling {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d words exceeds the %d-word ceiling", article.WordCount, summaryWordCeiling))
	}
}

func checkSocial(content string, report *Report) {
	posts := postRe.FindAllStringSubmatch(content, -1)
	if len(posts) != 5 {
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("%d numbered posts (want exactly 5)", len(posts)))
	}
	for _, post := range posts {
		if n := len([]rune(post[2])); n > socialPostLimit {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("post %s is %d characters (limit %d)", post[1], n, socialPostLimit))
		}
	}
}
