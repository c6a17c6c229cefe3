package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"draftsmith/internal/config"
	"draftsmith/internal/core"
	"draftsmith/internal/generate"
	"draftsmith/internal/input"
	"draftsmith/internal/llm"
	"draftsmith/internal/logger"
	"draftsmith/internal/quality"
	"draftsmith/internal/render"
	"draftsmith/internal/store"
	"draftsmith/internal/tui"
)

var (
	summaryHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	summaryRowStyle    = lipgloss.NewStyle().PaddingRight(2)
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		formatNames []string
		outputDir   string
		htmlOut     bool
		score       bool
		save        bool
		plain       bool
	)

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Generate articles from a text file, an HTML page, or stdin",
		Long: `Generate articles from the given source. The source may be a plain text
file (a transcript, notes), an .html page (visible text is extracted),
or "-" to read from stdin.

Each run writes its articles into a timestamped session directory under
the output directory.

Examples:
  # All five formats from a transcript
  draftsmith generate meeting.txt

  # Just a blog post and a summary, with quality scoring
  draftsmith generate notes.txt --formats blog,summary --score

  # From a saved web page, HTML output alongside markdown
  draftsmith generate article.html --html

  # Pipe text in and persist the session
  pbpaste | draftsmith generate - --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOptions{
				source:  args[0],
				formats: formatNames,
				out:     outputDir,
				html:    htmlOut,
				score:   score,
				save:    save,
				plain:   plain,
			}
			return runGenerate(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringSliceVar(&formatNames, "formats", nil, "Comma-separated formats to generate (default: all of blog,faq,listicle,summary,social)")
	cmd.Flags().StringVar(&outputDir, "out", "", "Output directory (default from config, ./output)")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "Also export each article as a standalone HTML page")
	cmd.Flags().BoolVar(&score, "score", false, "Score each article with the LLM after generation")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the session to the local database")
	cmd.Flags().BoolVar(&plain, "plain", false, "Print progress as log lines instead of the interactive display")

	return cmd
}

type generateOptions struct {
	source  string
	formats []string
	out     string
	html    bool
	score   bool
	save    bool
	plain   bool
}

func runGenerate(ctx context.Context, opts generateOptions) error {
	text, err := input.Load(opts.source)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("source %s is empty", opts.source)
	}

	formats := make([]core.Format, 0, len(opts.formats))
	for _, name := range opts.formats {
		format, err := core.ParseFormat(name)
		if err != nil {
			return err
		}
		formats = append(formats, format)
	}

	client, err := llm.New(config.GetService())
	if err != nil {
		return err
	}

	status := client.Probe(ctx)
	if status.Available {
		logger.Infof("Service available: %s", status.Backend)
	} else {
		logger.Warn("Text-generation service is unreachable; articles will be generated as failure placeholders")
	}

	outputDir := opts.out
	if outputDir == "" {
		outputDir = config.GetOutputDirectory()
	}
	sessionDir, err := render.SessionDir(outputDir, sourceStem(opts.source))
	if err != nil {
		return err
	}

	gen := generate.New(client)
	result := runWithProgress(ctx, gen, text, formats, opts.plain || !stdoutIsTerminal())

	if opts.score {
		scorer := quality.NewScorer(client)
		for i := range result.Articles {
			result.Articles[i].QualityScore = scorer.Score(ctx, result.Articles[i])
		}
	}

	paths, err := render.ExportAll(result.Articles, sessionDir)
	if err != nil {
		return err
	}
	if opts.html || config.GetOutput().HTML {
		for _, article := range result.Articles {
			if _, err := render.ExportHTML(article, sessionDir); err != nil {
				return err
			}
		}
	}

	if opts.save {
		db, err := store.NewStore(config.GetDataDir())
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveResult(result); err != nil {
			return err
		}
		logger.Infof("Session saved: %s", result.ID)
	}

	printSummary(result, paths, opts.score)
	return nil
}

// runWithProgress runs the pipeline behind either the interactive progress
// display or plain log-line checkpoints.
func runWithProgress(ctx context.Context, gen *generate.Generator, text string, formats []core.Format, plain bool) core.GenerationResult {
	if plain {
		return gen.GenerateAllFormats(ctx, text, formats, func(pct int, status string) {
			logger.Infof("[%3d%%] %s", pct, status)
		})
	}

	var result core.GenerationResult
	err := tui.Run(ctx, func(ctx context.Context, send func(tui.ProgressMsg)) {
		result = gen.GenerateAllFormats(ctx, text, formats, func(pct int, status string) {
			send(tui.ProgressMsg{Pct: pct, Status: status})
		})
	})
	if err != nil {
		// Display failure is not a pipeline failure; the result is still good.
		logger.Error("Progress display failed", err)
	}
	return result
}

func sourceStem(source string) string {
	if source == "-" {
		return "stdin"
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func printSummary(result core.GenerationResult, paths []string, scored bool) {
	fmt.Println()
	fmt.Println(summaryHeaderStyle.Render(fmt.Sprintf("Generated %d articles in %.1fs", len(result.Articles), result.Duration.Seconds())))
	if result.Topics != nil && len(result.Topics.Topics) > 0 {
		fmt.Printf("Topics: %s\n", strings.Join(result.Topics.Topics, ", "))
	}
	fmt.Println()

	header := fmt.Sprintf("%-10s %-40s %6s", "FORMAT", "TITLE", "WORDS")
	if scored {
		header += fmt.Sprintf(" %6s", "SCORE")
	}
	fmt.Println(summaryHeaderStyle.Render(header))

	for i, article := range result.Articles {
		title := article.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		row := fmt.Sprintf("%-10s %-40s %6d", article.Format, title, article.WordCount)
		if scored {
			row += fmt.Sprintf(" %6.1f", article.QualityScore)
		}
		fmt.Println(summaryRowStyle.Render(row))
		if i < len(paths) {
			fmt.Printf("           %s\n", paths[i])
		}
	}
}
