package handlers

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"draftsmith/internal/config"
	"draftsmith/internal/store"
)

// NewSessionsCmd creates the sessions command with list/show subcommands
func NewSessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Inspect saved generation sessions",
	}

	cmd.AddCommand(newSessionsListCmd())
	cmd.AddCommand(newSessionsShowCmd())

	return cmd
}

func newSessionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.NewStore(config.GetDataDir())
			if err != nil {
				return err
			}
			defer db.Close()

			sessions, err := db.ListSessions()
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No saved sessions. Run generate --save to keep one.")
				return nil
			}

			fmt.Printf("%-36s  %-19s  %8s  %8s  %s\n", "ID", "CREATED", "ARTICLES", "SOURCE", "DURATION")
			for _, sess := range sessions {
				fmt.Printf("%-36s  %-19s  %8d  %7dc  %.1fs\n",
					sess.ID,
					sess.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					sess.Articles,
					sess.SourceChars,
					sess.Duration.Seconds(),
				)
			}
			return nil
		},
	}
}

func newSessionsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved session and its articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := store.NewStore(config.GetDataDir())
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := db.GetResult(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Session %s\n", result.ID)
			fmt.Printf("Created: %s, duration %.1fs\n", result.CreatedAt.Local().Format("2006-01-02 15:04:05"), result.Duration.Seconds())
			if result.Topics != nil && len(result.Topics.Topics) > 0 {
				fmt.Printf("Topics:  %s\n", strings.Join(result.Topics.Topics, ", "))
			}
			fmt.Println()

			for _, article := range result.Articles {
				fmt.Printf("--- %s: %s (%d words, score %.1f)\n\n", article.Format, article.Title, article.WordCount, article.QualityScore)
				fmt.Println(article.Content)
				fmt.Println()
			}
			return nil
		},
	}
}
