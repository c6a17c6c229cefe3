package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"draftsmith/internal/config"
	"draftsmith/internal/logger"
)

var cfgFile string

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "draftsmith",
		Short: "Draftsmith turns raw text into publishable articles with a local or hosted LLM.",
		Long: `Draftsmith takes a transcript, meeting notes, or any other raw text and
generates publishable articles in several formats: a blog post, an FAQ,
a listicle, an executive summary, and a set of social media posts.

It talks to an OpenAI-compatible endpoint (LM Studio, Ollama) or to the
Gemini API, extracts the main topics first, then writes each format from
the same topic analysis.`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.draftsmith.yaml)")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewProbeCmd())
	rootCmd.AddCommand(NewSessionsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logger.SetLevel(config.GetLogLevel())
}
