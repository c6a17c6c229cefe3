package handlers

import (
	"fmt"

	"github.com/spf13/cobra"

	"draftsmith/internal/config"
	"draftsmith/internal/llm"
)

// NewProbeCmd creates the probe command
func NewProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Check whether the configured text-generation service is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetService()
			client, err := llm.New(cfg)
			if err != nil {
				return err
			}

			status := client.Probe(cmd.Context())
			if !status.Available {
				fmt.Printf("Service unavailable (%s, %s)\n", cfg.Provider, cfg.BaseURL)
				return nil
			}

			fmt.Printf("Service available (%s)\n", cfg.Provider)
			fmt.Printf("  Backend: %s\n", status.Backend)
			if status.Model != "" {
				fmt.Printf("  Model:   %s\n", status.Model)
			}
			return nil
		},
	}
}
