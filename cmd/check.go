package cmd

import (
	"fmt"

	"github.com/recipe-tools/tandoor-import/internal/config"
	"github.com/recipe-tools/tandoor-import/internal/tandoor"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify Tandoor credentials",
		Long: `Check exchanges the configured credentials for an API token and reports the
result. Useful before kicking off a long import run.`,
		Example: `  tandoor-import check
  tandoor-import check --base-url https://tandoor.example.org`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if _, err := tandoor.NewClient(cmd.Context(), cfg.BaseURL, cfg.Username, cfg.Password, cfg.Timeout); err != nil {
				return err
			}

			fmt.Printf("Authentication OK for %s as %s\n", cfg.BaseURL, cfg.Username)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Tandoor base URL (overrides TANDOOR_URL)")

	return cmd
}
