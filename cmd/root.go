package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tandoor-import",
		Short: "Migrate recipe documents into a Tandoor instance",
		Long: `tandoor-import migrates recipe JSON documents into a Tandoor recipe manager
through its REST API.

It reads a newline-delimited list of source document URLs, fetches each
document, maps it into Tandoor's recipe schema, and creates the recipe along
with its preview image. Credentials are read from TANDOOR_URL,
TANDOOR_USERNAME and TANDOOR_PASSWORD (a .env file is honored).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}
