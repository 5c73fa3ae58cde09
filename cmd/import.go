package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/recipe-tools/tandoor-import/internal/config"
	"github.com/recipe-tools/tandoor-import/internal/images"
	"github.com/recipe-tools/tandoor-import/internal/importer"
	"github.com/recipe-tools/tandoor-import/internal/report"
	"github.com/recipe-tools/tandoor-import/internal/source"
	"github.com/recipe-tools/tandoor-import/internal/tandoor"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var urlFile string
	var baseURL string
	var imageFormat string
	var delay time.Duration
	var reportPath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import recipes from a URL list into Tandoor",
		Long: `Import reads a newline-delimited list of recipe document URLs, fetches each
document, and creates the recipe in Tandoor. Preview images are attached
best-effort; a failed image never fails the recipe.

A single failing document is logged and skipped, it never aborts the batch.
Only a failed authentication stops the run.`,
		Example: `  # Import everything listed in recipe_urls.txt
  tandoor-import import

  # Import a different list against a different instance
  tandoor-import import --urls batch2.txt --base-url https://tandoor.example.org

  # See the transformed payloads without creating anything
  tandoor-import import --dry-run

  # Keep a YAML record of the run
  tandoor-import import --report run.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("urls") {
				cfg.URLFile = urlFile
			}
			if cmd.Flags().Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if cmd.Flags().Changed("image-format") {
				cfg.ImageFormat = imageFormat
			}
			if cmd.Flags().Changed("delay") {
				cfg.Delay = delay
			}

			urls, err := source.ReadURLList(cfg.URLFile)
			if err != nil {
				return err
			}
			if len(urls) == 0 {
				slog.Warn("URL list is empty, nothing to import", "file", cfg.URLFile)
				return nil
			}

			if dryRun {
				return executeDryRun(cmd, cfg, urls)
			}
			return executeImport(cmd, cfg, urls, reportPath)
		},
	}

	cmd.Flags().StringVar(&urlFile, "urls", config.DefaultURLFile, "Path to the newline-delimited URL list")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Tandoor base URL (overrides TANDOOR_URL)")
	cmd.Flags().StringVar(&imageFormat, "image-format", config.DefaultImageFormat, "Preview image format substituted into the source URL template")
	cmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "Pause after each successful import")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write a YAML run report to this path")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Fetch and transform only, create nothing")

	return cmd
}

func executeImport(cmd *cobra.Command, cfg *config.Config, urls []string, reportPath string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()

	slog.Info("Authenticating", "base_url", cfg.BaseURL, "username", cfg.Username)
	client, err := tandoor.NewClient(ctx, cfg.BaseURL, cfg.Username, cfg.Password, cfg.Timeout)
	if err != nil {
		return err
	}

	runner := &importer.Runner{
		Source: source.NewClient(cfg.Timeout),
		Importer: importer.New(
			client,
			images.NewFetcher(cfg.Timeout),
			importer.NewIntervalLimiter(cfg.Delay),
			cfg.ImageFormat,
		),
	}

	slog.Info("Starting import", "urls", len(urls), "file", cfg.URLFile)
	summary, results := runner.Run(ctx, urls)

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("  Recipes created: %d\n", summary.Created)
	fmt.Printf("  Images attached: %d\n", summary.Images)
	fmt.Printf("  Failed:          %d\n", summary.Failed)
	fmt.Printf("  Total processed: %d\n", summary.Total)

	if reportPath != "" {
		rep := report.Build(cfg.BaseURL, cfg.URLFile, cfg.ImageFormat, summary, results)
		if err := report.Write(reportPath, rep); err != nil {
			return err
		}
		fmt.Printf("\nRun report written to: %s\n", reportPath)
	}

	return nil
}

// executeDryRun fetches and transforms every document and prints the
// payloads that would be sent, without touching Tandoor.
func executeDryRun(cmd *cobra.Command, cfg *config.Config, urls []string) error {
	ctx := cmd.Context()
	client := source.NewClient(cfg.Timeout)

	failed := 0
	for _, url := range urls {
		src, err := client.Fetch(ctx, url)
		if err != nil {
			slog.Error("Failed to fetch recipe document", "url", url, "error", err)
			failed++
			continue
		}

		recipe, err := importer.Transform(src)
		if err != nil {
			slog.Error("Failed to transform recipe", "url", url, "error", err)
			failed++
			continue
		}

		payload, err := json.MarshalIndent(recipe, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render payload: %w", err)
		}
		fmt.Printf("# %s\n%s\n", url, payload)

		if n := len(importer.FlattenIngredients(src)); n > 0 {
			slog.Debug("Document carries ingredient data not part of the payload", "url", url, "ingredients", n)
		}
	}

	fmt.Printf("\nDry run complete: %d document(s), %d failed\n", len(urls), failed)
	return nil
}
