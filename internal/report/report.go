// Package report writes a machine-readable record of an import run so an
// operator can see later which source documents made it into Tandoor.
package report

import (
	"fmt"
	"os"
	"time"

	"github.com/recipe-tools/tandoor-import/internal/importer"
	"gopkg.in/yaml.v3"
)

// RunConfig echoes the non-secret configuration a run used.
type RunConfig struct {
	BaseURL     string `yaml:"base_url"`
	URLFile     string `yaml:"url_file"`
	ImageFormat string `yaml:"image_format"`
	Timestamp   string `yaml:"timestamp"`
}

// Entry is the outcome of one source URL.
type Entry struct {
	URL      string `yaml:"url"`
	Title    string `yaml:"title"`
	Status   string `yaml:"status"`
	RecipeID int    `yaml:"recipe_id,omitempty"`
	Image    bool   `yaml:"image"`
	Error    string `yaml:"error,omitempty"`
}

// Summary totals a run.
type Summary struct {
	Total   int `yaml:"total"`
	Created int `yaml:"created"`
	Failed  int `yaml:"failed"`
	Images  int `yaml:"images"`
}

// Report is the complete YAML document for one run.
type Report struct {
	Config  RunConfig `yaml:"config"`
	Summary Summary   `yaml:"summary"`
	Recipes []Entry   `yaml:"recipes"`
}

// Build assembles a Report from batch results.
func Build(baseURL, urlFile, imageFormat string, summary importer.Summary, results []importer.ItemResult) *Report {
	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		entry := Entry{
			URL:      r.URL,
			Title:    r.Title,
			Status:   string(r.Status),
			RecipeID: r.RecipeID,
			Image:    r.ImageAttached,
		}
		if r.Err != nil {
			entry.Error = r.Err.Error()
		}
		entries = append(entries, entry)
	}

	return &Report{
		Config: RunConfig{
			BaseURL:     baseURL,
			URLFile:     urlFile,
			ImageFormat: imageFormat,
			Timestamp:   time.Now().Format("2006-01-02_15-04-05"),
		},
		Summary: Summary{
			Total:   summary.Total,
			Created: summary.Created,
			Failed:  summary.Failed,
			Images:  summary.Images,
		},
		Recipes: entries,
	}
}

// Write saves the report as YAML at path.
func Write(path string, r *Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
