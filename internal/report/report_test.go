package report

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/recipe-tools/tandoor-import/internal/importer"
	"gopkg.in/yaml.v3"
)

func TestBuild(t *testing.T) {
	summary := importer.Summary{Total: 2, Created: 1, Failed: 1, Images: 1}
	results := []importer.ItemResult{
		{
			URL: "https://example.org/1",
			Result: importer.Result{
				Title:         "Soup",
				Status:        importer.StatusCreated,
				RecipeID:      42,
				ImageAttached: true,
			},
		},
		{
			URL: "https://example.org/2",
			Result: importer.Result{
				Title:  "unknown",
				Status: importer.StatusFailed,
				Err:    errors.New("fetch failed"),
			},
		},
	}

	rep := Build("https://tandoor.example.org", "recipe_urls.txt", "crop-642x428", summary, results)

	if rep.Summary.Created != 1 || rep.Summary.Failed != 1 {
		t.Errorf("unexpected summary: %+v", rep.Summary)
	}
	if len(rep.Recipes) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(rep.Recipes))
	}
	if rep.Recipes[0].RecipeID != 42 || !rep.Recipes[0].Image {
		t.Errorf("unexpected first entry: %+v", rep.Recipes[0])
	}
	if rep.Recipes[1].Error != "fetch failed" {
		t.Errorf("expected error text on failed entry, got %q", rep.Recipes[1].Error)
	}
	if rep.Config.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
}

func TestWrite(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "report.yaml")

	rep := Build("https://tandoor.example.org", "recipe_urls.txt", "crop-642x428",
		importer.Summary{Total: 1, Created: 1},
		[]importer.ItemResult{
			{URL: "https://example.org/1", Result: importer.Result{Title: "Soup", Status: importer.StatusCreated, RecipeID: 7}},
		})

	if err := Write(path, rep); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "Soup") {
		t.Errorf("expected recipe title in report, got:\n%s", data)
	}

	var roundTrip Report
	if err := yaml.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("report is not valid YAML: %v", err)
	}
	if roundTrip.Recipes[0].RecipeID != 7 {
		t.Errorf("expected recipe id 7, got %d", roundTrip.Recipes[0].RecipeID)
	}
}
