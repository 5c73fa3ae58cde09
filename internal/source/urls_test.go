package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadURLList(t *testing.T) {
	tmpDir := t.TempDir()
	listPath := filepath.Join(tmpDir, "recipe_urls.txt")

	content := `https://example.org/api/recipes/1

  https://example.org/api/recipes/2
# commented out
https://example.org/api/recipes/3
`
	if err := os.WriteFile(listPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	urls, err := ReadURLList(listPath)
	if err != nil {
		t.Fatalf("ReadURLList failed: %v", err)
	}

	expected := []string{
		"https://example.org/api/recipes/1",
		"https://example.org/api/recipes/2",
		"https://example.org/api/recipes/3",
	}

	if len(urls) != len(expected) {
		t.Fatalf("expected %d URLs, got %d", len(expected), len(urls))
	}
	for i, want := range expected {
		if urls[i] != want {
			t.Errorf("url %d: expected %q, got %q", i, want, urls[i])
		}
	}
}

func TestReadURLListEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	listPath := filepath.Join(tmpDir, "empty.txt")

	if err := os.WriteFile(listPath, []byte("\n\n  \n"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	urls, err := ReadURLList(listPath)
	if err != nil {
		t.Fatalf("ReadURLList failed: %v", err)
	}
	if len(urls) != 0 {
		t.Errorf("expected no URLs, got %d", len(urls))
	}
}

func TestReadURLListMissingFile(t *testing.T) {
	if _, err := ReadURLList("/nonexistent/recipe_urls.txt"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
