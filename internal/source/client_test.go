package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"title": "Goulash",
			"instructions": "Brown the beef.\r\n\r\nSimmer for two hours.",
			"tags": ["stew", "beef"],
			"preparationTime": 30,
			"servings": 6,
			"ingredientGroups": [
				{"ingredients": [{"name": "Beef", "amount": 500, "unit": "g", "usageInfo": "cubed"}]}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	recipe, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if recipe.Title != "Goulash" {
		t.Errorf("expected title 'Goulash', got %q", recipe.Title)
	}
	if recipe.PreparationTime != 30 {
		t.Errorf("expected preparation time 30, got %d", recipe.PreparationTime)
	}
	if len(recipe.IngredientGroups) != 1 || len(recipe.IngredientGroups[0].Ingredients) != 1 {
		t.Fatalf("unexpected ingredient groups: %+v", recipe.IngredientGroups)
	}
	if recipe.IngredientGroups[0].Ingredients[0].Amount != 500 {
		t.Errorf("expected amount 500, got %v", recipe.IngredientGroups[0].Ingredients[0].Amount)
	}
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected error for 404 response, got nil")
	}
}

func TestFetchInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	if _, err := client.Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}
