package images

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestPreviewURL(t *testing.T) {
	tests := []struct {
		name     string
		template string
		format   string
		expected string
	}{
		{
			name:     "substitutes placeholder",
			template: "https://img.example.org/recipe/123/<format>/preview.jpg",
			format:   "crop-642x428",
			expected: "https://img.example.org/recipe/123/crop-642x428/preview.jpg",
		},
		{
			name:     "no placeholder leaves URL unchanged",
			template: "https://img.example.org/recipe/123/preview.jpg",
			format:   "crop-642x428",
			expected: "https://img.example.org/recipe/123/preview.jpg",
		},
		{
			name:     "multiple placeholders all substituted",
			template: "https://img.example.org/<format>/x/<format>.jpg",
			format:   "crop-100x100",
			expected: "https://img.example.org/crop-100x100/x/crop-100x100.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PreviewURL(tt.template, tt.format)
			if result != tt.expected {
				t.Errorf("PreviewURL(%q, %q) = %q, expected %q", tt.template, tt.format, result, tt.expected)
			}
		})
	}
}

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	data, err := fetcher.Download(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Errorf("expected image bytes, got %q", string(data))
	}
}

func TestDownloadNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5 * time.Second)
	if _, err := fetcher.Download(context.Background(), server.URL); err == nil {
		t.Error("expected error for 404 response, got nil")
	}
}
