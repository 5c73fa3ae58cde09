package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// FormatPlaceholder is the literal token the source site embeds in its
// preview image URL templates.
const FormatPlaceholder = "<format>"

// Fetcher downloads recipe preview images from the source site.
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher creates a new image fetcher.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PreviewURL builds a concrete image URL from a source template by
// substituting the <format> placeholder, e.g. format "crop-642x428".
func PreviewURL(template, format string) string {
	return strings.ReplaceAll(template, FormatPlaceholder, format)
}

// Download fetches the image at url and returns its raw bytes.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create image request: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image URL returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}
