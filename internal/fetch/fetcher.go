// Package fetch acquires image resources referenced by a card order. Each
// distinct resource id is fetched at most once across all slots that
// reference it; downloads run on a bounded worker pool.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher retrieves the bytes of a single resource and returns the local
// path of the downloaded artifact.
type Fetcher interface {
	Fetch(ctx context.Context, resourceID string) (string, error)
}

// FetchError records a failed download for one resource. It is non-fatal:
// the run continues and the failure is surfaced in the export report.
type FetchError struct {
	ResourceID string
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("could not fetch resource %s: %v", e.ResourceID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// knownExtensions are the artifact extensions a previous run may have left in
// the cache directory, checked before downloading again.
var knownExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}

// HTTPFetcher downloads resources from an HTTP image server into a local
// cache directory. Artifacts already present in the cache are reused.
type HTTPFetcher struct {
	baseURL  *url.URL
	cacheDir string
	client   *http.Client
}

// NewHTTPFetcher creates a fetcher for the given base URL and cache
// directory. The cache directory is created if it does not exist.
func NewHTTPFetcher(baseURL, cacheDir string) (*HTTPFetcher, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("could not parse source URL: %w", err)
	}
	if err := os.MkdirAll(cacheDir, 0o750); err != nil {
		return nil, fmt.Errorf("could not create cache directory: %w", err)
	}

	return &HTTPFetcher{
		baseURL:  parsed,
		cacheDir: cacheDir,
		client:   http.DefaultClient,
	}, nil
}

// Fetch downloads a resource to the cache directory and returns its path.
// A cached artifact from a prior run is returned without re-downloading.
func (f *HTTPFetcher) Fetch(ctx context.Context, resourceID string) (string, error) {
	for _, ext := range knownExtensions {
		cached := filepath.Join(f.cacheDir, resourceID+ext)
		if _, err := os.Stat(cached); err == nil {
			return cached, nil
		}
	}

	reqURL := f.baseURL.JoinPath(resourceID).String()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	dest := filepath.Join(f.cacheDir, resourceID+extensionFor(resp.Header.Get("Content-Type")))
	tmp, err := os.CreateTemp(f.cacheDir, resourceID+"-*")
	if err != nil {
		return "", fmt.Errorf("could not create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not write artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not close artifact: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("could not move artifact into cache: %w", err)
	}

	return dest, nil
}

// extensionFor maps a Content-Type header to an artifact file extension.
func extensionFor(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")
	switch strings.TrimSpace(mediaType) {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	default:
		return ".jpg"
	}
}
