package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

func TestHTTPFetcher_DownloadsToCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path != "/card-42" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("not really a png"))
	}))
	defer server.Close()

	cacheDir := t.TempDir()
	fetcher, err := NewHTTPFetcher(server.URL, cacheDir)
	if err != nil {
		t.Fatalf("NewHTTPFetcher failed: %v", err)
	}

	path, err := fetcher.Fetch(context.Background(), "card-42")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if filepath.Dir(path) != cacheDir {
		t.Errorf("artifact should live in cache dir, got %s", path)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("expected .png extension from content type, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read artifact: %v", err)
	}
	if string(data) != "not really a png" {
		t.Error("artifact content mismatch")
	}

	// A second fetch reuses the cached artifact without another request.
	again, err := fetcher.Fetch(context.Background(), "card-42")
	if err != nil {
		t.Fatalf("second Fetch failed: %v", err)
	}
	if again != path {
		t.Errorf("expected cached path %s, got %s", path, again)
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 server hit, got %d", hits.Load())
	}
}

func TestHTTPFetcher_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher, err := NewHTTPFetcher(server.URL, t.TempDir())
	if err != nil {
		t.Fatalf("NewHTTPFetcher failed: %v", err)
	}

	if _, err := fetcher.Fetch(context.Background(), "missing"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		expected    string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/gif", ".gif"},
		{"image/bmp", ".bmp"},
		{"image/png; charset=binary", ".png"},
		{"", ".jpg"},
	}

	for _, tt := range tests {
		if got := extensionFor(tt.contentType); got != tt.expected {
			t.Errorf("extensionFor(%q): expected %s, got %s", tt.contentType, tt.expected, got)
		}
	}
}
