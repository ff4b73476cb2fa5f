package config

import (
	"testing"

	"github.com/kozaktomas/card-press/internal/constants"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CARDPRESS_CACHE_DIR", "")
	t.Setenv("CARDPRESS_EXPORT_DIR", "")
	t.Setenv("CARDPRESS_WORKERS", "")

	cfg := Load()

	if cfg.Source.CacheDir != "images" {
		t.Errorf("expected default cache dir 'images', got '%s'", cfg.Source.CacheDir)
	}
	if cfg.Export.Root != constants.DefaultExportRoot {
		t.Errorf("expected default export root '%s', got '%s'", constants.DefaultExportRoot, cfg.Export.Root)
	}
	if cfg.Export.Workers != constants.DefaultWorkers {
		t.Errorf("expected default workers %d, got %d", constants.DefaultWorkers, cfg.Export.Workers)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CARDPRESS_SOURCE_URL", "https://images.example.com/cards")
	t.Setenv("CARDPRESS_CACHE_DIR", "/tmp/card-cache")
	t.Setenv("CARDPRESS_EXPORT_DIR", "/tmp/card-export")
	t.Setenv("CARDPRESS_WORKERS", "12")

	cfg := Load()

	if cfg.Source.URL != "https://images.example.com/cards" {
		t.Errorf("unexpected source URL '%s'", cfg.Source.URL)
	}
	if cfg.Source.CacheDir != "/tmp/card-cache" {
		t.Errorf("unexpected cache dir '%s'", cfg.Source.CacheDir)
	}
	if cfg.Export.Root != "/tmp/card-export" {
		t.Errorf("unexpected export root '%s'", cfg.Export.Root)
	}
	if cfg.Export.Workers != 12 {
		t.Errorf("expected 12 workers, got %d", cfg.Export.Workers)
	}
}

func TestEnvInt_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "five"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CARDPRESS_WORKERS", tt.value)
			cfg := Load()
			if cfg.Export.Workers != constants.DefaultWorkers {
				t.Errorf("expected fallback to default workers, got %d", cfg.Export.Workers)
			}
		})
	}
}
