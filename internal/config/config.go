package config

import (
	"os"
	"strconv"

	"github.com/kozaktomas/card-press/internal/constants"
)

type Config struct {
	Source SourceConfig
	Export ExportConfig
}

type SourceConfig struct {
	URL      string // base URL of the image resource server
	CacheDir string // directory for downloaded artifacts (default "images")
}

type ExportConfig struct {
	Root    string // directory for export runs (default "export")
	Workers int    // parallel download/conditioning workers (default 5)
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a fallback default.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	return &Config{
		Source: SourceConfig{
			URL:      os.Getenv("CARDPRESS_SOURCE_URL"),
			CacheDir: envString("CARDPRESS_CACHE_DIR", "images"),
		},
		Export: ExportConfig{
			Root:    envString("CARDPRESS_EXPORT_DIR", constants.DefaultExportRoot),
			Workers: envInt("CARDPRESS_WORKERS", constants.DefaultWorkers),
		},
	}
}
