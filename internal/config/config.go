package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the process-level configuration read at startup.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string
	// SessionPath is the signed-in identity file location.
	SessionPath string
	// SyncURL is the base URL of the sync service. Empty disables syncing.
	SyncURL string
	// Debug enables verbose logging to stderr.
	Debug bool
}

// Load reads configuration from environment variables, falling back to
// defaults under ~/.buddyai for any unset values.
func Load() (Config, error) {
	cfg := Config{
		SyncURL: os.Getenv("BUDDYAI_SYNC_URL"),
		Debug:   os.Getenv("BUDDYAI_DEBUG") != "",
	}

	dataDir := os.Getenv("BUDDYAI_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".buddyai")
	}

	cfg.DBPath = os.Getenv("BUDDYAI_DB")
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, "buddyai.db")
	}
	cfg.SessionPath = filepath.Join(dataDir, "session.json")

	return cfg, nil
}
