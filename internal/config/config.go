// Package config loads application configuration from environment variables.
package config

import "os"

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr string
	DBPath     string
	WatchDir   string
}

// Load reads configuration from environment variables and returns a Config.
// Optional variables with defaults: LAYERAUDIT_LISTEN_ADDR (127.0.0.1:8080),
// LAYERAUDIT_DB_PATH (layeraudit.db). LAYERAUDIT_WATCH_DIR has no default;
// when empty, the extractor CSV drop-directory watcher stays disabled.
func Load() (*Config, error) {
	listenAddr := "127.0.0.1:8080"
	if v, ok := os.LookupEnv("LAYERAUDIT_LISTEN_ADDR"); ok {
		listenAddr = v
	}

	dbPath := "layeraudit.db"
	if v, ok := os.LookupEnv("LAYERAUDIT_DB_PATH"); ok {
		dbPath = v
	}

	watchDir := os.Getenv("LAYERAUDIT_WATCH_DIR")

	return &Config{
		ListenAddr: listenAddr,
		DBPath:     dbPath,
		WatchDir:   watchDir,
	}, nil
}
