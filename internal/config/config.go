package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings required by the client.
type Config struct {
	API    APIConfig
	State  StateConfig
	Sync   SyncConfig
	Logger LoggerConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StateConfig struct {
	Path   string
	Bucket string
}

type SyncConfig struct {
	RefreshTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the client can run with no setup beyond
// the server URL.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		API: APIConfig{
			BaseURL: getString("TASKDECK_API_URL", "http://localhost:8080"),
			Timeout: getDuration("TASKDECK_API_TIMEOUT", 10*time.Second),
		},
		State: StateConfig{
			Path:   getString("TASKDECK_STATE_PATH", defaultStatePath()),
			Bucket: getString("TASKDECK_STATE_BUCKET", "credentials"),
		},
		Sync: SyncConfig{
			RefreshTimeout: getDuration("TASKDECK_REFRESH_TIMEOUT", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("TASKDECK_LOG_LEVEL", "warn"),
			Encoding: getString("TASKDECK_LOG_ENCODING", "console"),
		},
	}

	return cfg, nil
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".taskdeck", "state.db")
	}
	return filepath.Join(home, ".taskdeck", "state.db")
}

func getString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
