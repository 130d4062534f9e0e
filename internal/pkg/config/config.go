package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL,     default=http://localhost:8080"`
	Env         string        `env:"ENV,              default=development"`
	LogLevel    string        `env:"LOG_LEVEL,        default=info"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,     default=15s"`
	RateLimit   float64       `env:"RATE_LIMIT_RPS,   default=10"`
	RateBurst   int           `env:"RATE_LIMIT_BURST, default=20"`
	// DataDir holds the credential database. Defaults to ~/.booking-client.
	DataDir string `env:"DATA_DIR"`

	Diag DiagConfig
}

type DiagConfig struct {
	Enabled bool   `env:"DIAG_ENABLED, default=false"`
	Addr    string `env:"DIAG_ADDR,    default=127.0.0.1:9464"`
}

// Load reads configuration from the environment using go-envconfig. A .env
// file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// ResolveDataDir returns the configured data directory, defaulting to
// ~/.booking-client.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".booking-client"), nil
}
