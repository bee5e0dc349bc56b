// ABOUTME: Process configuration for the remote data service connection
// ABOUTME: Reads endpoint URL and access key from the environment, failing fast when absent
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvURL names the remote endpoint variable.
	EnvURL = "SUPABASE_URL"

	// EnvKey names the access credential variable.
	EnvKey = "SUPABASE_ANON_KEY"
)

// Config holds the remote data service connection settings.
type Config struct {
	// URL is the base endpoint of the remote row store.
	URL string

	// Key is the access credential sent with every request.
	Key string
}

// LoadEnvFile loads variables from the given dotenv file into the process
// environment. A missing file is not an error; existing variables win.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// FromEnv builds a Config from the process environment. Both values are
// required; the error names every missing variable.
func FromEnv() (*Config, error) {
	cfg := &Config{
		URL: strings.TrimSpace(os.Getenv(EnvURL)),
		Key: strings.TrimSpace(os.Getenv(EnvKey)),
	}

	var missing []string
	if cfg.URL == "" {
		missing = append(missing, EnvURL)
	}
	if cfg.Key == "" {
		missing = append(missing, EnvKey)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	cfg.URL = strings.TrimRight(cfg.URL, "/")
	return cfg, nil
}
