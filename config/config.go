// Package config loads the application configuration.
//
// Values are read, in increasing priority, from the defaults, a TOML file and
// RSU_* environment variables. A .env file in the working directory is loaded
// into the environment first.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	Quotes  QuotesConfig  `toml:"quotes"`
	Logging LoggingConfig `toml:"logging"`
}

// StorageConfig selects where grants are persisted.
type StorageConfig struct {
	Backend string `toml:"backend"` // "file" or "sqlite"
	Path    string `toml:"path"`
}

// QuotesConfig selects the price provider.
type QuotesConfig struct {
	Provider string `toml:"provider"` // "static" or "http"
	URL      string `toml:"url"`      // may contain {symbol} and {apikey}
	APIKey   string `toml:"api_key"`
	Path     string `toml:"path"` // JSONPath of the price in the response
	CacheDir string `toml:"cache_dir"`
	Parallel int    `toml:"parallel"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "text" or "json"
}

// Provider names.
const (
	ProviderStatic = "static"
	ProviderHTTP   = "http"
)

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Path:    ".rsu",
		},
		Quotes: QuotesConfig{
			Provider: ProviderStatic,
			Parallel: 4,
		},
		Logging: LoggingConfig{
			Level:  "warning",
			Format: "text",
		},
	}
}

// Load loads configuration with priority: defaults -> file -> env.
//
// An empty path skips the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	config := NewDefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies RSU_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	strs := []struct {
		env string
		dst *string
	}{
		{"RSU_STORAGE_BACKEND", &config.Storage.Backend},
		{"RSU_STORAGE_PATH", &config.Storage.Path},
		{"RSU_QUOTES_PROVIDER", &config.Quotes.Provider},
		{"RSU_QUOTES_URL", &config.Quotes.URL},
		{"RSU_QUOTES_API_KEY", &config.Quotes.APIKey},
		{"RSU_QUOTES_PATH", &config.Quotes.Path},
		{"RSU_QUOTES_CACHE_DIR", &config.Quotes.CacheDir},
		{"RSU_LOG_LEVEL", &config.Logging.Level},
		{"RSU_LOG_FORMAT", &config.Logging.Format},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
		}
	}
	if v := os.Getenv("RSU_QUOTES_PARALLEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Quotes.Parallel = n
		}
	}
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Quotes.Provider {
	case ProviderStatic:
	case ProviderHTTP:
		if c.Quotes.URL == "" || c.Quotes.Path == "" {
			return fmt.Errorf("quotes provider %q requires an url and a path", ProviderHTTP)
		}
	default:
		return fmt.Errorf("unknown quotes provider %q, want %q or %q", c.Quotes.Provider, ProviderStatic, ProviderHTTP)
	}
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ConfigureLogging applies the logging settings to the standard logrus logger.
func (c *Config) ConfigureLogging() {
	level, err := log.ParseLevel(c.Logging.Level)
	if err != nil {
		level = log.WarnLevel
	}
	log.SetLevel(level)
	if c.Logging.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
}
