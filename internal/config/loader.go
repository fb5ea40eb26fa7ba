package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Load loads configuration from a file path and applies environment variable
// overrides. Validation is deferred so CLI flag overrides can be applied first.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		fileConfig, err := loadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = fileConfig
	}

	applyEnvironmentOverrides(cfg)

	return cfg, nil
}

// LoadFromEnvironment builds a configuration from defaults and environment
// variables only, without a config file.
func LoadFromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvironmentOverrides(cfg)
	return cfg, nil
}

// loadFromFile loads configuration from a JSON file
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigFileNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfigFormat, err)
	}

	return cfg, nil
}

// applyEnvironmentOverrides applies configuration from environment variables
func applyEnvironmentOverrides(cfg *Config) {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		cfg.MongoURI = uri
	}

	if db := os.Getenv("MONGOBRIDGE_DEFAULT_DATABASE"); db != "" {
		cfg.DefaultDatabase = db
	}

	if addr := os.Getenv("MONGOBRIDGE_HTTP_ADDR"); addr != "" {
		cfg.HTTPAddr = addr
	}

	if debug := os.Getenv("MONGOBRIDGE_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}

	if logLevel := os.Getenv("MONGOBRIDGE_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}

	// Allowed origins (comma-separated list)
	if allowedOrigins := os.Getenv("MONGOBRIDGE_ALLOWED_ORIGINS"); allowedOrigins != "" {
		origins := strings.Split(allowedOrigins, ",")
		cfg.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	}
}
