// Package config provides configuration management for hookfeed.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
)

// CurrentSchemaVersion is the current config schema version.
const CurrentSchemaVersion = 1

// Environment variable names for config overrides.
// Priority: Environment > Config File > Default
const (
	EnvPort         = "HOOKFEED_PORT"
	EnvHost         = "HOOKFEED_HOST"
	EnvDBPath       = "HOOKFEED_DB_PATH"
	EnvFeedUsername = "HOOKFEED_FEED_USERNAME"
	EnvFeedPassword = "HOOKFEED_FEED_PASSWORD"
)

// Config holds application configuration.
type Config struct {
	SchemaVersion int    `json:"schema_version"`
	Host          string `json:"host"`
	Port          int    `json:"port"`
	DBPath        string `json:"db_path"` // empty means the default data dir

	// Optional Basic Auth credentials for the feed endpoint. The webhook
	// endpoint is never behind auth; the source platform does not send
	// credentials.
	FeedUsername string `json:"feed_username"`
	FeedPassword string `json:"feed_password"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SchemaVersion: CurrentSchemaVersion,
		Host:          "0.0.0.0", // webhook deliveries come from outside
		Port:          8080,
		DBPath:        "", // resolved under the data dir
	}
}

// LoadConfig reads config from the default location. If the file doesn't
// exist or is corrupt, it returns DefaultConfig with a warning logged
// (non-fatal).
func LoadConfig() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), err
	}

	return LoadConfigFrom(path)
}

// LoadConfigFrom reads config from the specified path.
func LoadConfigFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// File doesn't exist, use defaults (not an error)
			return cfg, nil
		}
		log.Printf("Warning: failed to read config file: %v, using defaults", err)
		return cfg, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		log.Printf("Warning: config file is corrupt: %v, using defaults", err)
		return DefaultConfig(), nil
	}

	if cfg.SchemaVersion != CurrentSchemaVersion {
		log.Printf("Warning: config schema version mismatch (got %d, expected %d), using defaults",
			cfg.SchemaVersion, CurrentSchemaVersion)
		return DefaultConfig(), nil
	}

	return normalizeConfig(cfg), nil
}

// normalizeConfig validates and normalizes config values.
func normalizeConfig(cfg Config) Config {
	defaults := DefaultConfig()

	cfg.SchemaVersion = CurrentSchemaVersion

	if cfg.Host == "" {
		cfg.Host = defaults.Host
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = defaults.Port
	}

	return cfg
}

// ApplyEnvOverrides applies environment variable overrides to the config.
// Environment variables take highest priority over config file values.
func ApplyEnvOverrides(cfg Config) Config {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 && port <= 65535 {
			cfg.Port = port
		}
	}

	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}

	if v := os.Getenv(EnvFeedUsername); v != "" {
		cfg.FeedUsername = v
	}

	if v := os.Getenv(EnvFeedPassword); v != "" {
		cfg.FeedPassword = v
	}

	return cfg
}
