// Package config loads the optional homeplanner.toml configuration for
// the server and the suggestion client.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where the CLI looks for configuration when no explicit
// path is given.
const DefaultPath = "homeplanner.toml"

// Server configures the HTTP API.
type Server struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// Suggest configures the language-model suggestion client.
type Suggest struct {
	BaseURL        string  `toml:"base_url"`
	Model          string  `toml:"model"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	Temperature    float64 `toml:"temperature"`
	TopP           float64 `toml:"top_p"`
}

// Timeout returns the request timeout as a duration.
func (s Suggest) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Config is the full application configuration.
type Config struct {
	Server  Server  `toml:"server"`
	Suggest Suggest `toml:"suggest"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: Server{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Suggest: Suggest{
			BaseURL:        "http://localhost:11434",
			Model:          "mistral",
			TimeoutSeconds: 120,
			Temperature:    0.7,
			TopP:           0.9,
		},
	}
}

// Load reads a TOML config file and overlays it on the defaults. A
// missing file at the default path is not an error; a missing file at
// an explicit path is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Suggest.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid suggest timeout %d", cfg.Suggest.TimeoutSeconds)
	}

	return cfg, nil
}
