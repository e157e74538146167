package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File holds settings loadable from a TOML config file. Zero values mean
// "not set"; CLI flags and environment variables take precedence.
type File struct {
	Port             string `toml:"port"`
	DatabaseURL      string `toml:"database_url"`
	PlatformAPIURL   string `toml:"platform_api_url"`
	LogLevel         string `toml:"log_level"`
	RateLimit        int    `toml:"rate_limit"`
	SanitizeValues   bool   `toml:"sanitize_values"`
	SandboxNoScripts bool   `toml:"sandbox_no_scripts"`
}

// LoadFile reads and parses a TOML config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return &f, nil
}
