// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for context7-cli with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The API key itself is never read from the configuration file; see
// ResolveCredential.
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding configuration values.
const (
	EnvAPIURL   = "CONTEXT7_API_URL"
	EnvTimeout  = "CONTEXT7_TIMEOUT"
	EnvLogLevel = "CONTEXT7_LOG_LEVEL"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .context7.yaml (current directory)
//   - .context7.yml (current directory)
//   - ~/.context7/config.yaml
//   - ~/.context7/config.yml
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(env Environment, configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(env.Fs, configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths(env.HomeDir) {
			if _, err := env.Fs.Stat(path); err == nil {
				if err := loadConfigFile(env.Fs, path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if err := applyEnvOverrides(cfg, env.Getenv); err != nil {
		return nil, err
	}

	cfg.API.EnvFile = expandPath(cfg.API.EnvFile, env.HomeDir)

	return cfg, nil
}

func defaultPaths(home string) []string {
	paths := []string{
		".context7.yaml",
		".context7.yml",
	}
	if home != "" {
		paths = append(paths,
			filepath.Join(home, ".context7", "config.yaml"),
			filepath.Join(home, ".context7", "config.yml"),
		)
	}
	return paths
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(fs afero.Fs, path string, cfg *Config) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config, getenv func(string) string) error {
	if getenv == nil {
		return nil
	}

	if apiURL := getenv(EnvAPIURL); apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	if timeout := getenv(EnvTimeout); timeout != "" {
		d, err := parseTimeout(timeout)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.API.Timeout = d
	}

	if level := getenv(EnvLogLevel); level != "" {
		cfg.Log.Level = level
	}

	return nil
}

// parseTimeout accepts a Go duration string or a bare number of seconds.
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration from '%s': %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("value must not be negative, got: %s", d)
	}
	return d, nil
}

// expandPath expands a leading ~ against home
func expandPath(path, home string) string {
	if strings.HasPrefix(path, "~/") && home != "" {
		return filepath.Join(home, path[2:])
	}
	return path
}

// EnvFilePath returns the .env file consulted for the API key.
func (c *Config) EnvFilePath(env Environment) string {
	if c.API.EnvFile != "" {
		return c.API.EnvFile
	}
	return filepath.Join(env.ProgramDir, envFileName)
}

// Validate checks if the configuration contains valid values. This should be
// called after all overrides are applied to catch invalid settings before any
// request is built.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL cannot be empty")
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return fmt.Errorf("API base URL must have http:// or https:// scheme, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got: %s", c.API.Timeout)
	}
	if c.API.TokenEnv == "" {
		return fmt.Errorf("token environment variable name cannot be empty")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: use debug, info, warn or error", c.Log.Level)
	}
	return nil
}
