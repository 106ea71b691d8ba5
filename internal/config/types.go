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

// Package config types define the configuration structures used throughout
// context7-cli. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// Config represents the complete configuration for context7-cli.
type Config struct {
	API APIConfig `yaml:"api"`
	Log LogConfig `yaml:"log"`
}

// APIConfig contains the remote service settings. BaseURL can point at a
// self-hosted proxy; the endpoint paths below it are fixed.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`

	// Timeout bounds the whole HTTP exchange. Zero leaves the request
	// unbounded apart from cancellation of the command context.
	Timeout time.Duration `yaml:"timeout"`

	// TokenEnv names the environment variable (and .env key) holding the API key.
	TokenEnv string `yaml:"token_env"`

	// EnvFile overrides the location of the .env file. Empty means
	// ".env" in the directory of the running program.
	EnvFile string `yaml:"env_file"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Environment bundles the process fundamentals configuration is resolved
// from, so that tests can substitute every one of them.
type Environment struct {
	Getenv     func(string) string
	Fs         afero.Fs
	ProgramDir string
	HomeDir    string
}

// Default values.
const (
	DefaultBaseURL  = "https://context7.com"
	DefaultTokenEnv = "CONTEXT7_API_KEY"
	DefaultLogLevel = "warn"
	envFileName     = ".env"
)

// DefaultConfig returns a Config that talks to the public Context7 service
// without a client-side timeout.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  DefaultBaseURL,
			Timeout:  0,
			TokenEnv: DefaultTokenEnv,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// OSEnvironment returns the Environment of the running process.
func OSEnvironment() Environment {
	home, _ := os.UserHomeDir()
	return Environment{
		Getenv:     os.Getenv,
		Fs:         afero.NewOsFs(),
		ProgramDir: programDir(),
		HomeDir:    home,
	}
}

// programDir returns the directory containing the running binary, following
// symlinks so that a binary linked into ~/bin still finds its own .env file.
func programDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
