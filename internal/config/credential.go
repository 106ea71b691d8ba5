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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
)

// CredentialSource tells where an API key was found.
type CredentialSource string

const (
	SourceEnvironment CredentialSource = "environment"
	SourceEnvFile     CredentialSource = "env file"
)

// Credential is the bearer token sent to the API. It is resolved once per
// invocation and passed down explicitly.
type Credential struct {
	Token  string
	Source CredentialSource
	// Path is the .env file the token came from, empty for SourceEnvironment.
	Path string
}

// String hides the token so a Credential can be logged safely.
func (c Credential) String() string {
	return fmt.Sprintf("credential(%s)", c.Source)
}

// ResolveCredential looks up the API key. The environment variable named by
// c.API.TokenEnv wins; otherwise the same key is read from the .env file
// returned by EnvFilePath. A missing file counts as "not found". Only the
// absence of a usable token from both sources is an error, and it always
// wraps ErrMissingCredential.
func (c *Config) ResolveCredential(env Environment) (Credential, error) {
	name := c.API.TokenEnv

	if env.Getenv != nil {
		if token := strings.TrimSpace(env.Getenv(name)); token != "" {
			return Credential{Token: token, Source: SourceEnvironment}, nil
		}
	}

	path := c.EnvFilePath(env)
	token, err := readEnvFileKey(env.Fs, path, name)
	if err != nil || token == "" {
		return Credential{}, &MissingCredentialError{Name: name, Path: path, Err: err}
	}

	return Credential{Token: token, Source: SourceEnvFile, Path: path}, nil
}

// MissingCredentialError reports that neither the environment nor the .env
// file held the API key. It unwraps to ErrMissingCredential.
type MissingCredentialError struct {
	Name string
	Path string
	// Err is set when the .env file exists but could not be read.
	Err error
}

func (e *MissingCredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s not found: %v", e.Name, e.Err)
	}
	return e.Name + " not found"
}

func (e *MissingCredentialError) Unwrap() error {
	return c7errors.ErrMissingCredential
}

// readEnvFileKey returns the trimmed value of key in the .env file at path,
// or "" when the file or the key does not exist.
func readEnvFileKey(fsys afero.Fs, path, key string) (string, error) {
	if fsys == nil || path == "" {
		return "", nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		// Files with lines godotenv rejects still get a plain KEY=value scan.
		return scanEnvKey(data, key), nil
	}

	return strings.TrimSpace(values[key]), nil
}

// scanEnvKey finds the first "key=value" line in data.
func scanEnvKey(data []byte, key string) string {
	re := regexp.MustCompile(`(?m)^\s*(?:export\s+)?` + regexp.QuoteMeta(key) + `=(.+)$`)
	m := re.FindSubmatch(data)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(string(m[1]))
}
