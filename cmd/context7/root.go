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

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/context7-cli/internal/config"
	"github.com/sirseerhq/context7-cli/internal/context7"
	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
	"github.com/sirseerhq/context7-cli/internal/logging"
	"github.com/sirseerhq/context7-cli/internal/output"
)

// clientFactory builds the API client once configuration and credential
// are known.
type clientFactory func(cred config.Credential, cfg *config.Config, logger *slog.Logger) (context7.Client, error)

// app holds everything one invocation needs from the outside world.
type app struct {
	env       config.Environment
	stdout    io.Writer
	stderr    io.Writer
	newClient clientFactory

	configPath string
	envFile    string
	apiURL     string
	timeout    time.Duration
	logLevel   string
}

// run executes one invocation and returns its error unprinted. It never
// exits the process, so tests can drive it directly.
func run(ctx context.Context, args []string, env config.Environment, stdout, stderr io.Writer) error {
	a := &app{
		env:       env,
		stdout:    stdout,
		stderr:    stderr,
		newClient: newHTTPClient,
	}
	return a.execute(ctx, args)
}

func (a *app) execute(ctx context.Context, args []string) error {
	rootCmd := a.newRootCommand()
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func (a *app) newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "context7 <command> <repo_owner/repo_name> <search_query>",
		Short: "Query Context7 to search documentation and repository code",
		Long: `Context7 Query CLI

Query the Context7 API to search documentation and repository code.

The API key is read from CONTEXT7_API_KEY, or from a .env file in the
directory of this program containing a CONTEXT7_API_KEY=... line.

For more info: https://context7.com/docs`,
		Example: `  context7 search "nextjs" "setup ssr"
  context7 context "better-auth/better-auth" "signIn social redirect"`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // main prints errors
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("%w %q", c7errors.ErrUnknownCommand, args[0])
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: .context7.yaml or ~/.context7/config.yaml)")
	flags.StringVar(&a.envFile, "env-file", "", "File holding CONTEXT7_API_KEY (default: .env next to the program)")
	flags.StringVar(&a.apiURL, "api-url", "", "Context7 API base URL (overrides CONTEXT7_API_URL)")
	flags.DurationVar(&a.timeout, "timeout", 0, "Request timeout, 0 for none (overrides CONTEXT7_TIMEOUT)")
	flags.StringVar(&a.logLevel, "log-level", "", "Diagnostic log level: debug, info, warn, error")

	rootCmd.AddCommand(a.newSearchCommand())
	rootCmd.AddCommand(a.newContextCommand())

	return rootCmd
}

// loadConfig resolves configuration with flags applied last.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(a.env, a.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.BaseURL = a.apiURL
	}
	if flags.Changed("timeout") {
		cfg.API.Timeout = a.timeout
	}
	if flags.Changed("env-file") {
		cfg.API.EnvFile = a.envFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// prepare loads configuration, resolves the API key and builds the client.
// It runs before any request, so a missing key never costs a network call.
func (a *app) prepare(cmd *cobra.Command) (context7.Client, output.Renderer, error) {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(a.stderr, level)

	cred, err := cfg.ResolveCredential(a.env)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("api key resolved", "source", cred.Source, "path", cred.Path, "base_url", cfg.API.BaseURL)

	client, err := a.newClient(cred, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, output.NewWriter(a.stdout), nil
}

func newHTTPClient(cred config.Credential, cfg *config.Config, logger *slog.Logger) (context7.Client, error) {
	return context7.NewHTTPClient(cred.Token, context7.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: "context7-cli/" + version,
		Logger:    logger,
	})
}
