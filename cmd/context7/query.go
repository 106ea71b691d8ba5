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
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirseerhq/context7-cli/internal/context7"
	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
	"github.com/sirseerhq/context7-cli/internal/output"
)

// newSearchCommand creates the search command
func (a *app) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "search <repo> <query>",
		Aliases: []string{"s"},
		Short:   "Search for libraries by name with intelligent LLM-powered ranking",
		Long: `Search Context7 for libraries matching the name part of <repo>, ranked
for <query>. Each result shows its trust score, benchmark score and up to
five versions.

The repository may be given as owner/name or /owner/name.`,
		Example: `  context7 search vercel/next.js "app router"
  context7 s nextjs "setup ssr"`,
		Args: requireRepoAndQuery,
		RunE: func(cmd *cobra.Command, args []string) error {
			libraryID, query := parseInvocation(args)

			client, out, err := a.prepare(cmd)
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), client, out, libraryID, query)
		},
	}
}

// newContextCommand creates the context command
func (a *app) newContextCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "context <repo> <query>",
		Aliases: []string{"c"},
		Short:   "Retrieve intelligent, LLM-reranked documentation context",
		Long: `Retrieve documentation context for <query> from the library <repo> and
print it as plain text.

The repository may be given as owner/name or /owner/name.`,
		Example: `  context7 context facebook/react "useState hook"
  context7 c /better-auth/better-auth "signIn social redirect"`,
		Args: requireRepoAndQuery,
		RunE: func(cmd *cobra.Command, args []string) error {
			libraryID, query := parseInvocation(args)

			client, out, err := a.prepare(cmd)
			if err != nil {
				return err
			}
			return runContext(cmd.Context(), client, out, libraryID, query)
		},
	}
}

// requireRepoAndQuery rejects invocations without a repository or a query.
func requireRepoAndQuery(cmd *cobra.Command, args []string) error {
	if len(args) < 2 || strings.TrimSpace(args[0]) == "" || strings.TrimSpace(strings.Join(args[1:], " ")) == "" {
		return fmt.Errorf("%w: %s requires <repo> and <query>", c7errors.ErrMissingArguments, cmd.Name())
	}
	return nil
}

// parseInvocation returns the library ID and the query. Words after the
// query are joined to it, so an unquoted query still arrives whole.
func parseInvocation(args []string) (libraryID, query string) {
	return context7.NormalizeLibraryID(strings.TrimSpace(args[0])), strings.Join(args[1:], " ")
}

// runSearch announces the search, performs it and prints the results
func runSearch(ctx context.Context, client context7.Client, out output.Renderer, libraryID, query string) error {
	if err := out.SearchStarted(query); err != nil {
		return err
	}

	libs, err := client.Search(ctx, libraryID, query)
	if err != nil {
		return describeFailure("searching", err)
	}

	return out.SearchResults(libs)
}

// runContext announces the lookup, performs it and prints the text
func runContext(ctx context.Context, client context7.Client, out output.Renderer, libraryID, query string) error {
	if err := out.ContextStarted(libraryID, query); err != nil {
		return err
	}

	text, err := client.Context(ctx, libraryID, query)
	if err != nil {
		return describeFailure("querying", err)
	}

	return out.ContextResult(text)
}

// describeFailure prefixes errors that lack an API status with the action
// that failed. Status errors already read "Context7 API error (...)".
func describeFailure(action string, err error) error {
	var statusErr *context7.StatusError
	if errors.As(err, &statusErr) {
		return err
	}
	return fmt.Errorf("%s Context7: %w", action, err)
}
