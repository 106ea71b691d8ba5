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
	"errors"
	"fmt"
	"io"

	"github.com/sirseerhq/context7-cli/internal/apierror"
	"github.com/sirseerhq/context7-cli/internal/config"
	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
)

const usageLines = `Usage:
  Search:   context7 search <repo> <query>
  Context:  context7 context <repo> <query>`

// reportError prints err and, when one applies, a hint on what to do next.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	if hint := hintFor(err); hint != "" {
		fmt.Fprintln(w, hint)
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, c7errors.ErrMissingCredential):
		hint := "Set it in environment or in .env file"
		var missing *config.MissingCredentialError
		if errors.As(err, &missing) && missing.Path != "" {
			hint += fmt.Sprintf(" (%s)", missing.Path)
		}
		return hint
	case errors.Is(err, c7errors.ErrMissingArguments):
		return usageLines
	case errors.Is(err, c7errors.ErrUnknownCommand):
		return "Use 'search' or 'context'"
	default:
		return apierror.Hint(apierror.NewInspector(), err)
	}
}

// mapErrorToExitCode returns the process exit code for err. Every failure
// shares one non-zero code; scripts tell them apart by the stderr text.
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
