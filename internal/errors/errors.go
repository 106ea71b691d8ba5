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

// Package errors defines sentinel errors for consistent error handling across the application.
// Every failure of an invocation wraps exactly one of these kinds; the CLI maps them
// to stderr text and a non-zero exit code.
package errors

import "errors"

// Sentinel errors describing the kind of a failed invocation.
var (
	// ErrMissingCredential indicates no API key was found in the environment
	// or in the .env file next to the program.
	ErrMissingCredential = errors.New("api key not found")

	// ErrMissingArguments indicates a command was given without a repository or query.
	ErrMissingArguments = errors.New("missing arguments")

	// ErrUnknownCommand indicates the first argument is not a known command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrAPIStatus indicates the API answered with a non-success HTTP status.
	ErrAPIStatus = errors.New("context7 api error")

	// ErrNetworkFailure indicates the request never produced an HTTP response
	// (DNS failure, refused connection, timeout, reset).
	ErrNetworkFailure = errors.New("network connection failed")
)
