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

package output

import "github.com/sirseerhq/context7-cli/internal/context7"

// Renderer defines how query progress and results are shown.
// This abstraction keeps the command flows independent of the output stream.
type Renderer interface {
	// SearchStarted announces a search before the request is sent.
	SearchStarted(query string) error

	// SearchResults prints the result header followed by every library,
	// or "No results found." when libs is empty.
	SearchResults(libs []context7.Library) error

	// ContextStarted announces a context lookup before the request is sent.
	ContextStarted(libraryID, query string) error

	// ContextResult prints the result header followed by text verbatim.
	ContextResult(text string) error
}
