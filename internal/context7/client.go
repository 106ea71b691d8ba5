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

package context7

import "context"

// Client defines the interface for interacting with the Context7 API.
// This interface allows for easy mocking in tests.
type Client interface {
	// Search finds libraries matching the library named by libraryID, ranked
	// for query. A body that is valid JSON but not an array yields no libraries.
	Search(ctx context.Context, libraryID, query string) ([]Library, error)

	// Context retrieves documentation snippets for query from the library
	// identified by libraryID, as plain text.
	Context(ctx context.Context, libraryID, query string) (string, error)
}
