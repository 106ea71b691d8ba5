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

// Package context7 provides a client for the Context7 documentation API.
// It covers the two endpoints the CLI needs: library search, which returns
// JSON records, and context retrieval, which returns plain text.
//
// The package includes:
//   - A Client interface for searching libraries and retrieving context
//   - An HTTP implementation authenticating with a bearer token
//   - Mock client for testing
//   - Type definitions for library records with explicit optional fields
//
// Basic usage:
//
//	client, err := context7.NewHTTPClient(token, context7.Options{})
//	if err != nil {
//	    // Handle error
//	}
//	libs, err := client.Search(ctx, context7.NormalizeLibraryID("vercel/next.js"), "app router")
package context7
