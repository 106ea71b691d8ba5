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

// Package main implements the context7 command-line interface.
// This tool queries the Context7 API to search for documentation libraries
// and to retrieve documentation context for a library, printing the result
// as text for a human reader.
//
// The CLI supports:
//   - Searching libraries by name, ranked for a query (search, s)
//   - Retrieving documentation context from a library (context, c)
//   - API key lookup from CONTEXT7_API_KEY or a .env file next to the binary
//   - A single non-zero exit code for every failure
//
// Usage:
//
//	context7 <command> <owner/repo> <query>
//
// Example:
//
//	export CONTEXT7_API_KEY=your_key
//	context7 search vercel/next.js "app router"
//	context7 context facebook/react "useState hook"
//
// Exit codes:
//   - 0: Success or help
//   - 1: Any error
package main
