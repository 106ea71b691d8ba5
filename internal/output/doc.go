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

// Package output renders query progress and results as human-readable text.
// There is deliberately a single text format: every line is meant for a
// person reading a terminal.
//
// Example usage:
//
//	w := output.NewWriter(os.Stdout)
//	_ = w.SearchStarted(query)
//	libs, err := client.Search(ctx, libraryID, query)
//	if err != nil {
//	    return err
//	}
//	return w.SearchResults(libs)
package output
