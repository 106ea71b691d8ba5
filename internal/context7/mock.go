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

import (
	"context"
	"fmt"

	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// Libraries returned by Search
	Libraries []Library

	// Text returned by Context
	Text string

	// Error to return
	Error error

	// Behavior flags
	ShouldFailNetwork bool
	FailStatus        int
	FailBody          string

	// Track calls for verification
	CallCount     int
	LastMethod    string
	LastLibraryID string
	LastQuery     string
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	return &MockClient{
		Libraries: generateTestLibraries(),
		Text:      "### useState\nDeclare a state variable.\n",
	}
}

// Search implements the Client interface
func (m *MockClient) Search(ctx context.Context, libraryID, query string) ([]Library, error) {
	if err := m.record(ctx, "search", libraryID, query); err != nil {
		return nil, err
	}
	return m.Libraries, nil
}

// Context implements the Client interface
func (m *MockClient) Context(ctx context.Context, libraryID, query string) (string, error) {
	if err := m.record(ctx, "context", libraryID, query); err != nil {
		return "", err
	}
	return m.Text, nil
}

func (m *MockClient) record(ctx context.Context, method, libraryID, query string) error {
	m.CallCount++
	m.LastMethod = method
	m.LastLibraryID = libraryID
	m.LastQuery = query

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailNetwork {
		return fmt.Errorf("%w: dial tcp: connection refused", c7errors.ErrNetworkFailure)
	}

	if m.FailStatus != 0 {
		return &StatusError{Code: m.FailStatus, Body: m.FailBody}
	}

	return m.Error
}

// generateTestLibraries creates sample search results for testing
func generateTestLibraries() []Library {
	trust := Score(9.2)
	bench := Score(87.5)
	return []Library{
		{
			ID:             "/facebook/react",
			Name:           "React",
			TrustScore:     &trust,
			BenchmarkScore: &bench,
			Versions:       []string{"v19.1.0", "v19.0.0", "v18.3.1", "v18.2.0", "v17.0.2", "v16.14.0"},
		},
		{
			ID: "/reactjs/react.dev",
		},
	}
}
