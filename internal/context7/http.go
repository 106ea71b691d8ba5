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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
)

// API endpoint paths, relative to the base URL.
const (
	pathSearch  = "/api/v2/libs/search"
	pathContext = "/api/v2/context"

	// DefaultBaseURL is the public Context7 service.
	DefaultBaseURL = "https://context7.com"

	// responseTypeText asks the context endpoint for plain text.
	responseTypeText = "txt"
)

// Options configures an HTTPClient. The zero value talks to the public
// service with no timeout and no logging.
type Options struct {
	// BaseURL overrides DefaultBaseURL.
	BaseURL string

	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration

	// UserAgent is sent with every request when non-empty.
	UserAgent string

	// Logger receives debug records for each exchange.
	Logger *slog.Logger

	// Transport replaces http.DefaultTransport, mainly for tests.
	Transport http.RoundTripper
}

// HTTPClient implements Client against the Context7 REST API.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a client authenticating with token. It returns an
// error if the token is empty or the base URL is not an absolute http(s) URL.
func NewHTTPClient(token string, opts Options) (*HTTPClient, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("api token cannot be empty")
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: must be an absolute http:// or https:// URL", baseURL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			Transport: &authTransport{
				token:     token,
				userAgent: opts.UserAgent,
				base:      &loggingTransport{base: base, logger: logger},
			},
		},
	}, nil
}

// Search implements Client. The libraryName parameter is derived from
// libraryID with LibraryName.
func (c *HTTPClient) Search(ctx context.Context, libraryID, query string) ([]Library, error) {
	params := url.Values{}
	params.Set("libraryName", LibraryName(libraryID))
	params.Set("query", query)

	body, err := c.get(ctx, pathSearch, params)
	if err != nil {
		return nil, err
	}

	return parseLibraries(body)
}

// Context implements Client.
func (c *HTTPClient) Context(ctx context.Context, libraryID, query string) (string, error) {
	params := url.Values{}
	params.Set("libraryId", libraryID)
	params.Set("query", query)
	params.Set("type", responseTypeText)

	body, err := c.get(ctx, pathContext, params)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// get performs one GET request and returns the response body. A non-success
// status yields a *StatusError; a failure to obtain a response wraps
// ErrNetworkFailure. Nothing is retried.
func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", c7errors.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", c7errors.ErrNetworkFailure, err)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// parseLibraries decodes a search response. Anything that is valid JSON but
// not an array means no results.
func parseLibraries(body []byte) ([]Library, error) {
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("failed to decode search response: invalid JSON")
	}
	if trimmed[0] != '[' {
		return nil, nil
	}

	var libs []Library
	if err := json.Unmarshal(trimmed, &libs); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return libs, nil
}
