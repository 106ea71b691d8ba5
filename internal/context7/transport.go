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
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// headerRequestID correlates a request with the CLI's debug log.
const headerRequestID = "X-Request-ID"

// authTransport adds the bearer token and standard headers to every request.
type authTransport struct {
	token     string
	userAgent string
	base      http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if req.Header.Get(headerRequestID) == "" {
		req.Header.Set(headerRequestID, uuid.NewString())
	}
	return t.base.RoundTrip(req)
}

// loggingTransport records each exchange at debug level. The query string
// is logged, headers are not, so the token never reaches the log.
type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	attrs := []any{
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", req.Header.Get(headerRequestID),
	}

	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		t.logger.Debug("request failed", append(attrs, "elapsed", elapsed, "error", err)...)
		return nil, err
	}

	t.logger.Debug("response received", append(attrs, "status", resp.StatusCode, "elapsed", elapsed)...)
	return resp, nil
}
