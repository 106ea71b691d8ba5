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
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	c7errors "github.com/sirseerhq/context7-cli/internal/errors"
)

// Defaults for values a library record may omit.
const (
	NotAvailable       = "N/A"
	maxVersionsShown   = 5
	versionsSeparator  = ", "
	versionsTruncation = "..."
)

// Library is one record of a search response. Name, scores and versions
// are optional in the wire format; the accessor methods supply the display
// defaults so callers never check for absence themselves.
type Library struct {
	ID             string   `json:"id"`
	Name           string   `json:"name,omitempty"`
	TrustScore     *Score   `json:"trustScore,omitempty"`
	BenchmarkScore *Score   `json:"benchmarkScore,omitempty"`
	Versions       []string `json:"versions,omitempty"`
}

// DisplayName returns the library name, falling back to its ID.
func (l Library) DisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// TrustScoreText returns the trust score or NotAvailable.
func (l Library) TrustScoreText() string {
	return l.TrustScore.text()
}

// BenchmarkScoreText returns the benchmark score or NotAvailable.
func (l Library) BenchmarkScoreText() string {
	return l.BenchmarkScore.text()
}

// VersionSummary joins the first five versions with ", " and appends "..."
// when more exist. It returns "" for a record without versions.
func (l Library) VersionSummary() string {
	if len(l.Versions) <= maxVersionsShown {
		return strings.Join(l.Versions, versionsSeparator)
	}
	return strings.Join(l.Versions[:maxVersionsShown], versionsSeparator) + versionsTruncation
}

// Score is a numeric quality metric. The service sends numbers, but a
// numeric string is accepted too.
type Score float64

// UnmarshalJSON implements json.Unmarshaler.
func (s *Score) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return fmt.Errorf("score %q is not a number", str)
		}
		*s = Score(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Score(f)
	return nil
}

func (s *Score) text() string {
	if s == nil {
		return NotAvailable
	}
	return strconv.FormatFloat(float64(*s), 'f', -1, 64)
}

// NormalizeLibraryID prefixes repo with "/" unless it already starts with one.
func NormalizeLibraryID(repo string) string {
	if strings.HasPrefix(repo, "/") {
		return repo
	}
	return "/" + repo
}

// LibraryName returns the name part of a library ID: the last non-empty
// path segment, so "/owner/name" gives "name" and "/nextjs" gives "nextjs".
// It returns "" when the ID has no segment at all.
func LibraryName(libraryID string) string {
	segments := strings.Split(libraryID, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// StatusError is returned when the API answers with a non-success status.
// It carries the response body as text.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Context7 API error (%d): %s", e.Code, e.Body)
}

// StatusCode returns the HTTP status code of the response.
func (e *StatusError) StatusCode() int {
	return e.Code
}

// Unwrap returns ErrAPIStatus so callers can use errors.Is.
func (e *StatusError) Unwrap() error {
	return c7errors.ErrAPIStatus
}

func isSuccess(code int) bool {
	return code >= http.StatusOK && code < http.StatusMultipleChoices
}
