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

// Package context7test provides an httptest fake of the Context7 API.
package context7test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// Endpoint paths served by the fake.
const (
	SearchPath  = "/api/v2/libs/search"
	ContextPath = "/api/v2/context"
)

// Response is a canned answer for one endpoint.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// Request is what the fake saw for one call.
type Request struct {
	Path          string
	Query         url.Values
	Authorization string
	UserAgent     string
	RequestID     string
}

// Server is a fake Context7 API recording every request it receives.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]Response
	requests  []Request
}

// NewServer starts a fake API that answers search with an empty array and
// context with an empty text body until told otherwise. It is closed when
// the test ends.
func NewServer(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		responses: map[string]Response{
			SearchPath:  {Status: http.StatusOK, ContentType: "application/json", Body: "[]"},
			ContextPath: {Status: http.StatusOK, ContentType: "text/plain", Body: ""},
		},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// NewErrorServer creates a fake that answers every path with statusCode and body.
func NewErrorServer(t *testing.T, statusCode int, body string) *Server {
	t.Helper()
	s := NewServer(t)
	s.Respond(SearchPath, Response{Status: statusCode, Body: body})
	s.Respond(ContextPath, Response{Status: statusCode, Body: body})
	return s
}

// Respond sets the answer for path.
func (s *Server) Respond(path string, resp Response) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = resp
}

// RespondJSON answers search with a JSON body and status 200.
func (s *Server) RespondJSON(body string) {
	s.Respond(SearchPath, Response{Status: http.StatusOK, ContentType: "application/json", Body: body})
}

// RespondText answers context with a plain text body and status 200.
func (s *Server) RespondText(body string) {
	s.Respond(ContextPath, Response{Status: http.StatusOK, ContentType: "text/plain", Body: body})
}

// Requests returns a copy of the requests received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request. It fails the test if none arrived.
func (s *Server) LastRequest(t *testing.T) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no request reached the fake Context7 API")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Path:          r.URL.Path,
		Query:         r.URL.Query(),
		Authorization: r.Header.Get("Authorization"),
		UserAgent:     r.Header.Get("User-Agent"),
		RequestID:     r.Header.Get("X-Request-ID"),
	})
	resp, ok := s.responses[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(resp.Body))
}
