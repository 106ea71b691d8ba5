package apierror

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
)

// Inspector provides methods for analyzing Context7 API errors.
type Inspector interface {
	// IsAuthError returns true if the error represents a rejected or missing API key.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents an unknown library.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	IsNetworkError(err error) bool
}

// statusCoder is implemented by errors carrying an HTTP status code.
type statusCoder interface {
	StatusCode() int
}

// HTTPInspector implements Inspector. Errors that carry a status code are
// classified by it; everything else falls back to message matching.
type HTTPInspector struct{}

// NewInspector creates a new HTTPInspector.
func NewInspector() Inspector {
	return &HTTPInspector{}
}

func statusOf(err error) (int, bool) {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), true
	}
	return 0, false
}

// IsAuthError checks if the error is an authentication or authorization error.
func (i *HTTPInspector) IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := statusOf(err); ok {
		return code == http.StatusUnauthorized || code == http.StatusForbidden
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "invalid api key")
}

// IsNotFoundError checks if the error is a not found error.
func (i *HTTPInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := statusOf(err); ok {
		return code == http.StatusNotFound
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}

// IsRateLimitError checks if the error is a rate limit error.
func (i *HTTPInspector) IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := statusOf(err); ok {
		return code == http.StatusTooManyRequests
	}
	return strings.Contains(strings.ToLower(err.Error()), "rate limit")
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *HTTPInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := statusOf(err); ok {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "tls handshake") ||
		strings.Contains(errStr, "network is unreachable")
}

// Hint returns a suggestion for the user matching the category of err, or ""
// when there is nothing useful to add.
func Hint(i Inspector, err error) string {
	switch {
	case i.IsAuthError(err):
		return "Check that CONTEXT7_API_KEY holds a valid Context7 API key"
	case i.IsRateLimitError(err):
		return "Rate limit reached. Wait a moment before querying again"
	case i.IsNotFoundError(err):
		return "Check the library ID, e.g. vercel/next.js (run 'search' to find it)"
	case i.IsNetworkError(err):
		return "Network connection failed. Please check your internet connection and try again"
	default:
		return ""
	}
}
