// ABOUTME: Error taxonomy for Blogify API failures
// ABOUTME: Classifies local, rejected, and transient failures for callers

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure. Callers branch on the kind, not on raw
// status codes: a TokenRejected clears the stored token and routes to login,
// a Forbidden only shows a message, a NotFound renders an empty state.
type Kind int

const (
	// KindUnauthenticated: an authenticated call was attempted with no
	// stored token. Raised locally, before any network I/O.
	KindUnauthenticated Kind = iota
	// KindTokenRejected: the server refused the token itself (401).
	KindTokenRejected
	// KindForbidden: the token is fine but the action is not allowed (403).
	KindForbidden
	// KindValidation: bad input, rejected locally or by the server (400/422).
	KindValidation
	// KindNotFound: the referenced entity does not exist (404).
	KindNotFound
	// KindTransient: the request never completed (network, timeout).
	KindTransient
	// KindServer: the backend failed (5xx).
	KindServer
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindTokenRejected:
		return "token rejected"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not found"
	case KindTransient:
		return "transient"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// APIError is the classified failure returned by every Client method.
type APIError struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ErrNoToken is returned when an authenticated call is attempted without a
// stored token. No network round trip is made in this case.
var ErrNoToken = &APIError{Kind: KindUnauthenticated, Message: "no stored token, log in first"}

// IsKind reports whether err is an APIError of the given kind.
func IsKind(err error, k Kind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == k
	}
	return false
}

// classify maps an HTTP status to an APIError.
func classify(status int, msg string) *APIError {
	var kind Kind
	switch {
	case status == http.StatusUnauthorized:
		kind = KindTokenRejected
	case status == http.StatusForbidden:
		kind = KindForbidden
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = KindValidation
	case status >= 500:
		kind = KindServer
	default:
		kind = KindServer
	}
	if msg == "" {
		msg = fmt.Sprintf("backend returned status %d", status)
	}
	return &APIError{Kind: kind, Message: msg, StatusCode: status}
}

// transient wraps a failure that prevented the request from completing.
func transient(msg string) *APIError {
	return &APIError{Kind: KindTransient, Message: msg}
}
