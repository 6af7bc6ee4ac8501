// Package errors defines common error types used throughout the MangaDex API wrapper.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// APIErrorDetail is a single entry from the MangaDex error envelope
// {"result":"error","errors":[{"id","status","title","detail"}]}.
type APIErrorDetail struct {
	ID     string `json:"id"`
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (d APIErrorDetail) String() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, d.Title)
	}
	if d.Detail != "" {
		parts = append(parts, d.Detail)
	}
	if len(parts) == 0 {
		return fmt.Sprintf("error %d", d.Status)
	}
	return strings.Join(parts, ": ")
}

// ConfigError indicates a problem with the client configuration.
type ConfigError struct {
	// Field contains the name of the configuration field that caused the error
	Field string
	// Message contains the detailed error message
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// AuthError indicates an authentication failure: a rejected login, a revoked
// or consumed refresh token, or a call that requires a session when none is
// established. It is terminal for the session; callers must re-authenticate.
type AuthError struct {
	// StatusCode is the HTTP status code (if from an HTTP response)
	StatusCode int
	// Message contains the detailed error message
	Message string
	// Body contains the raw response body (if available)
	Body string
	// Err contains the underlying error if available
	Err error
}

func (e *AuthError) Error() string {
	parts := []string{"auth error"}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status code %d", e.StatusCode))
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Body != "" {
		parts = append(parts, fmt.Sprintf("body: %q", e.Body))
	}
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("err: %v", e.Err))
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + ": " + strings.Join(parts[1:], ", ")
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// RateLimitError indicates the request was rejected by rate limiting, either
// locally (non-blocking admission control) or by the server (HTTP 429).
// RetryAfter carries the wait hint; zero means none was provided.
type RateLimitError struct {
	// RetryAfter is how long the caller should wait before retrying
	RetryAfter time.Duration
	// Message contains the detailed error message
	Message string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "rate limited"
	}
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s, retry after %s", msg, e.RetryAfter)
	}
	return msg
}

// NotFoundError indicates the requested resource does not exist (HTTP 404).
type NotFoundError struct {
	// Resource describes what was being looked up, e.g. "manga"
	Resource string
	// ID is the identifier that was not found
	ID string
}

func (e *NotFoundError) Error() string {
	if e.Resource != "" && e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	}
	if e.Resource != "" {
		return e.Resource + " not found"
	}
	return "not found"
}

// ValidationError indicates the request was malformed, rejected either
// client-side before dispatch or by the server schema (HTTP 400/422).
// It is never retried automatically.
type ValidationError struct {
	// Field is the offending input field for client-side rejections
	Field string
	// Message contains the detailed error message
	Message string
	// Details holds the server-provided error entries, if any
	Details []APIErrorDetail
}

func (e *ValidationError) Error() string {
	if len(e.Details) > 0 {
		msgs := make([]string, len(e.Details))
		for i, d := range e.Details {
			msgs[i] = d.String()
		}
		return "validation failed: " + strings.Join(msgs, "; ")
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return "validation failed: " + e.Message
}

// ServerError indicates a 5xx response. Retrying with backoff is at the
// caller's discretion.
type ServerError struct {
	// StatusCode is the HTTP status code
	StatusCode int
	// Message contains the detailed error message
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (status %d)", e.StatusCode)
}

// TransportError indicates the request never produced an HTTP response:
// connection failures, DNS errors, timeouts, or cancellation.
type TransportError struct {
	// URL is the URL that was being accessed
	URL string
	// Err contains the underlying error
	Err error
}

func (e *TransportError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a 2xx response body that did not decode into the
// expected result shape.
type DecodeError struct {
	// Operation is the name of the API operation where decoding failed
	Operation string
	// Err contains the underlying error
	Err error
}

func (e *DecodeError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("decode error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
