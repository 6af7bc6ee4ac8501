package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAPIErrorDetailString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		detail APIErrorDetail
		want   string
	}{
		{"title and detail", APIErrorDetail{Title: "bad_request", Detail: "limit too high"}, "bad_request: limit too high"},
		{"title only", APIErrorDetail{Title: "forbidden"}, "forbidden"},
		{"detail only", APIErrorDetail{Detail: "missing field"}, "missing field"},
		{"status only", APIErrorDetail{Status: 418}, "error 418"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.detail.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"config with field",
			&ConfigError{Field: "BaseURL", Message: "invalid URL"},
			"config error in field BaseURL: invalid URL",
		},
		{
			"config without field",
			&ConfigError{Message: "bad setup"},
			"config error: bad setup",
		},
		{
			"auth bare",
			&AuthError{},
			"auth error",
		},
		{
			"auth with status and body",
			&AuthError{StatusCode: 401, Body: "denied"},
			`auth error: status code 401, body: "denied"`,
		},
		{
			"rate limit with hint",
			&RateLimitError{RetryAfter: 5 * time.Second, Message: "rate limited by server"},
			"rate limited by server, retry after 5s",
		},
		{
			"rate limit without hint",
			&RateLimitError{},
			"rate limited",
		},
		{
			"not found full",
			&NotFoundError{Resource: "manga", ID: "abc"},
			"manga abc not found",
		},
		{
			"not found resource only",
			&NotFoundError{Resource: "chapter"},
			"chapter not found",
		},
		{
			"validation with field",
			&ValidationError{Field: "limit", Message: "must be at most 100"},
			"validation failed for limit: must be at most 100",
		},
		{
			"validation with details",
			&ValidationError{Details: []APIErrorDetail{{Title: "bad_request", Detail: "nope"}}},
			"validation failed: bad_request: nope",
		},
		{
			"server with message",
			&ServerError{StatusCode: 503, Message: "overloaded"},
			"server error (status 503): overloaded",
		},
		{
			"server bare",
			&ServerError{StatusCode: 500},
			"server error (status 500)",
		},
		{
			"transport with url",
			&TransportError{URL: "https://api.example.org/manga", Err: errors.New("connection refused")},
			"transport error for https://api.example.org/manga: connection refused",
		},
		{
			"decode",
			&DecodeError{Operation: "GET /manga", Err: errors.New("unexpected EOF")},
			"decode error during GET /manga: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("inner failure")

	tests := []struct {
		name string
		err  error
	}{
		{"auth", &AuthError{Err: inner}},
		{"transport", &TransportError{Err: inner}},
		{"decode", &DecodeError{Err: inner}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, inner) {
				t.Errorf("expected %T to unwrap to the inner error", tt.err)
			}
		})
	}
}
