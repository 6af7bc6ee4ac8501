package internal

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
)

// apiErrorEnvelope is the error body shape the API documents:
// {"result":"error","errors":[{"id","status","title","detail"}]}.
type apiErrorEnvelope struct {
	Result string                   `json:"result"`
	Errors []pkgerrs.APIErrorDetail `json:"errors"`
}

// classify turns a fully read response into a decoded result or a typed
// error. 2xx bodies decode into v; decode failures surface as DecodeError
// rather than silently defaulting. Everything else maps onto the error
// taxonomy with as much detail as the body yields.
func (c *Client) classify(req *http.Request, status int, header http.Header, body []byte, v interface{}) error {
	if status >= 200 && status < 300 {
		if v == nil {
			return nil
		}
		if raw, ok := v.(*[]byte); ok {
			*raw = body
			return nil
		}
		if err := json.Unmarshal(body, v); err != nil {
			return &pkgerrs.DecodeError{Operation: req.Method + " " + req.URL.Path, Err: err}
		}
		return nil
	}

	details := errorDetails(body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &pkgerrs.AuthError{StatusCode: status, Body: string(body)}

	case status == http.StatusNotFound:
		resource, id := splitResourcePath(c.BaseURL.Path, req.URL.Path)
		return &pkgerrs.NotFoundError{Resource: resource, ID: id}

	case status == http.StatusTooManyRequests:
		retryAfter := retryAfterHint(header)
		if retryAfter == 0 {
			if secs := gjson.GetBytes(body, "retryAfter"); secs.Exists() {
				retryAfter = time.Duration(secs.Float() * float64(time.Second))
			}
		}
		return &pkgerrs.RateLimitError{RetryAfter: retryAfter, Message: "rate limited by server"}

	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &pkgerrs.ValidationError{Message: http.StatusText(status), Details: details}

	case status >= 500:
		msg := http.StatusText(status)
		if len(details) > 0 {
			msg = details[0].String()
		}
		return &pkgerrs.ServerError{StatusCode: status, Message: msg}
	}

	// Remaining 4xx without a more specific mapping.
	return &pkgerrs.ValidationError{Message: http.StatusText(status), Details: details}
}

// errorDetails pulls the error entries out of a response body. Conforming
// envelopes decode directly; anything else (Cloudflare interstitials,
// truncated JSON) goes through gjson so whatever detail is present still
// reaches the caller.
func errorDetails(body []byte) []pkgerrs.APIErrorDetail {
	var envelope apiErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		return envelope.Errors
	}

	if !gjson.ValidBytes(body) {
		return nil
	}

	var details []pkgerrs.APIErrorDetail
	gjson.GetBytes(body, "errors").ForEach(func(_, entry gjson.Result) bool {
		details = append(details, pkgerrs.APIErrorDetail{
			ID:     entry.Get("id").String(),
			Status: int(entry.Get("status").Int()),
			Title:  entry.Get("title").String(),
			Detail: entry.Get("detail").String(),
		})
		return true
	})
	if len(details) > 0 {
		return details
	}

	for _, key := range []string{"message", "error"} {
		if msg := gjson.GetBytes(body, key); msg.Exists() && msg.String() != "" {
			return []pkgerrs.APIErrorDetail{{Detail: msg.String()}}
		}
	}

	return nil
}

// splitResourcePath reduces a request path to the resource group and the
// identifier that was not found, e.g. /manga/{id} -> ("manga", id).
func splitResourcePath(basePath, reqPath string) (string, string) {
	trimmed := strings.TrimPrefix(reqPath, basePath)
	trimmed = strings.Trim(trimmed, "/")

	parts := strings.Split(trimmed, "/")
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}
