package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
)

// TokenSource resolves the session token a request should carry.
// The Authenticator implements it.
type TokenSource interface {
	// Token returns a currently valid session token, refreshing if needed.
	// Empty with a nil error means no session is established.
	Token(ctx context.Context) (string, error)

	// Invalidate marks a session token the server rejected, forcing the
	// next Token call to refresh.
	Invalidate(session string)
}

// RateLimitConfig controls how requests are throttled before reaching the API.
type RateLimitConfig struct {
	// RequestsPerSecond caps steady-state throughput via a token bucket.
	// Defaults to 5 if zero, matching the documented global limit.
	RequestsPerSecond float64
	// Burst allows short spikes above the steady-state rate. Defaults to 5.
	Burst int

	// WindowLimit and Window configure the fixed-window budget: at most
	// WindowLimit dispatches per Window. Zero disables the window budget
	// and leaves only the token bucket.
	WindowLimit int
	Window      time.Duration

	// NonBlocking makes an exhausted window fail fast with a RateLimitError
	// carrying the time until reset, instead of blocking the caller.
	NonBlocking bool
}

const (
	DefaultRequestsPerSecond = 5
	DefaultRateLimitBurst    = 5
)

// Client is the request dispatcher. Every endpoint method funnels through it:
// it resolves a token, applies admission control, sends the request, retries
// once on 401 after a refresh, and decodes or classifies the response.
type Client struct {
	client    *http.Client
	BaseURL   *url.URL
	UserAgent string

	tokens      TokenSource
	limiter     *rate.Limiter
	budget      *Budget
	nonBlocking bool
	logger      zerolog.Logger

	mu             sync.Mutex
	forceWaitUntil time.Time
}

// NewClient returns a new dispatcher. If httpClient is nil,
// http.DefaultClient is used.
func NewClient(httpClient *http.Client, tokens TokenSource, baseURL, userAgent string, rateCfg *RateLimitConfig, logger zerolog.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	if !strings.HasSuffix(parsedURL.Path, "/") {
		parsedURL.Path += "/"
	}

	if rateCfg == nil {
		rateCfg = &RateLimitConfig{}
	}

	return &Client{
		client:      httpClient,
		BaseURL:     parsedURL,
		UserAgent:   userAgent,
		tokens:      tokens,
		limiter:     buildLimiter(*rateCfg),
		budget:      NewBudget(rateCfg.WindowLimit, rateCfg.Window),
		nonBlocking: rateCfg.NonBlocking,
		logger:      logger,
	}, nil
}

// NewRequest creates an API request. The path is resolved relative to the
// client's base URL; a non-nil body is JSON-encoded.
func (c *Client) NewRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	u, err := c.BaseURL.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "path", Message: err.Error()}
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &pkgerrs.ValidationError{Message: "failed to encode request body: " + err.Error()}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "path", Message: err.Error()}
	}

	req.Header.Set("User-Agent", c.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Do dispatches a request for an endpoint that works with or without a
// session. A stored token is attached when present.
func (c *Client) Do(req *http.Request, v interface{}) error {
	return c.dispatch(req, v, false)
}

// DoAuth dispatches a request for an endpoint that requires a session.
// Without one it fails immediately with an AuthError, before any network
// traffic or budget accounting.
func (c *Client) DoAuth(req *http.Request, v interface{}) error {
	return c.dispatch(req, v, true)
}

// DoRaw dispatches a request and returns the raw 2xx body. Used for the few
// endpoints that do not answer with the JSON envelope.
func (c *Client) DoRaw(req *http.Request) ([]byte, error) {
	var body []byte
	if err := c.dispatch(req, &body, false); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) dispatch(req *http.Request, v interface{}, requireAuth bool) error {
	ctx := req.Context()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token == "" && requireAuth {
		return &pkgerrs.AuthError{Message: "no active session"}
	}

	status, header, body, err := c.send(ctx, req, token)
	if err != nil {
		return err
	}

	// A 401 for a token the client believed valid means the server expired
	// it early or revoked it. Invalidate, refresh, and retry exactly once;
	// a second 401 propagates as-is.
	if status == http.StatusUnauthorized && token != "" {
		c.tokens.Invalidate(token)

		fresh, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}

		if fresh != "" && fresh != token {
			c.logger.Debug().Str("url", req.URL.Path).Msg("retrying after token refresh")
			status, header, body, err = c.send(ctx, req, fresh)
			if err != nil {
				return err
			}
		}
	}

	return c.classify(req, status, header, body, v)
}

// send runs admission control and one network round trip, returning the
// status, headers, and fully read body.
func (c *Client) send(ctx context.Context, req *http.Request, token string) (int, http.Header, []byte, error) {
	if err := c.admit(ctx); err != nil {
		return 0, nil, nil, err
	}

	// Cancelled after taking a window slot but before any network traffic:
	// hand the slot back so the budget neither leaks nor double-charges.
	if err := ctx.Err(); err != nil {
		c.budget.Release()
		return 0, nil, nil, &pkgerrs.TransportError{URL: req.URL.String(), Err: err}
	}

	r := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return 0, nil, nil, &pkgerrs.TransportError{URL: req.URL.String(), Err: err}
		}
		r.Body = body
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(r)
	if err != nil {
		return 0, nil, nil, &pkgerrs.TransportError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, &pkgerrs.TransportError{URL: req.URL.String(), Err: err}
	}

	c.applyRateHeaders(resp)

	return resp.StatusCode, resp.Header, body, nil
}

// admit gates dispatch on the three throttling layers: the Retry-After
// forced delay, the fixed-window budget, and the token-bucket smoother.
func (c *Client) admit(ctx context.Context) error {
	if err := c.waitForForcedDelay(ctx); err != nil {
		return &pkgerrs.TransportError{Err: err}
	}

	if c.nonBlocking {
		if ok, retryAfter := c.budget.TryAcquire(); !ok {
			return &pkgerrs.RateLimitError{RetryAfter: retryAfter, Message: "request budget exhausted"}
		}
	} else if err := c.budget.Acquire(ctx); err != nil {
		return &pkgerrs.TransportError{Err: err}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.budget.Release()
			return &pkgerrs.TransportError{Err: err}
		}
	}

	return nil
}

func buildLimiter(cfg RateLimitConfig) *rate.Limiter {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = DefaultRequestsPerSecond
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = DefaultRateLimitBurst
	}

	return rate.NewLimiter(rate.Limit(rps), burst)
}

func (c *Client) waitForForcedDelay(ctx context.Context) error {
	for {
		c.mu.Lock()
		waitUntil := c.forceWaitUntil
		c.mu.Unlock()

		if waitUntil.IsZero() {
			return nil
		}

		now := time.Now()
		if !now.Before(waitUntil) {
			c.clearForcedDelay(waitUntil)
			return nil
		}

		timer := time.NewTimer(waitUntil.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			c.clearForcedDelay(waitUntil)
		}
	}
}

func (c *Client) clearForcedDelay(previous time.Time) {
	c.mu.Lock()
	if previous.Equal(c.forceWaitUntil) {
		c.forceWaitUntil = time.Time{}
	}
	c.mu.Unlock()
}

// applyRateHeaders defers future requests when the server says slow down.
func (c *Client) applyRateHeaders(resp *http.Response) {
	if d := retryAfterHint(resp.Header); d > 0 {
		c.logger.Debug().Dur("delay", d).Msg("deferring requests per rate headers")
		c.deferRequests(d)
	}
}

func (c *Client) deferRequests(d time.Duration) {
	if d <= 0 {
		return
	}

	until := time.Now().Add(d)

	c.mu.Lock()
	if until.After(c.forceWaitUntil) {
		c.forceWaitUntil = until
	}
	c.mu.Unlock()
}

// retryAfterHint extracts the wait the server asked for. Retry-After carries
// seconds or an HTTP-date; X-RateLimit-Retry-After carries a unix timestamp.
func retryAfterHint(h http.Header) time.Duration {
	if v := h.Get("Retry-After"); v != "" {
		if secs, err := strconv.ParseFloat(v, 64); err == nil && secs > 0 {
			return time.Duration(secs * float64(time.Second))
		}
		if at, err := http.ParseTime(v); err == nil {
			if d := time.Until(at); d > 0 {
				return d
			}
		}
	}

	if v := h.Get("X-RateLimit-Retry-After"); v != "" {
		if ts, err := strconv.ParseInt(v, 10, 64); err == nil {
			if d := time.Until(time.Unix(ts, 0)); d > 0 {
				return d
			}
		}
	}

	return 0
}
