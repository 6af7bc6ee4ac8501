package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

const (
	loginPath   = "auth/login"
	refreshPath = "auth/refresh"
	logoutPath  = "auth/logout"

	// DefaultRefreshMargin is how close to expiry a session token may get
	// before Token refreshes it proactively.
	DefaultRefreshMargin = 30 * time.Second
)

// AuthState is the lifecycle state of the authenticator.
type AuthState int32

const (
	// StateUnauthenticated means no session has been established.
	StateUnauthenticated AuthState = iota
	// StateAuthenticated means a session is active.
	StateAuthenticated
	// StateRefreshing means a token refresh exchange is in flight.
	StateRefreshing
	// StateFailed means the last refresh was rejected and the session is
	// gone; a new login is required.
	StateFailed
)

func (s AuthState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateRefreshing:
		return "refreshing"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("AuthState(%d)", int32(s))
}

// Authenticator owns the token lifecycle: the login exchange, proactive and
// forced refreshes, and logout. Concurrent callers racing on the same stale
// session coalesce into a single refresh exchange, so a refresh token is
// never presented to the server twice.
type Authenticator struct {
	client     *http.Client
	userAgent  string
	loginURL   *url.URL
	refreshURL *url.URL
	logoutURL  *url.URL

	store  *TokenStore
	margin time.Duration
	logger zerolog.Logger

	group singleflight.Group
	state atomic.Int32
}

// NewAuthenticator creates an authenticator around the given store.
// If httpClient is nil, http.DefaultClient is used.
func NewAuthenticator(httpClient *http.Client, baseURL, userAgent string, store *TokenStore, logger zerolog.Logger) (*Authenticator, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	if !strings.HasSuffix(parsed.Path, "/") {
		parsed.Path += "/"
	}

	login, err := parsed.Parse(loginPath)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	refresh, err := parsed.Parse(refreshPath)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}
	logout, err := parsed.Parse(logoutPath)
	if err != nil {
		return nil, &pkgerrs.ConfigError{Field: "BaseURL", Message: err.Error()}
	}

	return &Authenticator{
		client:     httpClient,
		userAgent:  userAgent,
		loginURL:   login,
		refreshURL: refresh,
		logoutURL:  logout,
		store:      store,
		margin:     DefaultRefreshMargin,
		logger:     logger,
	}, nil
}

// State returns the current lifecycle state.
func (a *Authenticator) State() AuthState {
	return AuthState(a.state.Load())
}

// Login performs the POST /auth/login exchange and stores the returned token
// pair on success.
func (a *Authenticator) Login(ctx context.Context, username, password string) (types.AuthTokens, error) {
	var resp types.LoginResponse
	err := a.exchange(ctx, a.loginURL, "", types.LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		a.state.Store(int32(StateUnauthenticated))
		return types.AuthTokens{}, err
	}

	a.store.Set(Credentials{Session: resp.Token.Session, Refresh: resp.Token.Refresh})
	a.state.Store(int32(StateAuthenticated))
	a.logger.Debug().Str("state", a.State().String()).Msg("login succeeded")

	return resp.Token, nil
}

// Logout performs the POST /auth/logout exchange and clears the store. The
// store is cleared even if the server call fails; the local session is gone
// either way.
func (a *Authenticator) Logout(ctx context.Context) error {
	creds, ok := a.store.Get()

	a.store.Clear()
	a.state.Store(int32(StateUnauthenticated))

	if !ok {
		return nil
	}
	return a.exchange(ctx, a.logoutURL, creds.Session, nil, nil)
}

// Token returns a session token valid for at least the refresh margin,
// refreshing it first if needed. An empty string with a nil error means no
// session is established; callers decide whether that is acceptable for the
// endpoint at hand.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	creds, ok := a.store.Get()
	if !ok {
		return "", nil
	}
	if !creds.ExpiresWithin(a.margin) {
		return creds.Session, nil
	}
	return a.refresh(ctx, creds)
}

// Invalidate marks the given session token as expired so the next Token call
// refreshes. Used by the dispatcher when the server answers 401 for a token
// the client still believed valid.
func (a *Authenticator) Invalidate(session string) {
	a.store.ExpireSession(session)
}

// Refresh forces a refresh exchange for the current credentials and returns
// the new token pair.
func (a *Authenticator) Refresh(ctx context.Context) (types.AuthTokens, error) {
	creds, ok := a.store.Get()
	if !ok {
		return types.AuthTokens{}, &pkgerrs.AuthError{Message: "no active session"}
	}

	a.store.ExpireSession(creds.Session)
	if _, err := a.refresh(ctx, creds); err != nil {
		return types.AuthTokens{}, err
	}

	fresh, ok := a.store.Get()
	if !ok {
		return types.AuthTokens{}, &pkgerrs.AuthError{Message: "refresh did not produce a session"}
	}
	return types.AuthTokens{Session: fresh.Session, Refresh: fresh.Refresh}, nil
}

// refresh exchanges the refresh token for a new pair. Callers holding the
// same stale session share one in-flight exchange; every waiter receives its
// result. On a rejected refresh the store is cleared, forcing a fresh login.
func (a *Authenticator) refresh(ctx context.Context, stale Credentials) (string, error) {
	ch := a.group.DoChan(stale.Session, func() (interface{}, error) {
		// Another caller may have completed the refresh while this one was
		// queued behind the singleflight key.
		if cur, ok := a.store.Get(); ok && cur.Session != stale.Session {
			return cur.Session, nil
		}

		a.state.Store(int32(StateRefreshing))
		a.logger.Debug().Msg("refreshing session token")

		// The exchange must not die with whichever caller happened to start
		// it; waiters behind the same key depend on its result.
		exchCtx := context.WithoutCancel(ctx)

		var resp types.RefreshResponse
		if err := a.exchange(exchCtx, a.refreshURL, "", types.RefreshRequest{Token: stale.Refresh}, &resp); err != nil {
			a.store.Clear()
			a.state.Store(int32(StateFailed))
			a.logger.Debug().Err(err).Msg("refresh rejected, session cleared")
			return nil, err
		}

		a.store.Set(Credentials{Session: resp.Token.Session, Refresh: resp.Token.Refresh})
		a.state.Store(int32(StateAuthenticated))
		return resp.Token.Session, nil
	})

	select {
	case <-ctx.Done():
		return "", &pkgerrs.TransportError{Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// exchange performs one JSON round trip against an auth endpoint. Failures
// are always AuthError: auth endpoints have no other failure mode worth
// distinguishing for callers.
func (a *Authenticator) exchange(ctx context.Context, u *url.URL, bearer string, body, v interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &pkgerrs.AuthError{Message: "failed to encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), reader)
	if err != nil {
		return &pkgerrs.AuthError{Message: "failed to create request", Err: err}
	}
	req.Header.Set("User-Agent", a.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return &pkgerrs.AuthError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &pkgerrs.AuthError{StatusCode: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &pkgerrs.AuthError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	if v != nil {
		if err := json.Unmarshal(bodyBytes, v); err != nil {
			return &pkgerrs.AuthError{StatusCode: resp.StatusCode, Body: string(bodyBytes), Err: err}
		}
	}

	return nil
}
