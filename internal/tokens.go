package internal

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// DefaultSessionTTL is the documented lifetime of a MangaDex session token,
// used when the token carries no parsable exp claim.
const DefaultSessionTTL = 15 * time.Minute

// Credentials is the session/refresh token pair held for an authenticated
// user, together with the session token's expiry.
type Credentials struct {
	Session   string
	Refresh   string
	ExpiresAt time.Time
}

// ExpiresWithin reports whether the session token expires within the given
// margin of now (or already has).
func (c Credentials) ExpiresWithin(margin time.Duration) bool {
	return !time.Now().Add(margin).Before(c.ExpiresAt)
}

// TokenStore holds the current credentials for a client. It is safe for
// concurrent use; multiple in-flight requests consult it simultaneously.
// An empty store is not an error condition - Get returns false and callers
// branch on absence.
type TokenStore struct {
	mu    sync.RWMutex
	creds Credentials
	set   bool
}

// NewTokenStore returns an empty TokenStore.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored credentials, if any.
func (s *TokenStore) Get() (Credentials, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds, s.set
}

// Set replaces the stored credentials. If ExpiresAt is zero it is derived
// from the session token's JWT exp claim, falling back to DefaultSessionTTL
// from now.
func (s *TokenStore) Set(c Credentials) {
	if c.ExpiresAt.IsZero() {
		if exp, ok := tokenExpiry(c.Session); ok {
			c.ExpiresAt = exp
		} else {
			c.ExpiresAt = time.Now().Add(DefaultSessionTTL)
		}
	}

	s.mu.Lock()
	s.creds = c
	s.set = true
	s.mu.Unlock()
}

// Clear removes the stored credentials. Subsequent Get calls report absence
// until a new session is established.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	s.creds = Credentials{}
	s.set = false
	s.mu.Unlock()
}

// ExpireSession marks the stored credentials as expired if the given session
// token is still the current one, forcing the next token resolution to
// refresh. A stale session value is ignored, so a request racing a completed
// refresh cannot expire the fresh pair.
func (s *TokenStore) ExpireSession(session string) {
	s.mu.Lock()
	if s.set && s.creds.Session == session {
		s.creds.ExpiresAt = time.Time{}
	}
	s.mu.Unlock()
}

// tokenExpiry extracts the exp claim from a JWT without verifying the
// signature. The server remains the authority on validity; the claim is only
// used to schedule proactive refreshes.
func tokenExpiry(token string) (time.Time, bool) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, false
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return time.Time{}, false
	}

	return time.Unix(claims.Exp, 0), true
}
