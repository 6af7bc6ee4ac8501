package internal

import (
	"encoding/base64"
	"fmt"
	"testing"
	"time"
)

// makeJWT builds an unsigned token whose exp claim is the given time.
func makeJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp.Unix())))
	return header + "." + payload + ".sig"
}

func TestTokenStoreEmpty(t *testing.T) {
	t.Parallel()

	store := NewTokenStore()
	if _, ok := store.Get(); ok {
		t.Error("expected empty store to report absence")
	}
}

func TestTokenStoreSetGet(t *testing.T) {
	t.Parallel()

	store := NewTokenStore()
	store.Set(Credentials{Session: "session", Refresh: "refresh"})

	creds, ok := store.Get()
	if !ok {
		t.Fatal("expected stored credentials")
	}
	if creds.Session != "session" || creds.Refresh != "refresh" {
		t.Errorf("unexpected credentials: %+v", creds)
	}
	if creds.ExpiresAt.IsZero() {
		t.Error("expected derived expiry for opaque token")
	}
}

func TestTokenStoreDerivesExpiryFromJWT(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(42 * time.Minute).Truncate(time.Second)
	store := NewTokenStore()
	store.Set(Credentials{Session: makeJWT(t, exp), Refresh: "refresh"})

	creds, _ := store.Get()
	if !creds.ExpiresAt.Equal(exp) {
		t.Errorf("expected expiry %v from exp claim, got %v", exp, creds.ExpiresAt)
	}
}

func TestTokenStoreOpaqueTokenFallsBackToDefaultTTL(t *testing.T) {
	t.Parallel()

	before := time.Now()
	store := NewTokenStore()
	store.Set(Credentials{Session: "not-a-jwt", Refresh: "refresh"})

	creds, _ := store.Get()
	min := before.Add(DefaultSessionTTL - time.Second)
	max := time.Now().Add(DefaultSessionTTL + time.Second)
	if creds.ExpiresAt.Before(min) || creds.ExpiresAt.After(max) {
		t.Errorf("expected expiry near now+%v, got %v", DefaultSessionTTL, creds.ExpiresAt)
	}
}

func TestTokenStoreClear(t *testing.T) {
	t.Parallel()

	store := NewTokenStore()
	store.Set(Credentials{Session: "session", Refresh: "refresh"})
	store.Clear()

	if _, ok := store.Get(); ok {
		t.Error("expected cleared store to report absence")
	}
}

func TestTokenStoreExpireSession(t *testing.T) {
	t.Parallel()

	store := NewTokenStore()
	store.Set(Credentials{Session: "current", Refresh: "refresh"})

	// A stale value must not touch the current pair.
	store.ExpireSession("stale")
	creds, _ := store.Get()
	if creds.ExpiresAt.IsZero() {
		t.Fatal("stale session value expired the current credentials")
	}

	store.ExpireSession("current")
	creds, _ = store.Get()
	if !creds.ExpiresAt.IsZero() {
		t.Error("expected current session to be marked expired")
	}
	if !creds.ExpiresWithin(0) {
		t.Error("expired credentials should report as expiring")
	}
}

func TestCredentialsExpiresWithin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		expiry time.Time
		margin time.Duration
		want   bool
	}{
		{"far future", time.Now().Add(time.Hour), 30 * time.Second, false},
		{"already expired", time.Now().Add(-time.Minute), 0, true},
		{"inside margin", time.Now().Add(10 * time.Second), 30 * time.Second, true},
		{"zero expiry", time.Time{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Credentials{Session: "s", ExpiresAt: tt.expiry}
			if got := c.ExpiresWithin(tt.margin); got != tt.want {
				t.Errorf("ExpiresWithin(%v) = %v, want %v", tt.margin, got, tt.want)
			}
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)

	tests := []struct {
		name  string
		token string
		ok    bool
	}{
		{"valid jwt", makeJWT(t, exp), true},
		{"opaque token", "opaque", false},
		{"two parts", "a.b", false},
		{"bad base64", "a.!!!.c", false},
		{"payload not json", "a." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".c", false},
		{"missing exp", "a." + base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"x"}`)) + ".c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tokenExpiry(tt.token)
			if ok != tt.ok {
				t.Fatalf("tokenExpiry(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && !got.Equal(exp) {
				t.Errorf("tokenExpiry = %v, want %v", got, exp)
			}
		})
	}
}
