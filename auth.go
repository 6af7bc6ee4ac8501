package mangadex

import (
	"context"
	"net/http"

	"github.com/gomanga/mangadex/internal"
	"github.com/gomanga/mangadex/pkg/types"
)

// Login authenticates with the API using the password flow and stores the
// returned session/refresh pair on the client. Username must be between 1
// and 64 characters, password between 8 and 1024; violations are rejected
// client-side without a network call.
func (c *Client) Login(ctx context.Context, username, password string) (types.AuthTokens, error) {
	if err := internal.ValidateUsername(username); err != nil {
		return types.AuthTokens{}, err
	}
	if err := internal.ValidatePassword(password); err != nil {
		return types.AuthTokens{}, err
	}

	return c.auth.Login(ctx, username, password)
}

// Logout invalidates the session server-side and clears the stored tokens.
// The local session is dropped even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	return c.auth.Logout(ctx)
}

// RefreshTokens forces a token refresh and returns the new pair. Normally
// unnecessary: requests refresh expiring sessions on their own. Useful for
// callers persisting tokens that want a fresh pair before shutdown.
func (c *Client) RefreshTokens(ctx context.Context) (types.AuthTokens, error) {
	return c.auth.Refresh(ctx)
}

// CheckToken asks the API about the current session's roles and permissions.
func (c *Client) CheckToken(ctx context.Context) (*types.CheckTokenResponse, error) {
	req, err := c.http.NewRequest(ctx, http.MethodGet, "auth/check", nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.CheckTokenResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
