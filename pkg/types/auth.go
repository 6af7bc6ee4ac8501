package types

// AuthTokens is the session/refresh pair returned on login and refresh.
// The session token lives for 15 minutes; the refresh token for a month.
type AuthTokens struct {
	Session string `json:"session"`
	Refresh string `json:"refresh"`
}

// LoginRequest is the body for POST /auth/login.
// Username must be 1-64 characters, password 8-1024.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the response for POST /auth/login.
type LoginResponse struct {
	Result string     `json:"result"`
	Token  AuthTokens `json:"token"`
}

// RefreshRequest is the body for POST /auth/refresh.
type RefreshRequest struct {
	Token string `json:"token"`
}

// RefreshResponse is the response for POST /auth/refresh.
type RefreshResponse struct {
	Result  string     `json:"result"`
	Token   AuthTokens `json:"token"`
	Message string     `json:"message,omitempty"`
}

// CheckTokenResponse is the response for GET /auth/check.
type CheckTokenResponse struct {
	Result          string   `json:"result"`
	IsAuthenticated bool     `json:"isAuthenticated"`
	Roles           []string `json:"roles"`
	Permissions     []string `json:"permissions"`
}
