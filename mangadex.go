package mangadex

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/gomanga/mangadex/internal"
	"github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

const (
	// DefaultBaseURL is the default MangaDex API base URL.
	DefaultBaseURL = "https://api.mangadex.org/"
	// DefaultUserAgent is the default user agent string.
	DefaultUserAgent = "go-mangadex/0.1"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Config holds the configuration for the MangaDex client. The zero value is
// usable: all fields are optional and fall back to the defaults above.
//
// No credentials are configured here. Public endpoints need no session at
// all; for the rest, call Login (or resume a persisted pair with SetTokens)
// after constructing the client.
type Config struct {
	// BaseURL for the MangaDex API.
	// Defaults to DefaultBaseURL if not specified.
	BaseURL string

	// UserAgent string identifying your application.
	UserAgent string

	// HTTPClient to use for requests.
	// Defaults to a client with DefaultTimeout if not specified.
	HTTPClient *http.Client

	// RateLimit tunes client-side throttling. Defaults respect the
	// documented global limit of 5 requests per second.
	RateLimit *RateLimitConfig

	// Logger for structured diagnostics.
	// Optional. If provided, debug information is logged during API calls.
	Logger *zerolog.Logger
}

// RateLimitConfig controls how requests are throttled before reaching the API.
type RateLimitConfig struct {
	// RequestsPerSecond caps steady-state throughput. Defaults to 5 if zero.
	RequestsPerSecond float64
	// Burst allows short spikes above the steady-state rate. Defaults to 5.
	Burst int

	// WindowLimit and Window configure an additional fixed-window budget:
	// at most WindowLimit dispatched calls per Window. Zero disables it.
	WindowLimit int
	Window      time.Duration

	// NonBlocking makes an exhausted window budget fail fast with a
	// RateLimitError instead of blocking until the window resets.
	NonBlocking bool
}

// Client is the MangaDex API client. Construct it with NewClient; the zero
// value is not usable. All methods are safe for concurrent use.
type Client struct {
	http   *internal.Client
	auth   *internal.Authenticator
	store  *internal.TokenStore
	config *Config
}

// NewClient creates a new MangaDex client with the provided configuration.
// A nil config uses all defaults. No network traffic happens here; the
// first request (or Login) establishes connectivity.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		config = &Config{}
	}

	// Set defaults
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	store := internal.NewTokenStore()

	auth, err := internal.NewAuthenticator(config.HTTPClient, config.BaseURL, config.UserAgent, store, logger)
	if err != nil {
		return nil, err
	}

	var rateCfg *internal.RateLimitConfig
	if config.RateLimit != nil {
		rateCfg = &internal.RateLimitConfig{
			RequestsPerSecond: config.RateLimit.RequestsPerSecond,
			Burst:             config.RateLimit.Burst,
			WindowLimit:       config.RateLimit.WindowLimit,
			Window:            config.RateLimit.Window,
			NonBlocking:       config.RateLimit.NonBlocking,
		}
	}

	httpClient, err := internal.NewClient(config.HTTPClient, auth, config.BaseURL, config.UserAgent, rateCfg, logger)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   httpClient,
		auth:   auth,
		store:  store,
		config: config,
	}, nil
}

// Tokens returns the current session/refresh pair, if a session is
// established. Callers that persist sessions across restarts read them here.
func (c *Client) Tokens() (types.AuthTokens, bool) {
	creds, ok := c.store.Get()
	if !ok {
		return types.AuthTokens{}, false
	}
	return types.AuthTokens{Session: creds.Session, Refresh: creds.Refresh}, true
}

// SetTokens resumes a previously persisted session without a login exchange.
// The pair is trusted as-is; an expired session simply triggers a refresh on
// first use.
func (c *Client) SetTokens(tokens types.AuthTokens) error {
	if tokens.Session == "" || tokens.Refresh == "" {
		return &errors.ValidationError{Field: "tokens", Message: "session and refresh tokens are required"}
	}
	c.store.Set(internal.Credentials{Session: tokens.Session, Refresh: tokens.Refresh})
	return nil
}

// ClearTokens drops the current session without calling the API.
func (c *Client) ClearTokens() {
	c.store.Clear()
}
