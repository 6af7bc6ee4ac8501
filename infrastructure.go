package mangadex

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gomanga/mangadex/pkg/errors"
)

// Ping checks connectivity to the API server. The endpoint answers with a
// literal "pong" body rather than the JSON envelope.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.http.NewRequest(ctx, http.MethodGet, "ping", nil, nil)
	if err != nil {
		return err
	}

	body, err := c.http.DoRaw(req)
	if err != nil {
		return err
	}

	if string(body) != "pong" {
		return &errors.DecodeError{Operation: "GET /ping", Err: fmt.Errorf("unexpected response %q", string(body))}
	}
	return nil
}
