package mangadex

import (
	"context"
	"net/http"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// SolveCaptcha submits a solved captcha challenge. A session token is sent
// along when one is available so the solve attaches to the account rather
// than the client IP.
func (c *Client) SolveCaptcha(ctx context.Context, challenge string) error {
	if challenge == "" {
		return &pkgerrs.ValidationError{Field: "captchaChallenge", Message: "challenge must not be empty"}
	}

	body := &types.CaptchaRequest{CaptchaChallenge: challenge}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "captcha/solve", nil, body)
	if err != nil {
		return err
	}
	return c.http.Do(req, &types.ResultResponse{})
}
