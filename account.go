package mangadex

import (
	"context"
	"net/http"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// CreateAccount registers a new account. The email address receives an
// activation code that must be passed to ActivateAccount before the account
// can log in.
func (c *Client) CreateAccount(ctx context.Context, username, password, email string) (*types.UserResponse, error) {
	if err := internal.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := internal.ValidatePassword(password); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, &pkgerrs.ValidationError{Field: "email", Message: "email must not be empty"}
	}

	body := &types.CreateAccountRequest{Username: username, Password: password, Email: email}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "account/create", nil, body)
	if err != nil {
		return nil, err
	}

	var result types.UserResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ActivateAccount activates a freshly created account using the code sent
// by email.
func (c *Client) ActivateAccount(ctx context.Context, code string) error {
	if code == "" {
		return &pkgerrs.ValidationError{Field: "code", Message: "activation code must not be empty"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "account/activate/"+code, nil, nil)
	if err != nil {
		return err
	}
	return c.http.Do(req, &types.ResultResponse{})
}

// ResendActivationCode requests a new activation code for the given email.
func (c *Client) ResendActivationCode(ctx context.Context, email string) error {
	if email == "" {
		return &pkgerrs.ValidationError{Field: "email", Message: "email must not be empty"}
	}

	body := &types.RecoverAccountRequest{Email: email}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "account/activate/resend", nil, body)
	if err != nil {
		return err
	}
	return c.http.Do(req, &types.ResultResponse{})
}

// RecoverAccount starts an account recovery. The email address receives a
// code to pass to CompleteAccountRecovery.
func (c *Client) RecoverAccount(ctx context.Context, email string) error {
	if email == "" {
		return &pkgerrs.ValidationError{Field: "email", Message: "email must not be empty"}
	}

	body := &types.RecoverAccountRequest{Email: email}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "account/recover", nil, body)
	if err != nil {
		return err
	}
	return c.http.Do(req, &types.ResultResponse{})
}

// CompleteAccountRecovery finishes a recovery started with RecoverAccount,
// setting a new password.
func (c *Client) CompleteAccountRecovery(ctx context.Context, code, newPassword string) error {
	if code == "" {
		return &pkgerrs.ValidationError{Field: "code", Message: "recovery code must not be empty"}
	}
	if err := internal.ValidatePassword(newPassword); err != nil {
		return err
	}

	body := &types.CompleteRecoveryRequest{NewPassword: newPassword}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "account/recover/"+code, nil, body)
	if err != nil {
		return err
	}
	return c.http.Do(req, &types.ResultResponse{})
}
