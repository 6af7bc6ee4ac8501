package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// ListUsers searches users by id or username. Requires a session.
func (c *Client) ListUsers(ctx context.Context, options *types.UserListOptions) (*types.UserList, error) {
	if options == nil {
		options = &types.UserListOptions{}
	}
	if err := internal.ValidateLimit(options.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "user", options.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.UserList
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser retrieves a user by id.
func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*types.UserResponse, error) {
	if err := internal.ValidateID("user", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "user/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.UserResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me retrieves the logged user.
func (c *Client) Me(ctx context.Context) (*types.UserResponse, error) {
	req, err := c.http.NewRequest(ctx, http.MethodGet, "user/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.UserResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteUser requests deletion of a user account. The deletion must be
// confirmed with the code sent by email, via ApproveUserDeletion.
func (c *Client) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("user", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "user/"+id.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// ApproveUserDeletion confirms a pending account deletion with the code
// sent by email.
func (c *Client) ApproveUserDeletion(ctx context.Context, code uuid.UUID) error {
	if err := internal.ValidateID("code", code); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "user/delete/"+code.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// UpdatePassword changes the logged user's password.
func (c *Client) UpdatePassword(ctx context.Context, oldPassword, newPassword string) error {
	if err := internal.ValidatePassword(newPassword); err != nil {
		return err
	}
	if oldPassword == "" {
		return &pkgerrs.ValidationError{Field: "oldPassword", Message: "current password is required"}
	}

	body := &types.UpdatePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "user/password", nil, body)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// UpdateEmail changes the logged user's email address.
func (c *Client) UpdateEmail(ctx context.Context, email string) error {
	if email == "" {
		return &pkgerrs.ValidationError{Field: "email", Message: "email must not be empty"}
	}

	body := &types.UpdateEmailRequest{Email: email}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "user/email", nil, body)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// ListFollowedUsers retrieves the logged user's followed users.
func (c *Client) ListFollowedUsers(ctx context.Context, pagination types.Pagination) (*types.UserList, error) {
	if err := internal.ValidateLimit(pagination.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "user/follows/user", pagination.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.UserList
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
