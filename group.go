package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// ListGroups searches the scanlation group catalog.
func (c *Client) ListGroups(ctx context.Context, options *types.GroupListOptions) (*types.ScanlationGroupList, error) {
	if options == nil {
		options = &types.GroupListOptions{}
	}
	if err := internal.ValidateLimit(options.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "group", options.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.ScanlationGroupList
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetGroup retrieves a single scanlation group by id.
func (c *Client) GetGroup(ctx context.Context, id uuid.UUID) (*types.ScanlationGroupResponse, error) {
	if err := internal.ValidateID("group", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "group/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.ScanlationGroupResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateGroup creates a scanlation group led by the given user.
func (c *Client) CreateGroup(ctx context.Context, request *types.GroupRequest) (*types.ScanlationGroupResponse, error) {
	if request == nil || request.Name == "" {
		return nil, &pkgerrs.ValidationError{Field: "name", Message: "group name must not be empty"}
	}
	if err := internal.ValidateID("leader", request.Leader); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "group", nil, request)
	if err != nil {
		return nil, err
	}

	var result types.ScanlationGroupResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateGroup replaces a group's name, leader, and member list. The request
// version must match the group's current version.
func (c *Client) UpdateGroup(ctx context.Context, id uuid.UUID, request *types.GroupRequest) (*types.ScanlationGroupResponse, error) {
	if err := internal.ValidateID("group", id); err != nil {
		return nil, err
	}
	if request == nil || request.Name == "" {
		return nil, &pkgerrs.ValidationError{Field: "name", Message: "group name must not be empty"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPut, "group/"+id.String(), nil, request)
	if err != nil {
		return nil, err
	}

	var result types.ScanlationGroupResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteGroup deletes a scanlation group.
func (c *Client) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("group", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "group/"+id.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// FollowGroup adds the group to the logged user's follows.
func (c *Client) FollowGroup(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("group", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "group/"+id.String()+"/follow", nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// UnfollowGroup removes the group from the logged user's follows.
func (c *Client) UnfollowGroup(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("group", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "group/"+id.String()+"/follow", nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// ListFollowedGroups retrieves the logged user's followed scanlation groups.
func (c *Client) ListFollowedGroups(ctx context.Context, pagination types.Pagination) (*types.ScanlationGroupList, error) {
	if err := internal.ValidateLimit(pagination.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "user/follows/group", pagination.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.ScanlationGroupList
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
