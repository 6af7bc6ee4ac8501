package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// ListCovers searches cover art uploads.
func (c *Client) ListCovers(ctx context.Context, options *types.CoverListOptions) (*types.CoverList, error) {
	if options == nil {
		options = &types.CoverListOptions{}
	}
	if err := internal.ValidateLimit(options.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "cover", options.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.CoverList
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCover retrieves a single cover by id.
func (c *Client) GetCover(ctx context.Context, id uuid.UUID) (*types.CoverResponse, error) {
	if err := internal.ValidateID("cover", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "cover/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.CoverResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EditCover updates a cover's volume and description. The request version
// must match the cover's current version.
func (c *Client) EditCover(ctx context.Context, id uuid.UUID, request *types.CoverEditRequest) (*types.CoverResponse, error) {
	if err := internal.ValidateID("cover", id); err != nil {
		return nil, err
	}
	if request == nil {
		return nil, &pkgerrs.ValidationError{Field: "request", Message: "edit request is required"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPut, "cover/"+id.String(), nil, request)
	if err != nil {
		return nil, err
	}

	var result types.CoverResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCover deletes a cover upload.
func (c *Client) DeleteCover(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("cover", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "cover/"+id.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}
