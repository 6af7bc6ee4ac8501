package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// CreateCustomList creates a custom list for the logged user, optionally
// seeded with manga.
func (c *Client) CreateCustomList(ctx context.Context, request *types.CustomListRequest) (*types.CustomListResponse, error) {
	if request == nil || request.Name == "" {
		return nil, &pkgerrs.ValidationError{Field: "name", Message: "list name must not be empty"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "list", nil, request)
	if err != nil {
		return nil, err
	}

	var result types.CustomListResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateCustomList replaces a custom list's name, visibility, and entries.
// The request version must match the list's current version.
func (c *Client) UpdateCustomList(ctx context.Context, id uuid.UUID, request *types.CustomListRequest) (*types.CustomListResponse, error) {
	if err := internal.ValidateID("list", id); err != nil {
		return nil, err
	}
	if request == nil || request.Name == "" {
		return nil, &pkgerrs.ValidationError{Field: "name", Message: "list name must not be empty"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPut, "list/"+id.String(), nil, request)
	if err != nil {
		return nil, err
	}

	var result types.CustomListResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCustomList deletes one of the logged user's custom lists.
func (c *Client) DeleteCustomList(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("list", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "list/"+id.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// GetCustomList retrieves a custom list by id. Private lists require the
// owner's session.
func (c *Client) GetCustomList(ctx context.Context, id uuid.UUID) (*types.CustomListResponse, error) {
	if err := internal.ValidateID("list", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "list/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.CustomListResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMyCustomLists retrieves the logged user's custom lists.
func (c *Client) ListMyCustomLists(ctx context.Context, pagination types.Pagination) (*types.CustomListList, error) {
	if err := internal.ValidateLimit(pagination.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "user/list", pagination.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.CustomListList
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddMangaToCustomList adds a manga to one of the logged user's lists.
func (c *Client) AddMangaToCustomList(ctx context.Context, mangaID, listID uuid.UUID) error {
	if err := internal.ValidateID("manga", mangaID); err != nil {
		return err
	}
	if err := internal.ValidateID("list", listID); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "manga/"+mangaID.String()+"/list/"+listID.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// RemoveMangaFromCustomList removes a manga from one of the logged user's lists.
func (c *Client) RemoveMangaFromCustomList(ctx context.Context, mangaID, listID uuid.UUID) error {
	if err := internal.ValidateID("manga", mangaID); err != nil {
		return err
	}
	if err := internal.ValidateID("list", listID); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "manga/"+mangaID.String()+"/list/"+listID.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}
