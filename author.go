package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	"github.com/gomanga/mangadex/pkg/types"
)

// ListAuthors searches the author catalog.
func (c *Client) ListAuthors(ctx context.Context, options *types.AuthorListOptions) (*types.AuthorList, error) {
	if options == nil {
		options = &types.AuthorListOptions{}
	}
	if err := internal.ValidateLimit(options.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "author", options.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.AuthorList
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAuthor retrieves a single author by id.
func (c *Client) GetAuthor(ctx context.Context, id uuid.UUID) (*types.AuthorResponse, error) {
	if err := internal.ValidateID("author", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "author/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.AuthorResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
