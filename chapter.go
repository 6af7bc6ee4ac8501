package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// ListChapters searches the chapter catalog. A nil options value lists
// everything with server-default pagination.
func (c *Client) ListChapters(ctx context.Context, options *types.ChapterListOptions) (*types.ChapterList, error) {
	if options == nil {
		options = &types.ChapterListOptions{}
	}
	if err := internal.ValidateLimit(options.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "chapter", options.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.ChapterList
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetChapter retrieves a single chapter by id.
func (c *Client) GetChapter(ctx context.Context, id uuid.UUID) (*types.ChapterResponse, error) {
	if err := internal.ValidateID("chapter", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "chapter/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.ChapterResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateChapter replaces a chapter's metadata and page lists. The request
// version must match the chapter's current version.
func (c *Client) UpdateChapter(ctx context.Context, id uuid.UUID, request *types.ChapterUpdateRequest) (*types.ChapterResponse, error) {
	if err := internal.ValidateID("chapter", id); err != nil {
		return nil, err
	}
	if request == nil {
		return nil, &pkgerrs.ValidationError{Field: "request", Message: "update request is required"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPut, "chapter/"+id.String(), nil, request)
	if err != nil {
		return nil, err
	}

	var result types.ChapterResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteChapter deletes a chapter.
func (c *Client) DeleteChapter(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("chapter", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "chapter/"+id.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// MarkChapterRead marks the chapter as read for the logged user.
func (c *Client) MarkChapterRead(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("chapter", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "chapter/"+id.String()+"/read", nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// MarkChapterUnread removes the read marker for the logged user.
func (c *Client) MarkChapterUnread(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("chapter", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "chapter/"+id.String()+"/read", nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}
