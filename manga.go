package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// SearchManga searches the manga catalog. A nil options value searches
// everything with server-default pagination.
func (c *Client) SearchManga(ctx context.Context, options *types.MangaSearchOptions) (*types.MangaList, error) {
	if options == nil {
		options = &types.MangaSearchOptions{}
	}
	if err := internal.ValidateLimit(options.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga", options.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.MangaList
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetManga retrieves a single manga by id.
func (c *Client) GetManga(ctx context.Context, id uuid.UUID) (*types.MangaResponse, error) {
	if err := internal.ValidateID("manga", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga/"+id.String(), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.MangaResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMangaBatch retrieves several manga in parallel, preserving input order.
// The first error cancels the remaining fetches.
func (c *Client) GetMangaBatch(ctx context.Context, ids []uuid.UUID) ([]*types.MangaResponse, error) {
	results := make([]*types.MangaResponse, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			resp, err := c.GetManga(ctx, id)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CreateManga submits a new manga entry. Title is required; everything else
// in the request is optional.
func (c *Client) CreateManga(ctx context.Context, request *types.MangaRequest) (*types.MangaResponse, error) {
	if request == nil || len(request.Title) == 0 {
		return nil, &pkgerrs.ValidationError{Field: "title", Message: "at least one localized title is required"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "manga", nil, request)
	if err != nil {
		return nil, err
	}

	var result types.MangaResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateManga replaces a manga's attributes. The request version must match
// the manga's current version.
func (c *Client) UpdateManga(ctx context.Context, id uuid.UUID, request *types.MangaRequest) (*types.MangaResponse, error) {
	if err := internal.ValidateID("manga", id); err != nil {
		return nil, err
	}
	if request == nil || len(request.Title) == 0 {
		return nil, &pkgerrs.ValidationError{Field: "title", Message: "at least one localized title is required"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodPut, "manga/"+id.String(), nil, request)
	if err != nil {
		return nil, err
	}

	var result types.MangaResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteManga deletes a manga entry.
func (c *Client) DeleteManga(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("manga", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "manga/"+id.String(), nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// RandomManga retrieves a random manga.
func (c *Client) RandomManga(ctx context.Context) (*types.MangaResponse, error) {
	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga/random", nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.MangaResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTags retrieves the global tag list.
func (c *Client) ListTags(ctx context.Context) (types.TagList, error) {
	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga/tag", nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.TagList
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FollowManga adds the manga to the logged user's follows.
func (c *Client) FollowManga(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("manga", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "manga/"+id.String()+"/follow", nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// UnfollowManga removes the manga from the logged user's follows.
func (c *Client) UnfollowManga(ctx context.Context, id uuid.UUID) error {
	if err := internal.ValidateID("manga", id); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodDelete, "manga/"+id.String()+"/follow", nil, nil)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// ListFollowedManga retrieves the logged user's followed manga.
func (c *Client) ListFollowedManga(ctx context.Context, pagination types.Pagination) (*types.MangaList, error) {
	if err := internal.ValidateLimit(pagination.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "user/follows/manga", pagination.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.MangaList
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMangaReadMarkers retrieves the chapter ids marked as read for a manga.
func (c *Client) GetMangaReadMarkers(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	if err := internal.ValidateID("manga", id); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga/"+id.String()+"/read", nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.ReadMarkersResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetBatchMangaReadMarkers retrieves read chapter ids across several manga.
func (c *Client) GetBatchMangaReadMarkers(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	q := make(map[string][]string, 1)
	for _, id := range ids {
		q["ids[]"] = append(q["ids[]"], id.String())
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga/read", q, nil)
	if err != nil {
		return nil, err
	}

	var result types.ReadMarkersResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetMangaReadingStatus retrieves the logged user's reading status for a manga.
func (c *Client) GetMangaReadingStatus(ctx context.Context, id uuid.UUID) (types.ReadingStatus, error) {
	if err := internal.ValidateID("manga", id); err != nil {
		return "", err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga/"+id.String()+"/status", nil, nil)
	if err != nil {
		return "", err
	}

	var result types.ReadingStatusResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return "", err
	}
	return result.Status, nil
}

// UpdateMangaReadingStatus sets the logged user's reading status for a manga.
// An empty status removes it.
func (c *Client) UpdateMangaReadingStatus(ctx context.Context, id uuid.UUID, status types.ReadingStatus) error {
	if err := internal.ValidateID("manga", id); err != nil {
		return err
	}

	body := struct {
		Status types.ReadingStatus `json:"status"`
	}{Status: status}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "manga/"+id.String()+"/status", nil, body)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}

// GetAllReadingStatuses retrieves the logged user's reading status for every
// followed manga, optionally filtered to one status.
func (c *Client) GetAllReadingStatuses(ctx context.Context, filter types.ReadingStatus) (map[uuid.UUID]types.ReadingStatus, error) {
	var q map[string][]string
	if filter != "" {
		q = map[string][]string{"status": {string(filter)}}
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "manga/status", q, nil)
	if err != nil {
		return nil, err
	}

	var result types.ReadingStatusesResponse
	if err := c.http.DoAuth(req, &result); err != nil {
		return nil, err
	}
	return result.Statuses, nil
}
