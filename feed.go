package mangadex

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	"github.com/gomanga/mangadex/pkg/types"
)

// GetMangaFeed retrieves the chapter feed of a single manga.
func (c *Client) GetMangaFeed(ctx context.Context, id uuid.UUID, options *types.FeedOptions) (*types.ChapterList, error) {
	if err := internal.ValidateID("manga", id); err != nil {
		return nil, err
	}
	return c.chapterFeed(ctx, "manga/"+id.String()+"/feed", options, false)
}

// GetFollowedMangaFeed retrieves the chapter feed across all manga the
// logged user follows.
func (c *Client) GetFollowedMangaFeed(ctx context.Context, options *types.FeedOptions) (*types.ChapterList, error) {
	return c.chapterFeed(ctx, "user/follows/manga/feed", options, true)
}

// GetCustomListFeed retrieves the chapter feed of a custom list.
func (c *Client) GetCustomListFeed(ctx context.Context, listID uuid.UUID, options *types.FeedOptions) (*types.ChapterList, error) {
	if err := internal.ValidateID("list", listID); err != nil {
		return nil, err
	}
	return c.chapterFeed(ctx, "list/"+listID.String()+"/feed", options, false)
}

func (c *Client) chapterFeed(ctx context.Context, path string, options *types.FeedOptions, requireAuth bool) (*types.ChapterList, error) {
	if options == nil {
		options = &types.FeedOptions{}
	}
	if err := internal.ValidateLimit(options.Limit); err != nil {
		return nil, err
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, path, options.Query(), nil)
	if err != nil {
		return nil, err
	}

	var result types.ChapterList
	if requireAuth {
		err = c.http.DoAuth(req, &result)
	} else {
		err = c.http.Do(req, &result)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
