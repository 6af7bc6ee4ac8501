package mangadex

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/gomanga/mangadex/internal"
	"github.com/gomanga/mangadex/pkg/types"
)

// GetAtHomeServer resolves the MangaDex@Home node serving a chapter's
// images. With forcePort443 set the node is guaranteed to listen on port
// 443, which helps behind strict firewalls at the cost of a smaller pool
// of candidate nodes.
func (c *Client) GetAtHomeServer(ctx context.Context, chapterID uuid.UUID, forcePort443 bool) (*types.AtHomeServer, error) {
	if err := internal.ValidateID("chapter", chapterID); err != nil {
		return nil, err
	}

	var query url.Values
	if forcePort443 {
		query = url.Values{"forcePort443": {"true"}}
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "at-home/server/"+chapterID.String(), query, nil)
	if err != nil {
		return nil, err
	}

	var result types.AtHomeServer
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PageURLs builds the full image URLs for a chapter on the given node.
// The chapter attributes must come from the same API as the node; page
// file names are only valid against the hash that accompanied them.
func PageURLs(server *types.AtHomeServer, chapter *types.Chapter, quality types.ImageQuality) []string {
	if server == nil || chapter == nil {
		return nil
	}

	pages := chapter.Attributes.Data
	if quality == types.QualityDataSaver {
		pages = chapter.Attributes.DataSaver
	}

	urls := make([]string, 0, len(pages))
	for _, page := range pages {
		urls = append(urls, server.BaseURL+"/"+string(quality)+"/"+chapter.Attributes.Hash+"/"+page)
	}
	return urls
}
