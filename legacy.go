package mangadex

import (
	"context"
	"net/http"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// MapLegacyIDs maps legacy numeric ids of the given type to their v5 UUIDs.
// The response carries one entry per id that could be resolved; ids without
// a mapping are silently absent.
func (c *Client) MapLegacyIDs(ctx context.Context, mappingType types.MappingType, ids []int) ([]types.MappingResponse, error) {
	if len(ids) == 0 {
		return nil, &pkgerrs.ValidationError{Field: "ids", Message: "at least one id is required"}
	}

	body := &types.MappingRequest{Type: mappingType, IDs: ids}
	req, err := c.http.NewRequest(ctx, http.MethodPost, "legacy/mapping", nil, body)
	if err != nil {
		return nil, err
	}

	var result []types.MappingResponse
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return result, nil
}
