package mangadex

import (
	"context"
	"net/http"

	"github.com/gomanga/mangadex/internal"
	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// ListReportReasons retrieves the selectable report reasons for a resource
// category.
func (c *Client) ListReportReasons(ctx context.Context, category types.ReportCategory) (*types.ReportReasonList, error) {
	if category == "" {
		return nil, &pkgerrs.ValidationError{Field: "category", Message: "report category is required"}
	}

	req, err := c.http.NewRequest(ctx, http.MethodGet, "reports/reasons/"+string(category), nil, nil)
	if err != nil {
		return nil, err
	}

	var result types.ReportReasonList
	if err := c.http.Do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateReport files a report against a resource. Details are required when
// the chosen reason demands them; the server rejects the report otherwise.
func (c *Client) CreateReport(ctx context.Context, request *types.CreateReportRequest) error {
	if request == nil || request.Category == "" || request.Reason == "" {
		return &pkgerrs.ValidationError{Field: "request", Message: "category and reason are required"}
	}
	if err := internal.ValidateID("objectId", request.ObjectID); err != nil {
		return err
	}

	req, err := c.http.NewRequest(ctx, http.MethodPost, "report", nil, request)
	if err != nil {
		return err
	}
	return c.http.DoAuth(req, nil)
}
