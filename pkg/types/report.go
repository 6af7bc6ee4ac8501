package types

import "github.com/google/uuid"

// ReportCategory is the kind of resource a report concerns.
type ReportCategory string

const (
	ReportCategoryManga           ReportCategory = "manga"
	ReportCategoryChapter         ReportCategory = "chapter"
	ReportCategoryScanlationGroup ReportCategory = "scanlation_group"
	ReportCategoryUser            ReportCategory = "user"
)

// ReportReasonAttributes describes one selectable report reason.
type ReportReasonAttributes struct {
	Reason          LocalizedString `json:"reason"`
	DetailsRequired bool            `json:"detailsRequired"`
	Category        ReportCategory  `json:"category"`
	Version         int             `json:"version"`
}

// ReportReason is a report reason object.
type ReportReason = Object[ReportReasonAttributes]

// ReportReasonList is the response for GET /reports/reasons/{category}.
type ReportReasonList = PagedResponse[ReportReasonAttributes]

// CreateReportRequest is the body for POST /report. ObjectID identifies the
// resource being reported; Details is required when the chosen reason says
// so.
type CreateReportRequest struct {
	Category ReportCategory `json:"category"`
	Reason   string         `json:"reason"`
	ObjectID uuid.UUID      `json:"objectId"`
	Details  string         `json:"details"`
}
