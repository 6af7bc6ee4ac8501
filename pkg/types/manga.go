package types

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// timeLayout is the timestamp format the API accepts in query parameters.
const timeLayout = "2006-01-02T15:04:05"

// MangaStatus is the publication status of a manga.
type MangaStatus string

const (
	StatusOngoing   MangaStatus = "ongoing"
	StatusCompleted MangaStatus = "completed"
	StatusHiatus    MangaStatus = "hiatus"
	StatusCancelled MangaStatus = "cancelled"
)

// Demographic is the publication demographic of a manga.
type Demographic string

const (
	DemographicShounen Demographic = "shounen"
	DemographicShoujo  Demographic = "shoujo"
	DemographicJosei   Demographic = "josei"
	DemographicSeinen  Demographic = "seinen"
	DemographicNone    Demographic = "none"
)

// ContentRating is the content rating of a manga.
type ContentRating string

const (
	RatingSafe         ContentRating = "safe"
	RatingSuggestive   ContentRating = "suggestive"
	RatingErotica      ContentRating = "erotica"
	RatingPornographic ContentRating = "pornographic"
)

// TagMode controls how multiple tag filters combine in a search.
type TagMode string

const (
	TagModeAnd TagMode = "AND"
	TagModeOr  TagMode = "OR"
)

// ReadingStatus is the logged user's reading status for a manga.
type ReadingStatus string

const (
	ReadingStatusReading    ReadingStatus = "reading"
	ReadingStatusOnHold     ReadingStatus = "on_hold"
	ReadingStatusPlanToRead ReadingStatus = "plan_to_read"
	ReadingStatusDropped    ReadingStatus = "dropped"
	ReadingStatusReReading  ReadingStatus = "re_reading"
	ReadingStatusCompleted  ReadingStatus = "completed"
)

// TagAttributes describes a manga tag.
type TagAttributes struct {
	Name    LocalizedString `json:"name"`
	Group   string          `json:"group"`
	Version int             `json:"version"`
}

// Tag is a manga tag object.
type Tag = Object[TagAttributes]

// TagList is the response for GET /manga/tag.
type TagList = []Response[TagAttributes]

// Links holds external tracker and store links for a manga. Keys follow the
// MangaDex link codes (al = AniList, mal = MyAnimeList, ...).
type Links map[string]string

// MangaAttributes describes a manga.
type MangaAttributes struct {
	Title                  LocalizedString   `json:"title"`
	AltTitles              []LocalizedString `json:"altTitles"`
	Description            LocalizedString   `json:"description"`
	Links                  Links             `json:"links"`
	OriginalLanguage       string            `json:"originalLanguage"`
	LastVolume             string            `json:"lastVolume"`
	LastChapter            string            `json:"lastChapter"`
	PublicationDemographic Demographic       `json:"publicationDemographic"`
	Status                 MangaStatus       `json:"status"`
	Year                   int               `json:"year"`
	ContentRating          ContentRating     `json:"contentRating"`
	Tags                   []Tag             `json:"tags"`
	Version                int               `json:"version"`
	CreatedAt              time.Time         `json:"createdAt"`
	UpdatedAt              time.Time         `json:"updatedAt"`
}

// Manga is a manga object.
type Manga = Object[MangaAttributes]

// MangaResponse is the envelope for single-manga endpoints.
type MangaResponse = Response[MangaAttributes]

// MangaList is the envelope for manga collection endpoints.
type MangaList = PagedResponse[MangaAttributes]

// MangaSearchOptions are the filters accepted by GET /manga.
// The zero value searches everything with server-default pagination.
type MangaSearchOptions struct {
	Pagination

	Title                  string
	Authors                []uuid.UUID
	Artists                []uuid.UUID
	Year                   int
	IncludedTags           []uuid.UUID
	IncludedTagsMode       TagMode
	ExcludedTags           []uuid.UUID
	ExcludedTagsMode       TagMode
	Status                 []MangaStatus
	OriginalLanguage       []string
	PublicationDemographic []Demographic
	IDs                    []uuid.UUID
	ContentRating          ContentRating
	CreatedAtSince         time.Time
	UpdatedAtSince         time.Time

	// Order maps field name ("createdAt", "updatedAt") to direction.
	Order map[string]OrderType
}

// Query encodes the search options as GET /manga query parameters.
func (o *MangaSearchOptions) Query() url.Values {
	q := url.Values{}
	o.Pagination.encode(q)

	if o.Title != "" {
		q.Set("title", o.Title)
	}
	for _, id := range o.Authors {
		q.Add("authors[]", id.String())
	}
	for _, id := range o.Artists {
		q.Add("artists[]", id.String())
	}
	if o.Year > 0 {
		q.Set("year", strconv.Itoa(o.Year))
	}
	for _, id := range o.IncludedTags {
		q.Add("includedTags[]", id.String())
	}
	if o.IncludedTagsMode != "" {
		q.Set("includedTagsMode", string(o.IncludedTagsMode))
	}
	for _, id := range o.ExcludedTags {
		q.Add("excludedTags[]", id.String())
	}
	if o.ExcludedTagsMode != "" {
		q.Set("excludedTagsMode", string(o.ExcludedTagsMode))
	}
	for _, s := range o.Status {
		q.Add("status[]", string(s))
	}
	for _, l := range o.OriginalLanguage {
		q.Add("originalLanguage[]", l)
	}
	for _, d := range o.PublicationDemographic {
		q.Add("publicationDemographic[]", string(d))
	}
	for _, id := range o.IDs {
		q.Add("ids[]", id.String())
	}
	if o.ContentRating != "" {
		q.Set("contentRating", string(o.ContentRating))
	}
	if !o.CreatedAtSince.IsZero() {
		q.Set("createdAtSince", o.CreatedAtSince.UTC().Format(timeLayout))
	}
	if !o.UpdatedAtSince.IsZero() {
		q.Set("updatedAtSince", o.UpdatedAtSince.UTC().Format(timeLayout))
	}
	for field, dir := range o.Order {
		q.Set("order["+field+"]", string(dir))
	}

	return q
}

// MangaRequest is the body for POST /manga and PUT /manga/{id}. Only Title
// and Version are required; Version must match the current version on
// updates.
type MangaRequest struct {
	Title                  LocalizedString   `json:"title"`
	AltTitles              []LocalizedString `json:"altTitles,omitempty"`
	Description            LocalizedString   `json:"description,omitempty"`
	Authors                []uuid.UUID       `json:"authors,omitempty"`
	Artists                []uuid.UUID       `json:"artists,omitempty"`
	Links                  Links             `json:"links,omitempty"`
	OriginalLanguage       string            `json:"originalLanguage,omitempty"`
	LastVolume             string            `json:"lastVolume,omitempty"`
	LastChapter            string            `json:"lastChapter,omitempty"`
	PublicationDemographic Demographic       `json:"publicationDemographic,omitempty"`
	Status                 MangaStatus       `json:"status,omitempty"`
	Year                   int               `json:"year,omitempty"`
	ContentRating          ContentRating     `json:"contentRating,omitempty"`
	ModNotes               string            `json:"modNotes,omitempty"`
	Version                int               `json:"version"`
}

// ReadMarkersResponse is the response for the manga read-marker endpoints,
// a flat list of chapter ids marked as read.
type ReadMarkersResponse struct {
	Result string      `json:"result"`
	Data   []uuid.UUID `json:"data"`
}

// ReadingStatusResponse is the response for GET /manga/{id}/status.
type ReadingStatusResponse struct {
	Result string        `json:"result"`
	Status ReadingStatus `json:"status"`
}

// ReadingStatusesResponse is the response for GET /manga/status.
type ReadingStatusesResponse struct {
	Result   string                      `json:"result"`
	Statuses map[uuid.UUID]ReadingStatus `json:"statuses"`
}
