package types

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ChapterAttributes describes a chapter.
type ChapterAttributes struct {
	Title              string    `json:"title"`
	Volume             string    `json:"volume"`
	Chapter            string    `json:"chapter"`
	TranslatedLanguage string    `json:"translatedLanguage"`
	Hash               string    `json:"hash"`
	Data               []string  `json:"data"`
	DataSaver          []string  `json:"dataSaver"`
	Uploader           uuid.UUID `json:"uploader"`
	Version            int       `json:"version"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	PublishAt          time.Time `json:"publishAt"`
}

// Chapter is a chapter object.
type Chapter = Object[ChapterAttributes]

// ChapterResponse is the envelope for single-chapter endpoints.
type ChapterResponse = Response[ChapterAttributes]

// ChapterList is the envelope for chapter collection endpoints.
type ChapterList = PagedResponse[ChapterAttributes]

// ChapterListOptions are the filters accepted by GET /chapter.
type ChapterListOptions struct {
	Pagination

	IDs                []uuid.UUID
	Title              string
	Groups             []uuid.UUID
	Uploader           uuid.UUID
	Manga              uuid.UUID
	Volume             string
	Chapter            string
	TranslatedLanguage string
	CreatedAtSince     time.Time
	UpdatedAtSince     time.Time
	PublishAtSince     time.Time

	// Order maps field name ("volume", "chapter") to direction.
	Order map[string]OrderType
}

// Query encodes the options as GET /chapter query parameters.
func (o *ChapterListOptions) Query() url.Values {
	q := url.Values{}
	o.Pagination.encode(q)

	for _, id := range o.IDs {
		q.Add("ids[]", id.String())
	}
	if o.Title != "" {
		q.Set("title", o.Title)
	}
	for _, id := range o.Groups {
		q.Add("groups[]", id.String())
	}
	if o.Uploader != uuid.Nil {
		q.Set("uploader", o.Uploader.String())
	}
	if o.Manga != uuid.Nil {
		q.Set("manga", o.Manga.String())
	}
	if o.Volume != "" {
		q.Set("volume", o.Volume)
	}
	if o.Chapter != "" {
		q.Set("chapter", o.Chapter)
	}
	if o.TranslatedLanguage != "" {
		q.Set("translatedLanguage", o.TranslatedLanguage)
	}
	if !o.CreatedAtSince.IsZero() {
		q.Set("createdAtSince", o.CreatedAtSince.UTC().Format(timeLayout))
	}
	if !o.UpdatedAtSince.IsZero() {
		q.Set("updatedAtSince", o.UpdatedAtSince.UTC().Format(timeLayout))
	}
	if !o.PublishAtSince.IsZero() {
		q.Set("publishAtSince", o.PublishAtSince.UTC().Format(timeLayout))
	}
	for field, dir := range o.Order {
		q.Set("order["+field+"]", string(dir))
	}

	return q
}

// ChapterUpdateRequest is the body for PUT /chapter/{id}. Data and DataSaver
// carry the page file names; Version must match the current version.
type ChapterUpdateRequest struct {
	Title              string   `json:"title"`
	Volume             string   `json:"volume,omitempty"`
	Chapter            string   `json:"chapter,omitempty"`
	TranslatedLanguage string   `json:"translatedLanguage"`
	Data               []string `json:"data"`
	DataSaver          []string `json:"dataSaver"`
	Version            int      `json:"version"`
}

// FeedOptions are the filters accepted by the chapter feed endpoints
// (manga feed, followed feed, custom list feed).
type FeedOptions struct {
	Pagination

	TranslatedLanguage []string
	CreatedAtSince     time.Time
	UpdatedAtSince     time.Time
	PublishAtSince     time.Time

	// Order maps field name ("volume", "chapter") to direction.
	Order map[string]OrderType
}

// Query encodes the feed options as query parameters.
func (o *FeedOptions) Query() url.Values {
	q := url.Values{}
	o.Pagination.encode(q)

	for _, l := range o.TranslatedLanguage {
		q.Add("translatedLanguage[]", l)
	}
	if !o.CreatedAtSince.IsZero() {
		q.Set("createdAtSince", o.CreatedAtSince.UTC().Format(timeLayout))
	}
	if !o.UpdatedAtSince.IsZero() {
		q.Set("updatedAtSince", o.UpdatedAtSince.UTC().Format(timeLayout))
	}
	if !o.PublishAtSince.IsZero() {
		q.Set("publishAtSince", o.PublishAtSince.UTC().Format(timeLayout))
	}
	for field, dir := range o.Order {
		q.Set("order["+field+"]", string(dir))
	}

	return q
}
