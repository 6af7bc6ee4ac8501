// Package types defines the request and response shapes for the MangaDex API.
//
// Single-entity responses arrive as {"result","data":{"id","type","attributes"},"relationships"}
// and collections as {"results":[...],"limit","offset","total"}. Both envelopes are
// modeled once, generically, and aliased per resource.
package types

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// ResultOK is the value of the "result" field on successful responses.
const ResultOK = "ok"

// ResourceType identifies the kind of an API object.
type ResourceType string

const (
	ResourceManga           ResourceType = "manga"
	ResourceChapter         ResourceType = "chapter"
	ResourceCoverArt        ResourceType = "cover_art"
	ResourceAuthor          ResourceType = "author"
	ResourceArtist          ResourceType = "artist"
	ResourceScanlationGroup ResourceType = "scanlation_group"
	ResourceTag             ResourceType = "tag"
	ResourceUser            ResourceType = "user"
	ResourceCustomList      ResourceType = "custom_list"
	ResourceMappingID       ResourceType = "mapping_id"
)

// LocalizedString maps two-letter language codes to translated strings.
type LocalizedString map[string]string

// Relationship links an API object to another resource.
type Relationship struct {
	ID   uuid.UUID    `json:"id"`
	Type ResourceType `json:"type"`
}

// Object is the {"id","type","attributes"} core of every API entity.
type Object[A any] struct {
	ID         uuid.UUID    `json:"id"`
	Type       ResourceType `json:"type"`
	Attributes A            `json:"attributes"`
}

// Response is the envelope for single-entity endpoints.
type Response[A any] struct {
	Result        string         `json:"result"`
	Data          Object[A]      `json:"data"`
	Relationships []Relationship `json:"relationships"`
}

// PagedResponse is the envelope for collection endpoints.
type PagedResponse[A any] struct {
	Results []Response[A] `json:"results"`
	Limit   int           `json:"limit"`
	Offset  int           `json:"offset"`
	Total   int           `json:"total"`
}

// OrderType is a sort direction in an order query parameter.
type OrderType string

const (
	OrderAsc  OrderType = "asc"
	OrderDesc OrderType = "desc"
)

// Pagination captures the limit/offset query parameters shared by every
// collection endpoint. The API caps limit at 100 per request; zero values
// are omitted and the server default (10) applies.
type Pagination struct {
	Limit  int
	Offset int
}

func (p Pagination) encode(q url.Values) {
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
}

// Query returns the pagination parameters as a url.Values.
func (p Pagination) Query() url.Values {
	q := url.Values{}
	p.encode(q)
	return q
}
