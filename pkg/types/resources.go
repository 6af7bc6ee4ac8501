package types

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// AuthorAttributes describes an author or artist.
type AuthorAttributes struct {
	Name      string          `json:"name"`
	ImageURL  string          `json:"imageUrl"`
	Biography LocalizedString `json:"biography"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Author is an author object.
type Author = Object[AuthorAttributes]

// AuthorResponse is the envelope for single-author endpoints.
type AuthorResponse = Response[AuthorAttributes]

// AuthorList is the envelope for author collection endpoints.
type AuthorList = PagedResponse[AuthorAttributes]

// AuthorListOptions are the filters accepted by GET /author.
type AuthorListOptions struct {
	Pagination

	IDs  []uuid.UUID
	Name string
}

// Query encodes the options as GET /author query parameters.
func (o *AuthorListOptions) Query() url.Values {
	q := url.Values{}
	o.Pagination.encode(q)
	for _, id := range o.IDs {
		q.Add("ids[]", id.String())
	}
	if o.Name != "" {
		q.Set("name", o.Name)
	}
	return q
}

// CoverAttributes describes a cover art upload.
type CoverAttributes struct {
	Volume      string    `json:"volume"`
	FileName    string    `json:"fileName"`
	Description string    `json:"description"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Cover is a cover art object.
type Cover = Object[CoverAttributes]

// CoverResponse is the envelope for single-cover endpoints.
type CoverResponse = Response[CoverAttributes]

// CoverList is the envelope for cover collection endpoints.
type CoverList = PagedResponse[CoverAttributes]

// CoverListOptions are the filters accepted by GET /cover.
type CoverListOptions struct {
	Pagination

	Manga     []uuid.UUID
	IDs       []uuid.UUID
	Uploaders []uuid.UUID

	// Order maps field name ("volume", "createdAt", "updatedAt") to direction.
	Order map[string]OrderType
}

// Query encodes the options as GET /cover query parameters.
func (o *CoverListOptions) Query() url.Values {
	q := url.Values{}
	o.Pagination.encode(q)
	for _, id := range o.Manga {
		q.Add("manga[]", id.String())
	}
	for _, id := range o.IDs {
		q.Add("ids[]", id.String())
	}
	for _, id := range o.Uploaders {
		q.Add("uploaders[]", id.String())
	}
	for field, dir := range o.Order {
		q.Set("order["+field+"]", string(dir))
	}
	return q
}

// CoverEditRequest is the body for PUT /cover/{id}.
type CoverEditRequest struct {
	Volume      string `json:"volume,omitempty"`
	Description string `json:"description,omitempty"`
	Version     int    `json:"version"`
}

// UserAttributes describes a user.
type UserAttributes struct {
	Username string `json:"username"`
	Version  int    `json:"version"`
}

// User is a user object.
type User = Object[UserAttributes]

// UserResponse is the envelope for single-user endpoints.
type UserResponse = Response[UserAttributes]

// UserList is the envelope for user collection endpoints.
type UserList = PagedResponse[UserAttributes]

// UserListOptions are the filters accepted by GET /user.
type UserListOptions struct {
	Pagination

	IDs      []uuid.UUID
	Username string

	// Order maps field name ("username") to direction.
	Order map[string]OrderType
}

// Query encodes the options as GET /user query parameters.
func (o *UserListOptions) Query() url.Values {
	q := url.Values{}
	o.Pagination.encode(q)
	for _, id := range o.IDs {
		q.Add("ids[]", id.String())
	}
	if o.Username != "" {
		q.Set("username", o.Username)
	}
	for field, dir := range o.Order {
		q.Set("order["+field+"]", string(dir))
	}
	return q
}

// ScanlationGroupAttributes describes a scanlation group.
type ScanlationGroupAttributes struct {
	Name      string    `json:"name"`
	Leader    User      `json:"leader"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScanlationGroup is a scanlation group object.
type ScanlationGroup = Object[ScanlationGroupAttributes]

// ScanlationGroupResponse is the envelope for single-group endpoints.
type ScanlationGroupResponse = Response[ScanlationGroupAttributes]

// ScanlationGroupList is the envelope for group collection endpoints.
type ScanlationGroupList = PagedResponse[ScanlationGroupAttributes]

// GroupListOptions are the filters accepted by GET /group.
type GroupListOptions struct {
	Pagination

	IDs  []uuid.UUID
	Name string
}

// Query encodes the options as GET /group query parameters.
func (o *GroupListOptions) Query() url.Values {
	q := url.Values{}
	o.Pagination.encode(q)
	for _, id := range o.IDs {
		q.Add("ids[]", id.String())
	}
	if o.Name != "" {
		q.Set("name", o.Name)
	}
	return q
}

// GroupRequest is the body for POST /group and PUT /group/{id}.
type GroupRequest struct {
	Name    string      `json:"name"`
	Leader  uuid.UUID   `json:"leader"`
	Members []uuid.UUID `json:"members,omitempty"`
	Version int         `json:"version"`
}

// CustomListVisibility controls who can see a custom list.
type CustomListVisibility string

const (
	CustomListPublic  CustomListVisibility = "public"
	CustomListPrivate CustomListVisibility = "private"
)

// CustomListAttributes describes a custom list.
type CustomListAttributes struct {
	Name       string               `json:"name"`
	Visibility CustomListVisibility `json:"visibility"`
	Owner      User                 `json:"owner"`
	Version    int                  `json:"version"`
}

// CustomList is a custom list object.
type CustomList = Object[CustomListAttributes]

// CustomListResponse is the envelope for single-list endpoints.
type CustomListResponse = Response[CustomListAttributes]

// CustomListList is the envelope for list collection endpoints.
type CustomListList = PagedResponse[CustomListAttributes]

// CustomListRequest is the body for POST /list and PUT /list/{id}. Manga
// seeds or replaces the list's entries; Version must match the current
// version on updates.
type CustomListRequest struct {
	Name       string               `json:"name"`
	Visibility CustomListVisibility `json:"visibility,omitempty"`
	Manga      []uuid.UUID          `json:"manga,omitempty"`
	Version    int                  `json:"version"`
}
