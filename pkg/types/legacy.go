package types

import "github.com/google/uuid"

// MappingType is the resource kind of a legacy (numeric) id.
type MappingType string

const (
	MappingGroup   MappingType = "group"
	MappingManga   MappingType = "manga"
	MappingChapter MappingType = "chapter"
	MappingTag     MappingType = "tag"
)

// MappingRequest is the body for POST /legacy/mapping.
type MappingRequest struct {
	Type MappingType `json:"type"`
	IDs  []int       `json:"ids"`
}

// MappingAttributes pairs a legacy numeric id with its v5 UUID.
type MappingAttributes struct {
	Type     MappingType `json:"type"`
	LegacyID int         `json:"legacyId"`
	NewID    uuid.UUID   `json:"newId"`
}

// MappingID is a legacy id mapping object.
type MappingID = Object[MappingAttributes]

// MappingResponse is one entry of the POST /legacy/mapping response array.
type MappingResponse = Response[MappingAttributes]
