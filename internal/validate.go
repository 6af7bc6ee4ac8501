package internal

import (
	"fmt"

	"github.com/google/uuid"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
)

const (
	// Credential constraints per the API documentation.
	minUsernameLength = 1
	maxUsernameLength = 64
	minPasswordLength = 8
	maxPasswordLength = 1024

	// Collection endpoints cap limit at 100 per request.
	maxPageLimit = 100
)

// ValidateUsername checks the login username against the documented bounds.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLength {
		return &pkgerrs.ValidationError{Field: "username", Message: "username cannot be empty"}
	}
	if len(username) > maxUsernameLength {
		return &pkgerrs.ValidationError{Field: "username", Message: fmt.Sprintf("username cannot exceed %d characters", maxUsernameLength)}
	}
	return nil
}

// ValidatePassword checks the login password against the documented bounds.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return &pkgerrs.ValidationError{Field: "password", Message: fmt.Sprintf("password must be at least %d characters", minPasswordLength)}
	}
	if len(password) > maxPasswordLength {
		return &pkgerrs.ValidationError{Field: "password", Message: fmt.Sprintf("password cannot exceed %d characters", maxPasswordLength)}
	}
	return nil
}

// ValidateLimit checks a pagination limit. Zero is allowed and means the
// server default.
func ValidateLimit(limit int) error {
	if limit < 0 {
		return &pkgerrs.ValidationError{Field: "limit", Message: "limit cannot be negative"}
	}
	if limit > maxPageLimit {
		return &pkgerrs.ValidationError{Field: "limit", Message: fmt.Sprintf("limit cannot exceed %d", maxPageLimit)}
	}
	return nil
}

// ValidateID rejects the nil UUID for a required identifier.
func ValidateID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return &pkgerrs.ValidationError{Field: field, Message: "id is required"}
	}
	return nil
}
