package internal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "reader", false},
		{"single char", "a", false},
		{"max length", strings.Repeat("a", 64), false},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "password123", false},
		{"min length", strings.Repeat("a", 8), false},
		{"max length", strings.Repeat("a", 1024), false},
		{"too short", "short", true},
		{"too long", strings.Repeat("a", 1025), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"zero means server default", 0, false},
		{"maximum", 100, false},
		{"negative", -1, true},
		{"over maximum", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLimit(tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLimit(%d) error = %v, wantErr %v", tt.limit, err, tt.wantErr)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	if err := ValidateID("manga", uuid.New()); err != nil {
		t.Errorf("expected a random UUID to pass, got %v", err)
	}

	err := ValidateID("manga", uuid.Nil)
	var valErr *pkgerrs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for nil UUID, got %v", err)
	}
	if valErr.Field != "manga" {
		t.Errorf("expected field manga, got %q", valErr.Field)
	}
}
