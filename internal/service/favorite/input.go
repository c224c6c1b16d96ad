package favorite

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/internal/validate"
)

// AddInput holds the parameters for adding a favorite.
type AddInput struct {
	Kind       domain.EntityKind `json:"entityType" validate:"entity_kind"`
	ExternalID string            `json:"externalId" validate:"required,max=100"`
	Name       string            `json:"name" validate:"required,max=500"`
	ArtistName *string           `json:"artistName" validate:"omitempty,max=500"`
	AlbumName  *string           `json:"albumName" validate:"omitempty,max=500"`
	DurationMs *int              `json:"durationMs" validate:"omitempty,gte=0,max=2147483647"`
	ImageURL   *string           `json:"imageUrl" validate:"omitempty,max=1000"`
	CategoryID *uuid.UUID        `json:"categoryId"`
}

// Validate trims text fields in place and checks all of them.
func (i *AddInput) Validate() error {
	i.ExternalID = strings.TrimSpace(i.ExternalID)
	i.Name = strings.TrimSpace(i.Name)
	i.ArtistName = trimOrNil(i.ArtistName)
	i.AlbumName = trimOrNil(i.AlbumName)
	i.ImageURL = trimOrNil(i.ImageURL)
	return validate.Struct(i)
}

// ListInput filters a favorites listing. Both filters are optional and ANDed.
type ListInput struct {
	Kind       *domain.EntityKind
	CategoryID *uuid.UUID
}

// Validate checks the kind filter.
func (i ListInput) Validate() error {
	if i.Kind != nil && !i.Kind.IsValid() {
		return domain.NewValidationError("entityType", "must be one of TRACK, ARTIST, ALBUM")
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
