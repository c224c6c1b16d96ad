package category

import (
	"strings"

	"github.com/heartmarshall/echoplay-backend/internal/validate"
)

// CreateInput holds the parameters for creating a category.
type CreateInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       string  `json:"color" validate:"max=20"`
}

// Validate trims text fields in place and checks all of them.
func (i *CreateInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = trimOrNil(i.Description)
	i.Color = strings.TrimSpace(i.Color)
	return validate.Struct(i)
}

// UpdateInput replaces every editable field of a category.
type UpdateInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       string  `json:"color" validate:"max=20"`
}

// Validate trims text fields in place and checks all of them.
func (i *UpdateInput) Validate() error {
	i.Name = strings.TrimSpace(i.Name)
	i.Description = trimOrNil(i.Description)
	i.Color = strings.TrimSpace(i.Color)
	return validate.Struct(i)
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
