package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. Email is the external
// identity key and never changes after creation.
type User struct {
	ID        uuid.UUID
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}
