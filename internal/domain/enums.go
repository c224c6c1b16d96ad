package domain

import "strings"

// EntityKind identifies which kind of catalog entity a favorite refers to.
type EntityKind string

const (
	EntityKindTrack  EntityKind = "TRACK"
	EntityKindArtist EntityKind = "ARTIST"
	EntityKindAlbum  EntityKind = "ALBUM"
)

// EntityKinds lists every kind in display order.
var EntityKinds = []EntityKind{EntityKindTrack, EntityKindArtist, EntityKindAlbum}

func (k EntityKind) String() string { return string(k) }

func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindTrack, EntityKindArtist, EntityKindAlbum:
		return true
	}
	return false
}

// ParseEntityKind accepts the kind name in any letter case ("track", "Track", "TRACK").
func ParseEntityKind(s string) (EntityKind, bool) {
	k := EntityKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", false
	}
	return k, true
}

// UnmarshalText accepts any letter case. Unknown values are kept as given
// and rejected later by validation.
func (k *EntityKind) UnmarshalText(text []byte) error {
	if parsed, ok := ParseEntityKind(string(text)); ok {
		*k = parsed
		return nil
	}
	*k = EntityKind(text)
	return nil
}

// CascadePolicy decides what happens to a category's favorites when the
// category is deleted.
type CascadePolicy string

const (
	// CascadeReassign clears the category link, moving favorites to Uncategorized.
	CascadeReassign CascadePolicy = "REASSIGN"
	// CascadeDeleteFavorites removes the linked favorites together with the category.
	CascadeDeleteFavorites CascadePolicy = "DELETE_FAVORITES"
)

func (p CascadePolicy) String() string { return string(p) }

func (p CascadePolicy) IsValid() bool {
	switch p {
	case CascadeReassign, CascadeDeleteFavorites:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
