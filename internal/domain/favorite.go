package domain

import (
	"time"

	"github.com/google/uuid"
)

// UncategorizedLabel is the group label used for favorites without a category.
const UncategorizedLabel = "Uncategorized"

// Favorite is a saved reference to an external catalog entity.
type Favorite struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Kind       EntityKind
	ExternalID string
	Name       string
	ArtistName *string
	AlbumName  *string
	DurationMs *int // tracks only
	ImageURL   *string
	CategoryID *uuid.UUID // nil = uncategorized
	CreatedAt  time.Time

	// Category is populated by read paths that join the category row.
	Category *Category
}

// FavoriteFilter narrows a favorites listing. Nil fields are not applied;
// set fields are combined with AND.
type FavoriteFilter struct {
	Kind       *EntityKind
	CategoryID *uuid.UUID
}

// FavoriteGroup is one partition of a grouped favorites view. Category is nil
// for the Uncategorized group.
type FavoriteGroup struct {
	Category  *Category
	Favorites []*Favorite
}

// Label returns the category name or UncategorizedLabel.
func (g FavoriteGroup) Label() string {
	if g.Category == nil {
		return UncategorizedLabel
	}
	return g.Category.Name
}

// KindCounts holds the number of favorites per entity kind.
type KindCounts map[EntityKind]int

// Total sums all kinds.
func (c KindCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}
