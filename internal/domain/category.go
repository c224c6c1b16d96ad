package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#000000"

// Category is a user-defined, colored grouping of favorites.
type Category struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Description    *string
	Color          string
	CreatedAt      time.Time
	FavoritesCount int // computed field, not stored in DB
}

// Summary aggregates a user's favorites and categories.
type Summary struct {
	TotalFavorites  int
	TracksCount     int
	ArtistsCount    int
	AlbumsCount     int
	CategoriesCount int
	Categories      []*Category
}

// SearchEntry is one remembered catalog search query.
type SearchEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Query     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
