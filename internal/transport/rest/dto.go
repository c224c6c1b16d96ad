package rest

import (
	"time"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

type categoryResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	Color          string    `json:"color"`
	CreatedAt      time.Time `json:"createdAt"`
	FavoritesCount int       `json:"favoritesCount"`
}

type favoriteResponse struct {
	ID         string            `json:"id"`
	EntityType domain.EntityKind `json:"entityType"`
	ExternalID string            `json:"externalId"`
	Name       string            `json:"name"`
	ArtistName *string           `json:"artistName"`
	AlbumName  *string           `json:"albumName"`
	DurationMs *int              `json:"durationMs"`
	ImageURL   *string           `json:"imageUrl"`
	CreatedAt  time.Time         `json:"createdAt"`
	CategoryID *string           `json:"categoryId"`
	Category   *categoryResponse `json:"category"`
}

type groupResponse struct {
	Label     string             `json:"label"`
	Category  *categoryResponse  `json:"category"`
	Favorites []favoriteResponse `json:"favorites"`
}

type summaryResponse struct {
	TotalFavorites  int                `json:"totalFavorites"`
	TracksCount     int                `json:"tracksCount"`
	ArtistsCount    int                `json:"artistsCount"`
	AlbumsCount     int                `json:"albumsCount"`
	CategoriesCount int                `json:"categoriesCount"`
	Categories      []categoryResponse `json:"categories"`
}

type searchEntryResponse struct {
	ID        string    `json:"id"`
	Query     string    `json:"query"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		IsAdmin:   u.IsAdmin(),
		CreatedAt: u.CreatedAt,
	}
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Description:    c.Description,
		Color:          c.Color,
		CreatedAt:      c.CreatedAt,
		FavoritesCount: c.FavoritesCount,
	}
}

func toCategoryResponses(cs []*domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

func toFavoriteResponse(f *domain.Favorite) favoriteResponse {
	resp := favoriteResponse{
		ID:         f.ID.String(),
		EntityType: f.Kind,
		ExternalID: f.ExternalID,
		Name:       f.Name,
		ArtistName: f.ArtistName,
		AlbumName:  f.AlbumName,
		DurationMs: f.DurationMs,
		ImageURL:   f.ImageURL,
		CreatedAt:  f.CreatedAt,
	}
	if f.CategoryID != nil {
		id := f.CategoryID.String()
		resp.CategoryID = &id
	}
	if f.Category != nil {
		c := toCategoryResponse(f.Category)
		resp.Category = &c
	}
	return resp
}

func toFavoriteResponses(fs []*domain.Favorite) []favoriteResponse {
	out := make([]favoriteResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, toFavoriteResponse(f))
	}
	return out
}

// toGroupResponses omits the per-favorite category, the group already names it.
func toGroupResponses(groups []domain.FavoriteGroup) []groupResponse {
	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		resp := groupResponse{
			Label:     g.Label(),
			Favorites: make([]favoriteResponse, 0, len(g.Favorites)),
		}
		if g.Category != nil {
			c := toCategoryResponse(g.Category)
			resp.Category = &c
		}
		for _, f := range g.Favorites {
			fr := toFavoriteResponse(f)
			fr.Category = nil
			resp.Favorites = append(resp.Favorites, fr)
		}
		out = append(out, resp)
	}
	return out
}

func toSummaryResponse(s *domain.Summary) summaryResponse {
	return summaryResponse{
		TotalFavorites:  s.TotalFavorites,
		TracksCount:     s.TracksCount,
		ArtistsCount:    s.ArtistsCount,
		AlbumsCount:     s.AlbumsCount,
		CategoriesCount: s.CategoriesCount,
		Categories:      toCategoryResponses(s.Categories),
	}
}

func toSearchEntryResponse(e *domain.SearchEntry) searchEntryResponse {
	return searchEntryResponse{
		ID:        e.ID.String(),
		Query:     e.Query,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toSearchEntryResponses(es []*domain.SearchEntry) []searchEntryResponse {
	out := make([]searchEntryResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toSearchEntryResponse(e))
	}
	return out
}
