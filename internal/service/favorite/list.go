package favorite

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// List returns the user's favorites newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, input ListInput) ([]*domain.Favorite, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	favorites, err := s.favorites.List(ctx, userID, domain.FavoriteFilter{
		Kind:       input.Kind,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// ListGrouped returns all favorites of the user grouped by category, with
// unlinked favorites under the "Uncategorized" label. Groups are ordered by
// label with byte-wise comparison, not a locale collation: upper case sorts
// before lower case, so "Uncategorized" comes after "Rock" but before "zen".
// Categories without favorites produce no group.
func (s *Service) ListGrouped(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteGroup, error) {
	favorites, err := s.favorites.List(ctx, userID, domain.FavoriteFilter{})
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return groupByCategory(favorites), nil
}

// groupByCategory keeps the input order inside each group.
func groupByCategory(favorites []*domain.Favorite) []domain.FavoriteGroup {
	groups := make([]domain.FavoriteGroup, 0)
	index := make(map[uuid.UUID]int)
	uncategorized := -1

	for _, f := range favorites {
		if f.CategoryID == nil {
			if uncategorized < 0 {
				uncategorized = len(groups)
				groups = append(groups, domain.FavoriteGroup{})
			}
			groups[uncategorized].Favorites = append(groups[uncategorized].Favorites, f)
			continue
		}

		i, ok := index[*f.CategoryID]
		if !ok {
			i = len(groups)
			index[*f.CategoryID] = i
			groups = append(groups, domain.FavoriteGroup{Category: groupCategory(f)})
		}
		groups[i].Favorites = append(groups[i].Favorites, f)
	}

	for i := range groups {
		if groups[i].Category != nil {
			groups[i].Category.FavoritesCount = len(groups[i].Favorites)
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Label() < groups[b].Label()
	})
	return groups
}

// groupCategory copies the category joined onto f so that setting the group
// count does not alias the favorite's own category.
func groupCategory(f *domain.Favorite) *domain.Category {
	if f.Category == nil {
		return &domain.Category{ID: *f.CategoryID, UserID: f.UserID}
	}
	c := *f.Category
	return &c
}
