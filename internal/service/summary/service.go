// Package summary aggregates favorite and category counts for a user.
package summary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

type favoriteRepo interface {
	CountByKind(ctx context.Context, userID uuid.UUID) (domain.KindCounts, error)
}

type categoryRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
}

// Service computes read-only summaries.
type Service struct {
	favorites  favoriteRepo
	categories categoryRepo
	log        *slog.Logger
}

// NewService creates a new summary service.
func NewService(log *slog.Logger, favorites favoriteRepo, categories categoryRepo) *Service {
	return &Service{
		favorites:  favorites,
		categories: categories,
		log:        log.With("service", "summary"),
	}
}

// Summarize returns per-kind favorite counts and the user's categories with
// their favorite counts. Both reads run concurrently.
func (s *Service) Summarize(ctx context.Context, userID uuid.UUID) (*domain.Summary, error) {
	var (
		counts     domain.KindCounts
		categories []*domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		counts, err = s.favorites.CountByKind(gctx, userID)
		if err != nil {
			return fmt.Errorf("count favorites: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		categories, err = s.categories.List(gctx, userID)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if categories == nil {
		categories = []*domain.Category{}
	}

	return &domain.Summary{
		TotalFavorites:  counts.Total(),
		TracksCount:     counts[domain.EntityKindTrack],
		ArtistsCount:    counts[domain.EntityKindArtist],
		AlbumsCount:     counts[domain.EntityKindAlbum],
		CategoriesCount: len(categories),
		Categories:      categories,
	}, nil
}
