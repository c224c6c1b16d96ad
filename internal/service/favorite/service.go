// Package favorite manages a user's saved tracks, artists and albums and
// their assignment to categories.
package favorite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

type favoriteRepo interface {
	GetByID(ctx context.Context, userID, favoriteID uuid.UUID) (*domain.Favorite, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.FavoriteFilter) ([]*domain.Favorite, error)
	ExistsByExternalID(ctx context.Context, userID uuid.UUID, kind domain.EntityKind, externalID string) (bool, error)
	Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error)
	UpdateCategory(ctx context.Context, userID, favoriteID uuid.UUID, categoryID *uuid.UUID) error
	Delete(ctx context.Context, userID, favoriteID uuid.UUID) error
}

type categoryRepo interface {
	ExistsForUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	FavoriteAdded(kind domain.EntityKind)
}

// Service provides favorite operations for a single user at a time.
type Service struct {
	favorites  favoriteRepo
	categories categoryRepo
	tx         txManager
	metrics    metricsRecorder
	log        *slog.Logger
}

// NewService creates a new favorite service.
func NewService(
	log *slog.Logger,
	favorites favoriteRepo,
	categories categoryRepo,
	tx txManager,
	metrics metricsRecorder,
) *Service {
	return &Service{
		favorites:  favorites,
		categories: categories,
		tx:         tx,
		metrics:    metrics,
		log:        log.With("service", "favorite"),
	}
}
