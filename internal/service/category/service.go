// Package category manages user-defined categories and what happens to their
// favorites when a category is deleted.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	ExistsForUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error)
	NameTaken(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, name string, description *string, color string) error
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}

type favoriteRepo interface {
	ClearCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error)
	DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type metricsRecorder interface {
	CategoryDeleted(policy domain.CascadePolicy)
}

// Service provides category operations.
type Service struct {
	categories   categoryRepo
	favorites    favoriteRepo
	tx           txManager
	metrics      metricsRecorder
	defaultColor string
	log          *slog.Logger
}

// NewService creates a new category service. defaultColor is used when a
// category is created or updated without a color.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	favorites favoriteRepo,
	tx txManager,
	metrics metricsRecorder,
	defaultColor string,
) *Service {
	if defaultColor == "" {
		defaultColor = domain.DefaultCategoryColor
	}
	return &Service{
		categories:   categories,
		favorites:    favorites,
		tx:           tx,
		metrics:      metrics,
		defaultColor: defaultColor,
		log:          log.With("service", "category"),
	}
}
