package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Create creates a category. Names are unique per user, compared case-sensitively.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, input CreateInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.categories.NameTaken(ctx, userID, input.Name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if taken {
		return nil, domain.ErrDuplicateCategory
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Color:       s.colorOrDefault(input.Color),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrDuplicateCategory
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("user_id", userID.String()),
		slog.String("category_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

func (s *Service) colorOrDefault(color string) string {
	if color == "" {
		return s.defaultColor
	}
	return color
}
