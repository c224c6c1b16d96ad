package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Get returns an owned category with its favorite count.
func (s *Service) Get(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	c, err := s.categories.GetByID(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// List returns the user's categories ordered by name.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
