package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Update replaces the name, description and color of an owned category.
// Keeping the current name is allowed.
func (s *Service) Update(ctx context.Context, userID, categoryID uuid.UUID, input UpdateInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		owned, err := s.categories.ExistsForUser(txCtx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !owned {
			return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
		}

		taken, err := s.categories.NameTaken(txCtx, userID, input.Name, categoryID)
		if err != nil {
			return fmt.Errorf("check category name: %w", err)
		}
		if taken {
			return domain.ErrDuplicateCategory
		}

		err = s.categories.Update(txCtx, userID, categoryID, input.Name, input.Description, s.colorOrDefault(input.Color))
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDuplicateCategory
			}
			return fmt.Errorf("update category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
	)
	return nil
}
