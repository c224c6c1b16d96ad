package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Delete removes an owned category. With CascadeReassign its favorites become
// uncategorized; with CascadeDeleteFavorites they are removed too. An empty
// policy means CascadeReassign. Both steps commit or roll back together.
func (s *Service) Delete(ctx context.Context, userID, categoryID uuid.UUID, policy domain.CascadePolicy) error {
	if policy == "" {
		policy = domain.CascadeReassign
	}
	if !policy.IsValid() {
		return domain.NewValidationError("policy", "must be one of REASSIGN, DELETE_FAVORITES")
	}

	var affected int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		owned, err := s.categories.ExistsForUser(txCtx, userID, categoryID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !owned {
			return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
		}

		switch policy {
		case domain.CascadeReassign:
			affected, err = s.favorites.ClearCategory(txCtx, userID, categoryID)
			if err != nil {
				return fmt.Errorf("clear category: %w", err)
			}
		case domain.CascadeDeleteFavorites:
			affected, err = s.favorites.DeleteByCategory(txCtx, userID, categoryID)
			if err != nil {
				return fmt.Errorf("delete favorites: %w", err)
			}
		}

		if err := s.categories.Delete(txCtx, userID, categoryID); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.CategoryDeleted(policy)
	s.log.InfoContext(ctx, "category deleted",
		slog.String("user_id", userID.String()),
		slog.String("category_id", categoryID.String()),
		slog.String("policy", string(policy)),
		slog.Int("favorites_affected", affected),
	)
	return nil
}
