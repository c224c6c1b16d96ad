package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Move links a favorite to categoryID, or clears the link when categoryID is nil.
func (s *Service) Move(ctx context.Context, userID, favoriteID uuid.UUID, categoryID *uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.favorites.GetByID(txCtx, userID, favoriteID); err != nil {
			return fmt.Errorf("get favorite: %w", err)
		}

		if categoryID != nil {
			if err := s.checkCategory(txCtx, userID, *categoryID); err != nil {
				return err
			}
		}

		err := s.favorites.UpdateCategory(txCtx, userID, favoriteID, categoryID)
		if err != nil {
			// A foreign key violation means the category was deleted concurrently.
			if categoryID != nil && errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidReference
			}
			return fmt.Errorf("update favorite category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	target := "none"
	if categoryID != nil {
		target = categoryID.String()
	}
	s.log.InfoContext(ctx, "favorite moved",
		slog.String("user_id", userID.String()),
		slog.String("favorite_id", favoriteID.String()),
		slog.String("category_id", target),
	)
	return nil
}
