package favorite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Remove deletes a favorite owned by the user.
func (s *Service) Remove(ctx context.Context, userID, favoriteID uuid.UUID) error {
	if err := s.favorites.Delete(ctx, userID, favoriteID); err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	s.log.InfoContext(ctx, "favorite removed",
		slog.String("user_id", userID.String()),
		slog.String("favorite_id", favoriteID.String()),
	)
	return nil
}
