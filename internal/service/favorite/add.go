package favorite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Add saves a new favorite for the user. The (kind, external id) pair must be
// new for that user and a given category must belong to them.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, input AddInput) (*domain.Favorite, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Favorite
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.CategoryID != nil {
			if err := s.checkCategory(txCtx, userID, *input.CategoryID); err != nil {
				return err
			}
		}

		exists, err := s.favorites.ExistsByExternalID(txCtx, userID, input.Kind, input.ExternalID)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			return domain.ErrDuplicateFavorite
		}

		created, err = s.favorites.Create(txCtx, &domain.Favorite{
			UserID:     userID,
			Kind:       input.Kind,
			ExternalID: input.ExternalID,
			Name:       input.Name,
			ArtistName: input.ArtistName,
			AlbumName:  input.AlbumName,
			DurationMs: input.DurationMs,
			ImageURL:   input.ImageURL,
			CategoryID: input.CategoryID,
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			return domain.ErrDuplicateFavorite
		case errors.Is(err, domain.ErrNotFound):
			// The category vanished between the check and the insert.
			return domain.ErrInvalidReference
		case err != nil:
			return fmt.Errorf("create favorite: %w", err)
		}

		if created.CategoryID != nil {
			created, err = s.favorites.GetByID(txCtx, userID, created.ID)
			if err != nil {
				return fmt.Errorf("reload favorite: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.FavoriteAdded(created.Kind)
	s.log.InfoContext(ctx, "favorite added",
		slog.String("user_id", userID.String()),
		slog.String("favorite_id", created.ID.String()),
		slog.String("kind", string(created.Kind)),
	)

	return created, nil
}

// checkCategory returns ErrInvalidReference unless categoryID is owned by userID.
func (s *Service) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	ok, err := s.categories.ExistsForUser(ctx, userID, categoryID)
	if err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	if !ok {
		return domain.ErrInvalidReference
	}
	return nil
}
