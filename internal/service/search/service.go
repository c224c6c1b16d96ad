// Package search keeps a per-user history of catalog search queries.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
	"github.com/heartmarshall/echoplay-backend/internal/validate"
)

type searchRepo interface {
	GetByKey(ctx context.Context, userID uuid.UUID, key string) (*domain.SearchEntry, error)
	Create(ctx context.Context, userID uuid.UUID, query string) (*domain.SearchEntry, error)
	Touch(ctx context.Context, userID, entryID uuid.UUID) (*domain.SearchEntry, error)
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SearchEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SearchEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records and lists search history.
type Service struct {
	entries     searchRepo
	tx          txManager
	recentLimit int
	log         *slog.Logger
}

// NewService creates a new search-history service returning at most
// recentLimit entries from Recent.
func NewService(log *slog.Logger, entries searchRepo, tx txManager, recentLimit int) *Service {
	return &Service{
		entries:     entries,
		tx:          tx,
		recentLimit: recentLimit,
		log:         log.With("service", "search"),
	}
}

// RecordInput is a search query typed by the user.
type RecordInput struct {
	Query string `json:"query" validate:"required,max=200"`
}

// Record stores query for the user. A query that matches an existing entry
// ignoring letter case refreshes that entry instead of adding a new one.
func (s *Service) Record(ctx context.Context, userID uuid.UUID, input RecordInput) (*domain.SearchEntry, error) {
	input.Query = domain.NormalizeQuery(input.Query)
	if err := validate.Struct(input); err != nil {
		return nil, err
	}
	key := domain.QueryKey(input.Query)

	var entry *domain.SearchEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.entries.GetByKey(txCtx, userID, key)
		switch {
		case err == nil:
			entry, err = s.entries.Touch(txCtx, userID, existing.ID)
			if err != nil {
				return fmt.Errorf("touch search entry: %w", err)
			}
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get search entry: %w", err)
		}

		entry, err = s.entries.Create(txCtx, userID, input.Query)
		if err != nil {
			return fmt.Errorf("create search entry: %w", err)
		}
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// Lost a race with a concurrent insert of the same key; refresh the winner.
		return s.touchExisting(ctx, userID, key)
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) touchExisting(ctx context.Context, userID uuid.UUID, key string) (*domain.SearchEntry, error) {
	existing, err := s.entries.GetByKey(ctx, userID, key)
	if err != nil {
		return nil, fmt.Errorf("get search entry after race: %w", err)
	}
	entry, err := s.entries.Touch(ctx, userID, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("touch search entry: %w", err)
	}
	return entry, nil
}

// Recent returns the user's most recently used queries.
func (s *Service) Recent(ctx context.Context, userID uuid.UUID) ([]*domain.SearchEntry, error) {
	entries, err := s.entries.Recent(ctx, userID, s.recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent searches: %w", err)
	}
	return entries, nil
}

// ListForUser returns the full history of targetUserID. Only administrators
// may call it.
func (s *Service) ListForUser(ctx context.Context, actor *domain.User, targetUserID uuid.UUID) ([]*domain.SearchEntry, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	entries, err := s.entries.ListByUser(ctx, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("list searches: %w", err)
	}

	s.log.InfoContext(ctx, "search history read by admin",
		slog.String("user_id", actor.ID.String()),
		slog.String("target_user_id", targetUserID.String()),
	)
	return entries, nil
}

// Delete removes one of the user's entries.
func (s *Service) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("delete search entry: %w", err)
	}

	s.log.InfoContext(ctx, "search entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)
	return nil
}
