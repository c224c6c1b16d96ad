// Package identity resolves the verified email of a caller to an internal
// user, creating the user on first sight.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// Service maps external identities (emails) to users.
type Service struct {
	users userRepo
	log   *slog.Logger
}

// NewService creates a new identity service.
func NewService(log *slog.Logger, users userRepo) *Service {
	return &Service{
		users: users,
		log:   log.With("service", "identity"),
	}
}

// Resolve returns the user whose email equals email exactly, creating a
// regular user if none exists. An empty email yields domain.ErrIdentity.
//
// Two concurrent first-time calls race on the unique email index; the loser
// gets ErrAlreadyExists from Create and re-reads the winner's row.
func (s *Service) Resolve(ctx context.Context, email string) (*domain.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.ErrIdentity
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	user, err = s.users.Create(ctx, &domain.User{
		ID:    uuid.New(),
		Email: email,
		Role:  domain.UserRoleUser,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create user: %w", err)
		}
		user, err = s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, fmt.Errorf("get user after race: %w", err)
		}
		return user, nil
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
	)

	return user, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
