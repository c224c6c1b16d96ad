package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// SQLSTATE codes the repositories translate.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// MapError wraps a failed statement with the entity it targeted and the
// domain class of the failure. id may be uuid.Nil for lookups by another key
// (email, query text); the id is then left out of the message.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	subject := entity
	if id != uuid.Nil {
		subject = entity + " " + id.String()
	}
	return fmt.Errorf("%s: %w", subject, classify(err))
}

// classify returns the domain sentinel for err, or err itself when the
// failure has no domain meaning. Context errors are never reclassified.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.ErrAlreadyExists
	case codeForeignKeyViolation:
		// A dangling user_id or category_id means the parent row is gone.
		return domain.ErrNotFound
	case codeCheckViolation, codeNotNullViolation:
		return domain.ErrValidation
	default:
		return err
	}
}
