// Package search implements the search-history repository using PostgreSQL.
// Queries are deduplicated per user case-insensitively via lower(query).
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Repo provides search-history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new search-history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, user_id, query, created_at, updated_at`

const (
	getByKeySQL = `SELECT ` + entryColumns + ` FROM search_history WHERE user_id = $1 AND lower(query) = $2`

	createSQL = `
INSERT INTO search_history (id, user_id, query, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING ` + entryColumns

	touchSQL = `
UPDATE search_history SET created_at = $3, updated_at = $3
WHERE id = $1 AND user_id = $2
RETURNING ` + entryColumns

	recentSQL = `
SELECT ` + entryColumns + ` FROM search_history
WHERE user_id = $1
ORDER BY updated_at DESC, id DESC
LIMIT $2`

	listByUserSQL = `
SELECT ` + entryColumns + ` FROM search_history
WHERE user_id = $1
ORDER BY updated_at DESC, id DESC`

	deleteSQL = `DELETE FROM search_history WHERE id = $1 AND user_id = $2`
)

// GetByKey returns the user's entry whose lower-cased query equals key.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetByKey(ctx context.Context, userID uuid.UUID, key string) (*domain.SearchEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByKeySQL, userID, key))
	if err != nil {
		return nil, postgres.MapError(err, "search_entry", uuid.Nil)
	}
	return e, nil
}

// Create inserts a new entry. Returns domain.ErrAlreadyExists if the same
// query (ignoring case) is already recorded for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, query string) (*domain.SearchEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	e, err := scanEntry(q.QueryRow(ctx, createSQL, id, userID, query, time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "search_entry", id)
	}
	return e, nil
}

// Touch bumps both timestamps of an entry to now.
func (r *Repo) Touch(ctx context.Context, userID, entryID uuid.UUID) (*domain.SearchEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, touchSQL, entryID, userID, time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "search_entry", entryID)
	}
	return e, nil
}

// Recent returns up to limit of the user's entries, most recently used first.
func (r *Repo) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.SearchEntry, error) {
	return r.query(ctx, "recent searches", recentSQL, userID, limit)
}

// ListByUser returns every entry of the user, most recently used first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SearchEntry, error) {
	return r.query(ctx, "list searches", listByUserSQL, userID)
}

// Delete removes one of the user's entries.
// Returns domain.ErrNotFound if the entry does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, entryID, userID)
	if err != nil {
		return postgres.MapError(err, "search_entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("search_entry %s: %w", entryID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) query(ctx context.Context, op, sql string, args ...any) ([]*domain.SearchEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := []*domain.SearchEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanEntry(row pgx.Row) (*domain.SearchEntry, error) {
	var e domain.SearchEntry
	if err := row.Scan(&e.ID, &e.UserID, &e.Query, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan search entry: %w", err)
	}
	return &e, nil
}
