// Package category implements the Category repository using PostgreSQL.
// Favorite counts are computed live from the favorites table on every read.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const selectWithCountSQL = `
SELECT
    c.id, c.user_id, c.name, c.description, c.color, c.created_at,
    (SELECT count(*) FROM favorites f WHERE f.category_id = c.id) AS favorites_count
FROM categories c`

const (
	getByIDSQL = selectWithCountSQL + `
WHERE c.id = $1 AND c.user_id = $2`

	// Ordinal ordering, independent of the database collation.
	listSQL = selectWithCountSQL + `
WHERE c.user_id = $1
ORDER BY c.name COLLATE "C"`

	createSQL = `
INSERT INTO categories (id, user_id, name, description, color, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, name, description, color, created_at, 0`

	updateSQL = `
UPDATE categories SET name = $3, description = $4, color = $5
WHERE id = $1 AND user_id = $2`

	deleteSQL = `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)`

	nameTakenSQL = `
SELECT EXISTS(
    SELECT 1 FROM categories
    WHERE user_id = $1 AND name = $2 AND id <> $3
)`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category with its live favorite count.
// Returns domain.ErrNotFound if the category does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(q.QueryRow(ctx, getByIDSQL, categoryID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}
	return c, nil
}

// List returns all categories of a user ordered by name, with live favorite counts.
// Returns an empty slice (not nil) when the user has no categories.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// ExistsForUser reports whether categoryID exists and is owned by userID.
func (r *Repo) ExistsForUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, categoryID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("category exists: %w", err)
	}
	return exists, nil
}

// NameTaken reports whether the user has a category called name other than
// excludeID. Pass uuid.Nil to check against all categories.
func (r *Repo) NameTaken(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var taken bool
	if err := q.QueryRow(ctx, nameTakenSQL, userID, name, excludeID).Scan(&taken); err != nil {
		return false, fmt.Errorf("category name taken: %w", err)
	}
	return taken, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new category and returns the persisted domain.Category.
// Returns domain.ErrAlreadyExists if the user already has a category with the same name.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	created, err := scanCategory(q.QueryRow(ctx, createSQL,
		id, c.UserID, c.Name, ptrStringToPgText(c.Description), c.Color, time.Now().UTC(),
	))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return created, nil
}

// Update replaces name, description and color of a category.
// Returns domain.ErrNotFound if the category does not exist or belongs to another user,
// domain.ErrAlreadyExists if the new name collides with another category.
func (r *Repo) Update(ctx context.Context, userID, categoryID uuid.UUID, name string, description *string, color string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSQL, categoryID, userID, name, ptrStringToPgText(description), color)
	if err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a category. Favorites still linked to it are unlinked by the
// ON DELETE SET NULL constraint.
// Returns domain.ErrNotFound if the category does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, categoryID, userID)
	if err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		c           domain.Category
		description pgtype.Text
		count       int64
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &description, &c.Color, &c.CreatedAt, &count); err != nil {
		return nil, fmt.Errorf("scan category: %w", err)
	}
	if description.Valid {
		c.Description = &description.String
	}
	c.FavoritesCount = int(count)
	return &c, nil
}

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
