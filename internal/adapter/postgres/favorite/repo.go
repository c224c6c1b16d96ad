// Package favorite implements the Favorite repository using PostgreSQL.
// Listing queries are built with squirrel so that optional filters compose.
package favorite

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/echoplay-backend/internal/adapter/postgres"
	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new favorite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// favoriteColumns are selected by every read path, in scanFavorite order.
// The category columns come from a LEFT JOIN and are NULL for uncategorized rows.
var favoriteColumns = []string{
	"f.id", "f.user_id", "f.entity_kind", "f.external_id", "f.display_name",
	"f.artist_name", "f.album_name", "f.duration_ms", "f.image_url",
	"f.category_id", "f.created_at",
	"c.name", "c.description", "c.color", "c.created_at",
}

const (
	insertSQL = `
INSERT INTO favorites (
    id, user_id, entity_kind, external_id, display_name,
    artist_name, album_name, duration_ms, image_url, category_id, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	existsSQL = `
SELECT EXISTS(
    SELECT 1 FROM favorites
    WHERE user_id = $1 AND entity_kind = $2 AND external_id = $3
)`

	updateCategorySQL = `UPDATE favorites SET category_id = $3 WHERE id = $1 AND user_id = $2`

	deleteSQL = `DELETE FROM favorites WHERE id = $1 AND user_id = $2`

	clearCategorySQL = `UPDATE favorites SET category_id = NULL WHERE user_id = $1 AND category_id = $2`

	deleteByCategorySQL = `DELETE FROM favorites WHERE user_id = $1 AND category_id = $2`
)

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (r *Repo) selectBuilder(userID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(favoriteColumns...).
		From("favorites f").
		LeftJoin("categories c ON c.id = f.category_id").
		Where(squirrel.Eq{"f.user_id": userID})
}

// GetByID returns a favorite with its category.
// Returns domain.ErrNotFound if the favorite does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, favoriteID uuid.UUID) (*domain.Favorite, error) {
	query, args, err := r.selectBuilder(userID).
		Where(squirrel.Eq{"f.id": favoriteID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get favorite query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	f, err := scanFavorite(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "favorite", favoriteID)
	}
	return f, nil
}

// List returns the user's favorites newest first. Set filter fields are ANDed.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.FavoriteFilter) ([]*domain.Favorite, error) {
	b := r.selectBuilder(userID)
	if filter.Kind != nil {
		b = b.Where(squirrel.Eq{"f.entity_kind": string(*filter.Kind)})
	}
	if filter.CategoryID != nil {
		b = b.Where(squirrel.Eq{"f.category_id": *filter.CategoryID})
	}

	query, args, err := b.OrderBy("f.created_at DESC", "f.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list favorites query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	result := []*domain.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("list favorites: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	return result, nil
}

// ExistsByExternalID reports whether the user already saved (kind, externalID).
func (r *Repo) ExistsByExternalID(ctx context.Context, userID uuid.UUID, kind domain.EntityKind, externalID string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsSQL, userID, string(kind), externalID).Scan(&exists); err != nil {
		return false, fmt.Errorf("favorite exists: %w", err)
	}
	return exists, nil
}

// CountByKind returns the number of favorites per entity kind. Kinds without
// favorites are present with a zero count.
func (r *Repo) CountByKind(ctx context.Context, userID uuid.UUID) (domain.KindCounts, error) {
	query, args, err := postgres.Builder().
		Select("entity_kind", "count(*)").
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("entity_kind").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count favorites query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("count favorites by kind: %w", err)
	}
	defer rows.Close()

	counts := make(domain.KindCounts, len(domain.EntityKinds))
	for _, k := range domain.EntityKinds {
		counts[k] = 0
	}
	for rows.Next() {
		var (
			kind string
			n    int64
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("count favorites by kind: %w", err)
		}
		counts[domain.EntityKind(kind)] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count favorites by kind: %w", err)
	}

	return counts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a favorite and returns it with ID and CreatedAt set.
// Returns domain.ErrAlreadyExists on a (user, kind, external_id) collision and
// domain.ErrNotFound if category_id references a missing category.
func (r *Repo) Create(ctx context.Context, f *domain.Favorite) (*domain.Favorite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created := *f
	if created.ID == uuid.Nil {
		created.ID = uuid.New()
	}
	created.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	var duration pgtype.Int4
	if f.DurationMs != nil {
		// duration_ms is an integer column; never let the cast wrap.
		if *f.DurationMs < 0 || *f.DurationMs > math.MaxInt32 {
			return nil, fmt.Errorf("favorite duration %d: %w", *f.DurationMs, domain.ErrValidation)
		}
		duration = pgtype.Int4{Int32: int32(*f.DurationMs), Valid: true}
	}

	_, err := q.Exec(ctx, insertSQL,
		created.ID, created.UserID, string(created.Kind), created.ExternalID, created.Name,
		ptrStringToPgText(created.ArtistName), ptrStringToPgText(created.AlbumName), duration,
		ptrStringToPgText(created.ImageURL), created.CategoryID, created.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "favorite", created.ID)
	}

	return &created, nil
}

// UpdateCategory sets or clears (nil) the category link of a favorite.
// Returns domain.ErrNotFound if the favorite does not exist or belongs to another user.
func (r *Repo) UpdateCategory(ctx context.Context, userID, favoriteID uuid.UUID, categoryID *uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateCategorySQL, favoriteID, userID, categoryID)
	if err != nil {
		return postgres.MapError(err, "favorite", favoriteID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", favoriteID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a favorite.
// Returns domain.ErrNotFound if the favorite does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, favoriteID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, favoriteID, userID)
	if err != nil {
		return postgres.MapError(err, "favorite", favoriteID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", favoriteID, domain.ErrNotFound)
	}
	return nil
}

// ClearCategory unlinks every favorite of the user that points at categoryID.
// Returns the number of favorites moved to Uncategorized.
func (r *Repo) ClearCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, clearCategorySQL, userID, categoryID)
	if err != nil {
		return 0, postgres.MapError(err, "category", categoryID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteByCategory removes every favorite of the user that points at categoryID.
// Returns the number of deleted favorites.
func (r *Repo) DeleteByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteByCategorySQL, userID, categoryID)
	if err != nil {
		return 0, postgres.MapError(err, "category", categoryID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanFavorite(row pgx.Row) (*domain.Favorite, error) {
	var (
		f          domain.Favorite
		kind       string
		artistName pgtype.Text
		albumName  pgtype.Text
		durationMs pgtype.Int4
		imageURL   pgtype.Text
		categoryID pgtype.UUID
		catName    pgtype.Text
		catDesc    pgtype.Text
		catColor   pgtype.Text
		catCreated pgtype.Timestamptz
	)

	err := row.Scan(
		&f.ID, &f.UserID, &kind, &f.ExternalID, &f.Name,
		&artistName, &albumName, &durationMs, &imageURL,
		&categoryID, &f.CreatedAt,
		&catName, &catDesc, &catColor, &catCreated,
	)
	if err != nil {
		return nil, fmt.Errorf("scan favorite: %w", err)
	}

	f.Kind = domain.EntityKind(kind)
	f.ArtistName = pgTextToPtr(artistName)
	f.AlbumName = pgTextToPtr(albumName)
	f.ImageURL = pgTextToPtr(imageURL)
	if durationMs.Valid {
		d := int(durationMs.Int32)
		f.DurationMs = &d
	}

	if categoryID.Valid {
		id := uuid.UUID(categoryID.Bytes)
		f.CategoryID = &id
		f.Category = &domain.Category{
			ID:          id,
			UserID:      f.UserID,
			Name:        catName.String,
			Description: pgTextToPtr(catDesc),
			Color:       catColor.String,
			CreatedAt:   catCreated.Time,
		}
	}

	return &f, nil
}

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}
