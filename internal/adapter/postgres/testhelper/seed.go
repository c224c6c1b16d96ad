package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/echoplay-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a regular user with a unique email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Role:      domain.UserRoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCategory creates a category with the given name for userID.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Category {
	t.Helper()

	c := domain.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     domain.DefaultCategoryColor,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, user_id, name, color, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.UserID, c.Name, c.Color, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedFavorite creates a favorite of the given kind with a unique external id.
// createdAt lets tests control ordering; pass the zero time for now().
func SeedFavorite(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, kind domain.EntityKind, categoryID *uuid.UUID, createdAt time.Time) domain.Favorite {
	t.Helper()

	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	suffix := uniqueSuffix()
	f := domain.Favorite{
		ID:         uuid.New(),
		UserID:     userID,
		Kind:       kind,
		ExternalID: "spotify:" + suffix,
		Name:       "Item " + suffix,
		CategoryID: categoryID,
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO favorites (id, user_id, entity_kind, external_id, display_name, category_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.UserID, string(f.Kind), f.ExternalID, f.Name, f.CategoryID, f.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFavorite: %v", err)
	}

	return f
}
