// Package user implements the User repository using PostgreSQL.
package user

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

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, role, created_at, updated_at`

const (
	getByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	createSQL = `
INSERT INTO users (id, email, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

	setRoleSQL = `
UPDATE users SET role = $2, updated_at = now()
WHERE email = $1
RETURNING ` + userColumns
)

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by exact (case-sensitive) email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists if the email is already taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	role := u.Role
	if role == "" {
		role = domain.UserRoleUser
	}
	now := time.Now().UTC()

	created, err := scanUser(q.QueryRow(ctx, createSQL, id, u.Email, string(role), now, now))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return created, nil
}

// SetRoleByEmail changes the role of the user with the given email.
// Returns domain.ErrNotFound if no such user exists.
func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, setRoleSQL, email, string(role)))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
