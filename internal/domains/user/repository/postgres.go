package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	u "kunstkamera-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) u.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// Create inserts a new user record
func (r *postgresRepository) Create(ctx context.Context, usr *u.User) error {
	query := `
    INSERT INTO users (id, email, password_hash, display_name, created_at, updated_at)
    VALUES ($1, $2, $3, $4, NOW(), NOW())
    RETURNING created_at, updated_at
  `

	row := r.pool.QueryRow(ctx, query, usr.ID, usr.Email, usr.PasswordHash, usr.DisplayName)

	if err := row.Scan(&usr.CreatedAt, &usr.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return u.ErrEmailAlreadyExists
		}
		return u.NewStoreError("create", err)
	}

	return nil
}

// FindByID retrieves a user by ID
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*u.User, error) {
	query := `
    SELECT id, email, password_hash, display_name, created_at, updated_at
    FROM users
    WHERE id = $1
  `

	row := r.pool.QueryRow(ctx, query, id)

	var usr u.User
	err := row.Scan(&usr.ID, &usr.Email, &usr.PasswordHash, &usr.DisplayName, &usr.CreatedAt, &usr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, u.NewStoreError("find", err)
	}

	return &usr, nil
}

// FindByEmail retrieves a user by email (login path)
func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*u.User, error) {
	query := `
    SELECT id, email, password_hash, display_name, created_at, updated_at
    FROM users
    WHERE email = $1
  `

	row := r.pool.QueryRow(ctx, query, email)

	var usr u.User
	err := row.Scan(&usr.ID, &usr.Email, &usr.PasswordHash, &usr.DisplayName, &usr.CreatedAt, &usr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, u.NewStoreError("find", err)
	}

	return &usr, nil
}

// ExistsByEmail checks whether an email is already registered
func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, u.NewStoreError("check", err)
	}

	return exists, nil
}
