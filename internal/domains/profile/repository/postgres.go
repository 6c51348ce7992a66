package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	p "kunstkamera-backend/internal/domains/profile"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) p.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// GetByUserID retrieves a profile by its owning user id
func (r *postgresRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*p.Profile, error) {
	query := `
    SELECT user_id, username, full_name, avatar_url, updated_at
    FROM profiles
    WHERE user_id = $1
  `

	row := r.pool.QueryRow(ctx, query, userID)

	var prof p.Profile
	err := row.Scan(&prof.UserID, &prof.Username, &prof.FullName, &prof.AvatarURL, &prof.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, p.NewStoreError("load", err)
	}

	return &prof, nil
}

// Create inserts a new profile record
func (r *postgresRepository) Create(ctx context.Context, prof *p.Profile) (*p.Profile, error) {
	query := `
    INSERT INTO profiles (user_id, username, full_name, avatar_url, updated_at)
    VALUES ($1, $2, $3, $4, NOW())
    RETURNING user_id, username, full_name, avatar_url, updated_at
  `

	row := r.pool.QueryRow(ctx, query, prof.UserID, prof.Username, prof.FullName, prof.AvatarURL)

	var created p.Profile
	err := row.Scan(&created.UserID, &created.Username, &created.FullName, &created.AvatarURL, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, p.ErrUsernameTaken
		}
		return nil, p.NewStoreError("create", err)
	}

	return &created, nil
}

// Update applies a partial update. Only fields present in the payload enter
// the SET clause; an explicit null writes NULL.
func (r *postgresRepository) Update(ctx context.Context, userID uuid.UUID, req p.UpdateProfileRequest) (*p.Profile, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	if req.Username.Set {
		setClauses = append(setClauses, fmt.Sprintf("username = $%d", idx))
		args = append(args, req.Username.Ptr())
		idx++
	}
	if req.FullName.Set {
		setClauses = append(setClauses, fmt.Sprintf("full_name = $%d", idx))
		args = append(args, req.FullName.Ptr())
		idx++
	}
	if req.AvatarURL.Set {
		setClauses = append(setClauses, fmt.Sprintf("avatar_url = $%d", idx))
		args = append(args, req.AvatarURL.Ptr())
		idx++
	}

	args = append(args, userID)
	query := fmt.Sprintf(`
    UPDATE profiles
    SET %s
    WHERE user_id = $%d
    RETURNING user_id, username, full_name, avatar_url, updated_at
  `, strings.Join(setClauses, ", "), idx)

	row := r.pool.QueryRow(ctx, query, args...)

	var updated p.Profile
	err := row.Scan(&updated.UserID, &updated.Username, &updated.FullName, &updated.AvatarURL, &updated.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, p.ErrUsernameTaken
		}
		return nil, p.NewStoreError("update", err)
	}

	return &updated, nil
}

// ExistsByUsername checks whether another user already holds a username
func (r *postgresRepository) ExistsByUsername(ctx context.Context, username string, excludeUserID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM profiles WHERE username = $1 AND user_id != $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username, excludeUserID).Scan(&exists); err != nil {
		return false, p.NewStoreError("check", err)
	}

	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
