package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	m "kunstkamera-backend/internal/domains/museum"
	"kunstkamera-backend/internal/domains/profile"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) m.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

const museumColumns = `id, user_id, title, slug, description, cover_image_url, is_public, layout_type, created_at, updated_at`

// metaSelect joins the owner profile and the card counters. The profile may
// not exist yet (it is created lazily), hence the LEFT JOIN.
const metaSelect = `
    SELECT
      ms.id, ms.user_id, ms.title, ms.slug, ms.description, ms.cover_image_url,
      ms.is_public, ms.layout_type, ms.created_at, ms.updated_at,
      p.user_id, p.username, p.full_name, p.avatar_url, p.updated_at,
      (SELECT COUNT(*) FROM artifacts a WHERE a.museum_id = ms.id),
      (SELECT COUNT(*) FROM museum_likes l WHERE l.museum_id = ms.id)
    FROM museums ms
    LEFT JOIN profiles p ON p.user_id = ms.user_id
  `

// Create inserts a new museum record
func (r *postgresRepository) Create(ctx context.Context, mus *m.Museum) (*m.Museum, error) {
	query := `
    INSERT INTO museums (id, user_id, title, slug, description, cover_image_url, is_public, layout_type, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    RETURNING ` + museumColumns

	row := r.pool.QueryRow(
		ctx, query,
		mus.ID, mus.UserID, mus.Title, mus.Slug, mus.Description,
		mus.CoverImageURL, mus.IsPublic, mus.LayoutType,
	)

	var created m.Museum
	err := scanMuseum(row, &created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, m.ErrSlugTaken
		}
		return nil, m.NewStoreError("create", err)
	}

	return &created, nil
}

// GetByID retrieves a museum by ID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*m.Museum, error) {
	query := `SELECT ` + museumColumns + ` FROM museums WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var mus m.Museum
	if err := scanMuseum(row, &mus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, m.NewStoreError("load", err)
	}

	return &mus, nil
}

// GetWithMetaByID retrieves a museum with owner profile and counters
func (r *postgresRepository) GetWithMetaByID(ctx context.Context, id uuid.UUID) (*m.MuseumWithMeta, error) {
	query := metaSelect + ` WHERE ms.id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	meta, err := scanMuseumWithMeta(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, m.NewStoreError("load", err)
	}

	return meta, nil
}

// ListByOwner retrieves a user's museums, newest first
func (r *postgresRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]*m.MuseumWithMeta, error) {
	query := metaSelect + ` WHERE ms.user_id = $1`
	if publicOnly {
		query += ` AND ms.is_public = true`
	}
	query += ` ORDER BY ms.created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, m.NewStoreError("list", err)
	}
	defer rows.Close()

	var museums []*m.MuseumWithMeta
	for rows.Next() {
		meta, err := scanMuseumWithMeta(rows)
		if err != nil {
			return nil, m.NewStoreError("list", err)
		}
		museums = append(museums, meta)
	}

	if err = rows.Err(); err != nil {
		return nil, m.NewStoreError("list", err)
	}

	return museums, nil
}

// Update applies a partial update. Only fields present in the payload enter
// the SET clause. user_id is never part of the update set.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req m.UpdateMuseumRequest) (*m.MuseumWithMeta, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	if req.Title.Set {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", idx))
		args = append(args, req.Title.Value)
		idx++
	}
	if req.Slug.Set {
		setClauses = append(setClauses, fmt.Sprintf("slug = $%d", idx))
		args = append(args, req.Slug.Value)
		idx++
	}
	if req.Description.Set {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", idx))
		args = append(args, req.Description.Ptr())
		idx++
	}
	if req.CoverImageURL.Set {
		setClauses = append(setClauses, fmt.Sprintf("cover_image_url = $%d", idx))
		args = append(args, req.CoverImageURL.Ptr())
		idx++
	}
	if req.IsPublic.Set {
		setClauses = append(setClauses, fmt.Sprintf("is_public = $%d", idx))
		args = append(args, req.IsPublic.Value)
		idx++
	}
	if req.LayoutType.Set {
		setClauses = append(setClauses, fmt.Sprintf("layout_type = $%d", idx))
		args = append(args, req.LayoutType.Value)
		idx++
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE museums SET %s WHERE id = $%d`, strings.Join(setClauses, ", "), idx)

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, m.ErrSlugTaken
		}
		return nil, m.NewStoreError("update", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}

	return r.GetWithMetaByID(ctx, id)
}

// Delete removes a museum; the artifacts cascade at the store level
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM museums WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return m.NewStoreError("delete", err)
	}
	if result.RowsAffected() == 0 {
		return m.ErrMuseumNotFound
	}

	return nil
}

// ExistsBySlug checks whether a slug is already used by another museum
func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM museums WHERE slug = $1 AND id != $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, m.NewStoreError("check", err)
	}

	return exists, nil
}

// AddLike records a like (idempotent)
func (r *postgresRepository) AddLike(ctx context.Context, museumID, userID uuid.UUID) error {
	query := `
    INSERT INTO museum_likes (museum_id, user_id, created_at)
    VALUES ($1, $2, NOW())
    ON CONFLICT (museum_id, user_id) DO NOTHING
  `

	if _, err := r.pool.Exec(ctx, query, museumID, userID); err != nil {
		return m.NewStoreError("like", err)
	}
	return nil
}

// RemoveLike removes a like (idempotent)
func (r *postgresRepository) RemoveLike(ctx context.Context, museumID, userID uuid.UUID) error {
	query := `DELETE FROM museum_likes WHERE museum_id = $1 AND user_id = $2`

	if _, err := r.pool.Exec(ctx, query, museumID, userID); err != nil {
		return m.NewStoreError("unlike", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMuseum(row rowScanner, mus *m.Museum) error {
	return row.Scan(
		&mus.ID, &mus.UserID, &mus.Title, &mus.Slug, &mus.Description,
		&mus.CoverImageURL, &mus.IsPublic, &mus.LayoutType,
		&mus.CreatedAt, &mus.UpdatedAt,
	)
}

func scanMuseumWithMeta(row rowScanner) (*m.MuseumWithMeta, error) {
	var meta m.MuseumWithMeta
	var ownerID *uuid.UUID
	var ownerUsername, ownerFullName, ownerAvatarURL *string
	var ownerUpdatedAt *time.Time

	err := row.Scan(
		&meta.ID, &meta.UserID, &meta.Title, &meta.Slug, &meta.Description,
		&meta.CoverImageURL, &meta.IsPublic, &meta.LayoutType,
		&meta.CreatedAt, &meta.UpdatedAt,
		&ownerID, &ownerUsername, &ownerFullName, &ownerAvatarURL, &ownerUpdatedAt,
		&meta.ArtifactCount, &meta.LikesCount,
	)
	if err != nil {
		return nil, err
	}

	if ownerID != nil {
		meta.Owner = &profile.Profile{
			UserID:    *ownerID,
			Username:  ownerUsername,
			FullName:  ownerFullName,
			AvatarURL: ownerAvatarURL,
			UpdatedAt: *ownerUpdatedAt,
		}
	}

	return &meta, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
