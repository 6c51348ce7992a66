package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"kunstkamera-backend/internal/domains/artifact"
	"kunstkamera-backend/internal/domains/profile"
	pub "kunstkamera-backend/internal/domains/publication"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) pub.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

// GetPublished resolves a public museum page in two steps: username to
// owner, then (slug, owner, is_public) to the museum. All three predicates
// sit in the museum query so every miss looks the same.
func (r *postgresRepository) GetPublished(ctx context.Context, username, slug string) (*pub.PublishedMuseum, error) {
	ownerQuery := `SELECT user_id, username, full_name, avatar_url, updated_at FROM profiles WHERE username = $1`

	var owner profile.Profile
	err := r.pool.QueryRow(ctx, ownerQuery, username).Scan(
		&owner.UserID, &owner.Username, &owner.FullName, &owner.AvatarURL, &owner.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	museumQuery := `
    SELECT
      m.id, m.user_id, m.title, m.slug, m.description, m.cover_image_url,
      m.is_public, m.layout_type, m.created_at, m.updated_at,
      (SELECT COUNT(*) FROM museum_likes l WHERE l.museum_id = m.id)
    FROM museums m
    WHERE m.slug = $1 AND m.user_id = $2 AND m.is_public = true
  `

	var snap pub.PublishedMuseum
	err = r.pool.QueryRow(ctx, museumQuery, slug, owner.UserID).Scan(
		&snap.ID, &snap.UserID, &snap.Title, &snap.Slug, &snap.Description,
		&snap.CoverImageURL, &snap.IsPublic, &snap.LayoutType,
		&snap.CreatedAt, &snap.UpdatedAt, &snap.LikesCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	snap.Owner = &owner
	snap.Artifacts = []*artifact.Artifact{}

	artifactQuery := `
    SELECT id, museum_id, title, description, artifact_type, content_url, file_metadata, order_index, created_at, updated_at
    FROM artifacts
    WHERE museum_id = $1
    ORDER BY order_index ASC, created_at ASC
  `

	rows, err := r.pool.Query(ctx, artifactQuery, snap.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var art artifact.Artifact
		err := rows.Scan(
			&art.ID, &art.MuseumID, &art.Title, &art.Description,
			&art.ArtifactType, &art.ContentURL, &art.FileMetadata,
			&art.OrderIndex, &art.CreatedAt, &art.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		snap.Artifacts = append(snap.Artifacts, &art)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &snap, nil
}

// ListPublic returns sitemap entries. Museums whose owner has no username
// have no public URL and are skipped.
func (r *postgresRepository) ListPublic(ctx context.Context, limit int) ([]*pub.PublicEntry, error) {
	query := `
    SELECT p.username, m.slug, m.updated_at
    FROM museums m
    JOIN profiles p ON p.user_id = m.user_id
    WHERE m.is_public = true AND p.username IS NOT NULL
    ORDER BY m.updated_at DESC
    LIMIT $1
  `

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*pub.PublicEntry
	for rows.Next() {
		var e pub.PublicEntry
		if err := rows.Scan(&e.Username, &e.Slug, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
