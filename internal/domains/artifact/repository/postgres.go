package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	a "kunstkamera-backend/internal/domains/artifact"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) a.Repository {
	return &postgresRepository{
		pool: pool,
	}
}

const artifactColumns = `id, museum_id, title, description, artifact_type, content_url, file_metadata, order_index, created_at, updated_at`

// Create inserts a new artifact record
func (r *postgresRepository) Create(ctx context.Context, art *a.Artifact) (*a.Artifact, error) {
	query := `
    INSERT INTO artifacts (id, museum_id, title, description, artifact_type, content_url, file_metadata, order_index, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
    RETURNING ` + artifactColumns

	row := r.pool.QueryRow(
		ctx, query,
		art.ID, art.MuseumID, art.Title, art.Description,
		art.ArtifactType, art.ContentURL, art.FileMetadata, art.OrderIndex,
	)

	var created a.Artifact
	if err := scanArtifact(row, &created); err != nil {
		return nil, a.NewStoreError("create", err)
	}

	return &created, nil
}

// GetByID retrieves an artifact by ID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*a.Artifact, error) {
	query := `SELECT ` + artifactColumns + ` FROM artifacts WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var art a.Artifact
	if err := scanArtifact(row, &art); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, a.NewStoreError("load", err)
	}

	return &art, nil
}

// ListByMuseum retrieves a museum's artifacts in display order
func (r *postgresRepository) ListByMuseum(ctx context.Context, museumID uuid.UUID) ([]*a.Artifact, error) {
	query := `SELECT ` + artifactColumns + ` FROM artifacts WHERE museum_id = $1 ORDER BY order_index ASC, created_at ASC`

	rows, err := r.pool.Query(ctx, query, museumID)
	if err != nil {
		return nil, a.NewStoreError("list", err)
	}
	defer rows.Close()

	var artifacts []*a.Artifact
	for rows.Next() {
		var art a.Artifact
		if err := scanArtifact(rows, &art); err != nil {
			return nil, a.NewStoreError("list", err)
		}
		artifacts = append(artifacts, &art)
	}

	if err = rows.Err(); err != nil {
		return nil, a.NewStoreError("list", err)
	}

	return artifacts, nil
}

// Update applies a partial update. museum_id never enters the SET clause.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, req a.UpdateArtifactRequest) (*a.Artifact, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	if req.Title.Set {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", idx))
		args = append(args, req.Title.Value)
		idx++
	}
	if req.Description.Set {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", idx))
		args = append(args, req.Description.Ptr())
		idx++
	}
	if req.ArtifactType.Set {
		setClauses = append(setClauses, fmt.Sprintf("artifact_type = $%d", idx))
		args = append(args, req.ArtifactType.Value)
		idx++
	}
	if req.ContentURL.Set {
		setClauses = append(setClauses, fmt.Sprintf("content_url = $%d", idx))
		args = append(args, req.ContentURL.Ptr())
		idx++
	}
	if req.FileMetadata.Set {
		setClauses = append(setClauses, fmt.Sprintf("file_metadata = $%d", idx))
		if req.FileMetadata.Valid {
			args = append(args, req.FileMetadata.Value)
		} else {
			args = append(args, nil)
		}
		idx++
	}
	if req.OrderIndex.Set {
		setClauses = append(setClauses, fmt.Sprintf("order_index = $%d", idx))
		args = append(args, req.OrderIndex.Value)
		idx++
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE artifacts SET %s WHERE id = $%d RETURNING `+artifactColumns,
		strings.Join(setClauses, ", "), idx,
	)

	row := r.pool.QueryRow(ctx, query, args...)

	var updated a.Artifact
	if err := scanArtifact(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, a.NewStoreError("update", err)
	}

	return &updated, nil
}

// Delete removes an artifact
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM artifacts WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return a.NewStoreError("delete", err)
	}
	if result.RowsAffected() == 0 {
		return a.ErrArtifactNotFound
	}

	return nil
}

// MaxOrderIndex returns the highest order_index in a museum, 0 when empty
func (r *postgresRepository) MaxOrderIndex(ctx context.Context, museumID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(order_index), 0) FROM artifacts WHERE museum_id = $1`

	var max int
	if err := r.pool.QueryRow(ctx, query, museumID).Scan(&max); err != nil {
		return 0, a.NewStoreError("count", err)
	}

	return max, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArtifact(row rowScanner, art *a.Artifact) error {
	return row.Scan(
		&art.ID, &art.MuseumID, &art.Title, &art.Description,
		&art.ArtifactType, &art.ContentURL, &art.FileMetadata,
		&art.OrderIndex, &art.CreatedAt, &art.UpdatedAt,
	)
}
