package museum

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the museum domain.
type Repository interface {
	// Create inserts a museum. A slug collision surfaces as ErrSlugTaken
	// via the global unique constraint (the authoritative check).
	Create(ctx context.Context, m *Museum) (*Museum, error)

	// GetByID returns (nil, nil) when no museum exists.
	GetByID(ctx context.Context, id uuid.UUID) (*Museum, error)

	// GetWithMetaByID returns the museum joined with its owner profile and
	// counters. (nil, nil) when absent.
	GetWithMetaByID(ctx context.Context, id uuid.UUID) (*MuseumWithMeta, error)

	// ListByOwner returns a user's museums ordered by created_at descending.
	// publicOnly restricts the result to is_public = true rows.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, publicOnly bool) ([]*MuseumWithMeta, error)

	// Update applies the present fields of the patch and returns the
	// updated row joined with meta. (nil, nil) when the museum is gone.
	Update(ctx context.Context, id uuid.UUID, req UpdateMuseumRequest) (*MuseumWithMeta, error)

	// Delete removes the museum; the store cascades to its artifacts.
	// Returns ErrMuseumNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsBySlug is the fast-path pre-check for slug collisions.
	ExistsBySlug(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)

	// AddLike records a like; duplicate likes are a no-op.
	AddLike(ctx context.Context, museumID, userID uuid.UUID) error

	// RemoveLike removes a like; absent likes are a no-op.
	RemoveLike(ctx context.Context, museumID, userID uuid.UUID) error
}
