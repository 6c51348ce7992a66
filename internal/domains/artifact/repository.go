package artifact

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the artifact domain.
type Repository interface {
	Create(ctx context.Context, a *Artifact) (*Artifact, error)

	// GetByID returns (nil, nil) when no artifact exists.
	GetByID(ctx context.Context, id uuid.UUID) (*Artifact, error)

	// ListByMuseum returns a museum's artifacts ordered by order_index
	// ascending.
	ListByMuseum(ctx context.Context, museumID uuid.UUID) ([]*Artifact, error)

	// Update applies the present fields of the patch. (nil, nil) when the
	// artifact is gone.
	Update(ctx context.Context, id uuid.UUID, req UpdateArtifactRequest) (*Artifact, error)

	// Delete returns ErrArtifactNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// MaxOrderIndex returns the highest order_index among a museum's
	// artifacts, 0 when the museum is empty.
	MaxOrderIndex(ctx context.Context, museumID uuid.UUID) (int, error)
}
