package artifact

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the artifact domain. Every
// mutation resolves ownership through the parent museum.
type Service interface {
	Create(ctx context.Context, requesterID uuid.UUID, req *CreateArtifactRequest) (*Artifact, error)
	GetByID(ctx context.Context, requesterID, id uuid.UUID) (*Artifact, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, req UpdateArtifactRequest) (*Artifact, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
}
