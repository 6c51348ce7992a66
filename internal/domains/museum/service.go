package museum

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the museum domain. The
// requester is the resolved principal; uuid.Nil means anonymous. Handlers
// behind the auth middleware always pass a real principal for mutations.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *CreateMuseumRequest) (*MuseumWithMeta, error)

	// GetByID applies existence hiding: a private museum is only visible to
	// its owner, everyone else gets ErrMuseumNotFound.
	GetByID(ctx context.Context, requesterID, id uuid.UUID) (*MuseumWithMeta, error)

	// List has two modes: targetUserID == requester (or nil) lists the
	// requester's own museums, any visibility; naming another user always
	// restricts to that user's public museums.
	List(ctx context.Context, requesterID uuid.UUID, targetUserID *uuid.UUID) ([]*MuseumWithMeta, error)

	Update(ctx context.Context, requesterID, id uuid.UUID, req UpdateMuseumRequest) (*MuseumWithMeta, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error

	Like(ctx context.Context, requesterID, id uuid.UUID) error
	Unlike(ctx context.Context, requesterID, id uuid.UUID) error
}
