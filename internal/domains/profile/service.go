package profile

import (
	"context"

	"github.com/google/uuid"
)

// Service is the business logic contract for the profile domain.
type Service interface {
	// GetOrCreate returns the principal's profile, lazily creating it on
	// first fetch with a username derived from the account email.
	GetOrCreate(ctx context.Context, userID uuid.UUID, email, displayName string) (*Profile, error)

	// Update applies a PATCH payload for the owning principal.
	Update(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Profile, error)
}
