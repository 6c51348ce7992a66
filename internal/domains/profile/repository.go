package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the profile domain.
type Repository interface {
	// GetByUserID returns (nil, nil) when the principal has no profile yet.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// Create inserts a profile row. A username collision surfaces as
	// ErrUsernameTaken via the unique constraint.
	Create(ctx context.Context, p *Profile) (*Profile, error)

	// Update applies the present fields of the patch and returns the
	// updated row. Returns (nil, nil) when the profile does not exist.
	Update(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Profile, error)

	// ExistsByUsername is the fast-path pre-check for username collisions,
	// excluding the requesting principal's own row.
	ExistsByUsername(ctx context.Context, username string, excludeUserID uuid.UUID) (bool, error)
}
