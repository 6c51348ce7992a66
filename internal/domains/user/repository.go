package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the user domain.
type Repository interface {
	// Create inserts a new user. The unique constraint on email is the
	// authoritative duplicate check.
	Create(ctx context.Context, u *User) error

	// FindByID returns (nil, nil) when no user exists.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail returns (nil, nil) when no user exists. Used for login.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail is the fast-path duplicate pre-check for registration.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
