package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the public-facing identity record, one per authenticated
// principal. Its primary key is the owning user's id.
type Profile struct {
	UserID    uuid.UUID `json:"id" db:"user_id"`
	Username  *string   `json:"username" db:"username"`
	FullName  *string   `json:"full_name" db:"full_name"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
