package museum

import (
	"time"

	"github.com/google/uuid"

	"kunstkamera-backend/internal/domains/profile"
)

type LayoutTypeEnum string

const (
	LayoutTypeGrid    LayoutTypeEnum = "grid"
	LayoutTypeMasonry LayoutTypeEnum = "masonry"
	LayoutTypeList    LayoutTypeEnum = "list"
)

func (l LayoutTypeEnum) IsValid() bool {
	switch l {
	case LayoutTypeGrid, LayoutTypeMasonry, LayoutTypeList:
		return true
	}
	return false
}

func (l LayoutTypeEnum) String() string {
	return string(l)
}

// Museum is a named collection of artifacts owned by exactly one user.
// UserID is immutable after creation; Slug is globally unique.
type Museum struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	UserID        uuid.UUID      `json:"user_id" db:"user_id"`
	Title         string         `json:"title" db:"title"`
	Slug          string         `json:"slug" db:"slug"`
	Description   *string        `json:"description" db:"description"`
	CoverImageURL *string        `json:"cover_image_url" db:"cover_image_url"`
	IsPublic      bool           `json:"is_public" db:"is_public"`
	LayoutType    LayoutTypeEnum `json:"layout_type" db:"layout_type"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// MuseumWithMeta is a museum row joined with its owner profile and the
// counters clients render on cards.
type MuseumWithMeta struct {
	Museum
	Owner         *profile.Profile `json:"owner,omitempty"`
	ArtifactCount int              `json:"artifact_count"`
	LikesCount    int              `json:"likes_count"`
}
