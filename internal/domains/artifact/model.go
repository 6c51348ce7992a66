package artifact

import (
	"time"

	"github.com/google/uuid"
)

type ArtifactTypeEnum string

const (
	ArtifactTypeImage ArtifactTypeEnum = "image"
	ArtifactTypeText  ArtifactTypeEnum = "text"
	ArtifactTypeLink  ArtifactTypeEnum = "link"
	ArtifactTypeVideo ArtifactTypeEnum = "video"
)

func (t ArtifactTypeEnum) IsValid() bool {
	switch t {
	case ArtifactTypeImage, ArtifactTypeText, ArtifactTypeLink, ArtifactTypeVideo:
		return true
	}
	return false
}

func (t ArtifactTypeEnum) String() string {
	return string(t)
}

// Artifact is one exhibit inside a museum. It carries no owner reference of
// its own; authorization always goes through the parent museum.
type Artifact struct {
	ID           uuid.UUID              `json:"id" db:"id"`
	MuseumID     uuid.UUID              `json:"museum_id" db:"museum_id"`
	Title        string                 `json:"title" db:"title"`
	Description  *string                `json:"description" db:"description"`
	ArtifactType ArtifactTypeEnum       `json:"artifact_type" db:"artifact_type"`
	ContentURL   *string                `json:"content_url" db:"content_url"`
	FileMetadata map[string]interface{} `json:"file_metadata" db:"file_metadata"`
	OrderIndex   int                    `json:"order_index" db:"order_index"`
	CreatedAt    time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at" db:"updated_at"`
}
