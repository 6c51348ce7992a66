package publication

import (
	"time"

	"kunstkamera-backend/internal/domains/artifact"
	"kunstkamera-backend/internal/domains/museum"
	"kunstkamera-backend/internal/domains/profile"
)

// PublishedMuseum is the public snapshot of a museum: the museum itself,
// its owner's profile and the artifacts in display order. Only public
// museums ever materialize as one.
type PublishedMuseum struct {
	museum.Museum
	Owner      *profile.Profile     `json:"owner,omitempty"`
	Artifacts  []*artifact.Artifact `json:"artifacts"`
	LikesCount int                  `json:"likes_count"`
}

// PublicEntry is one sitemap row.
type PublicEntry struct {
	Username  string    `json:"username"`
	Slug      string    `json:"slug"`
	UpdatedAt time.Time `json:"updated_at"`
}
