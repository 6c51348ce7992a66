package publication

import "context"

// Repository is the read-only data access contract for published museums.
type Repository interface {
	// GetPublished resolves (username, slug) to a public museum snapshot.
	// A missing username, a foreign slug or a private museum all come back
	// as (nil, nil); callers cannot tell the cases apart.
	GetPublished(ctx context.Context, username, slug string) (*PublishedMuseum, error)

	// ListPublic returns up to limit public museums with a named owner,
	// most recently updated first.
	ListPublic(ctx context.Context, limit int) ([]*PublicEntry, error)
}
