package publication

import "context"

// Service is the read path for published museums. No authentication enters
// here; everything it serves is public by construction.
type Service interface {
	// GetPublished returns (nil, nil) for anything that should look absent.
	GetPublished(ctx context.Context, username, slug string) (*PublishedMuseum, error)

	// Sitemap renders the XML sitemap of public museum pages.
	Sitemap(ctx context.Context) ([]byte, error)
}
