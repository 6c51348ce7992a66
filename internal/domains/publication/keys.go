package publication

import "fmt"

// Cache keys for resolved publications. The museum service invalidates
// these on slug, visibility and delete changes, so both sides must agree
// on the shape.
const SitemapCacheKey = "publication:sitemap"

// CacheKey addresses one resolved publication.
func CacheKey(username, slug string) string {
	return fmt.Sprintf("publication:%s:%s", username, slug)
}

// CacheKeyPattern matches every cached publication for a slug regardless
// of the owner's username.
func CacheKeyPattern(slug string) string {
	return fmt.Sprintf("publication:*:%s", slug)
}
