package submitter

import (
	"context"
	"sitemapper/pkg/domain"
)

// Submitter exposes the sitemap operations available for the configured site.
type Submitter interface {
	// Submit registers the site's sitemap and returns the derived sitemap URL.
	Submit(ctx context.Context) (string, error)
	// Status fetches the registration entry for the site's sitemap.
	Status(ctx context.Context) (*domain.Sitemap, error)
	// List returns all sitemaps registered for the site.
	List(ctx context.Context) ([]domain.Sitemap, error)
	// Delete removes the site's sitemap registration.
	Delete(ctx context.Context) error
}
