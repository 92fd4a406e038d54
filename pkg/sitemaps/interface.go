// Package sitemaps defines the interface and data types used to register and
// inspect sitemaps on a webmaster/search-console backend.
package sitemaps

import (
	"context"
	"sitemapper/pkg/domain"
)

// Client is the abstraction over a search console sitemaps resource.
// Implementations register sitemap URLs for a site and report their
// processing state.
//
//go:generate mockgen -package mocksitemaps -source=interface.go -destination=mock/mocksitemaps.go *
type Client interface {
	// Submit registers feedpath as a sitemap of siteURL. Submitting an
	// already-registered sitemap is not an error; the backend re-queues it
	// for processing.
	Submit(ctx context.Context, siteURL, feedpath string) error
	// Get returns the registration entry for feedpath on siteURL.
	Get(ctx context.Context, siteURL, feedpath string) (*domain.Sitemap, error)
	// List returns all sitemaps registered for siteURL. The backend returns
	// the full set in a single response.
	List(ctx context.Context, siteURL string) ([]domain.Sitemap, error)
	// Delete removes the registration of feedpath from siteURL.
	Delete(ctx context.Context, siteURL, feedpath string) error
}
