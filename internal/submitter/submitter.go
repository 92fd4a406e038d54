// Package submitter coordinates sitemap operations for the single configured
// site: it validates the property URL, derives the sitemap URL, and delegates
// the actual API calls to a sitemaps client.
package submitter

import (
	"context"
	"fmt"
	"sitemapper/internal/config"
	"sitemapper/pkg/domain"
	"sitemapper/pkg/logger"
	"sitemapper/pkg/serrors"
	"sitemapper/pkg/sitemaps"

	"go.uber.org/zap"
)

// Options identify the site and feed path all operations act on.
// These settings are typically derived from application configuration.
type Options struct {
	// SiteURL is the Search Console property URL, without a trailing slash.
	SiteURL string
	// FeedPath is the sitemap file path appended to SiteURL.
	FeedPath string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SiteURL:  cfg.Site.URL,
		FeedPath: cfg.Site.FeedPath,
	}
}

// submitter is the concrete implementation of the Submitter interface.
type submitter struct {
	// options holds the site identity all operations are scoped to.
	options Options
	// client is the search console backend performing the API calls.
	client sitemaps.Client
}

// New constructs a Submitter bound to the given client and options.
func New(client sitemaps.Client, options Options) Submitter {
	return submitter{options: options, client: client}
}

// Submit derives the sitemap URL from the configured site URL and registers
// it with the search console. It issues exactly one API call.
func (s submitter) Submit(ctx context.Context) (string, error) {
	sitemapURL, err := s.sitemapURL()
	if err != nil {
		return "", err
	}

	logger.Debug(ctx, "submitting sitemap", zap.String("sitemapUrl", sitemapURL))
	if err := s.client.Submit(ctx, s.options.SiteURL, sitemapURL); err != nil {
		return "", fmt.Errorf("could not submit sitemap: %w", err)
	}

	return sitemapURL, nil
}

// Status fetches the registration entry for the site's sitemap.
func (s submitter) Status(ctx context.Context) (*domain.Sitemap, error) {
	sitemapURL, err := s.sitemapURL()
	if err != nil {
		return nil, err
	}

	sm, err := s.client.Get(ctx, s.options.SiteURL, sitemapURL)
	if err != nil {
		return nil, fmt.Errorf("could not fetch sitemap status: %w", err)
	}

	return sm, nil
}

// List returns all sitemaps registered for the site.
func (s submitter) List(ctx context.Context) ([]domain.Sitemap, error) {
	if err := ValidateSiteURL(s.options.SiteURL); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid site URL")
	}

	sms, err := s.client.List(ctx, s.options.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("could not list sitemaps: %w", err)
	}

	return sms, nil
}

// Delete removes the site's sitemap registration.
func (s submitter) Delete(ctx context.Context) error {
	sitemapURL, err := s.sitemapURL()
	if err != nil {
		return err
	}

	if err := s.client.Delete(ctx, s.options.SiteURL, sitemapURL); err != nil {
		return fmt.Errorf("could not delete sitemap: %w", err)
	}

	return nil
}

// sitemapURL validates the configured site URL and derives the sitemap URL
// from it. Validation happens before any network use.
func (s submitter) sitemapURL() (string, error) {
	if err := ValidateSiteURL(s.options.SiteURL); err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid site URL")
	}

	return SitemapURL(s.options.SiteURL, s.options.FeedPath), nil
}
