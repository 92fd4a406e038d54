// Package searchconsole provides a sitemaps.Client implementation backed by
// the Google Search Console API.
package searchconsole

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sitemapper/pkg/domain"
	"sitemapper/pkg/serrors"
	"sitemapper/pkg/sitemaps"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	searchconsole "google.golang.org/api/searchconsole/v1"
)

// Client talks to the Search Console sitemaps resource through the generated
// API service and fulfills the sitemaps.Client interface. It is safe for
// concurrent use.
type Client struct {
	svc *searchconsole.Service
}

// New constructs a Client from the given client options. Production callers
// pass a token source obtained from LoadCredentials; tests pass an endpoint
// override and disable authentication.
func New(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := searchconsole.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create search console service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// Submit registers feedpath as a sitemap of siteURL.
func (c *Client) Submit(ctx context.Context, siteURL, feedpath string) error {
	// https://developers.google.com/webmaster-tools/v1/sitemaps/submit
	if err := c.svc.Sitemaps.Submit(siteURL, feedpath).Context(ctx).Do(); err != nil {
		return mapAPIError(err, "could not submit sitemap")
	}

	return nil
}

// Get fetches the registration entry for feedpath on siteURL.
func (c *Client) Get(ctx context.Context, siteURL, feedpath string) (*domain.Sitemap, error) {
	// https://developers.google.com/webmaster-tools/v1/sitemaps/get
	wmx, err := c.svc.Sitemaps.Get(siteURL, feedpath).Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError(err, "could not get sitemap")
	}

	sm, err := toDomain(wmx)
	if err != nil {
		return nil, fmt.Errorf("could not decode sitemap entry: %w", err)
	}

	return &sm, nil
}

// List returns all sitemaps registered for siteURL. The API returns the full
// set in one response.
func (c *Client) List(ctx context.Context, siteURL string) ([]domain.Sitemap, error) {
	// https://developers.google.com/webmaster-tools/v1/sitemaps/list
	resp, err := c.svc.Sitemaps.List(siteURL).Context(ctx).Do()
	if err != nil {
		return nil, mapAPIError(err, "could not list sitemaps")
	}

	out := make([]domain.Sitemap, 0, len(resp.Sitemap))
	for _, wmx := range resp.Sitemap {
		sm, err := toDomain(wmx)
		if err != nil {
			return nil, fmt.Errorf("could not decode sitemap entry: %w", err)
		}
		out = append(out, sm)
	}

	return out, nil
}

// Delete removes the registration of feedpath from siteURL.
func (c *Client) Delete(ctx context.Context, siteURL, feedpath string) error {
	// https://developers.google.com/webmaster-tools/v1/sitemaps/delete
	if err := c.svc.Sitemaps.Delete(siteURL, feedpath).Context(ctx).Do(); err != nil {
		return mapAPIError(err, "could not delete sitemap")
	}

	return nil
}

// toDomain converts a generated WmxSitemap into the domain representation.
// Timestamps are RFC 3339; empty strings map to the zero time.
func toDomain(wmx *searchconsole.WmxSitemap) (domain.Sitemap, error) {
	parse := func(s string) (time.Time, error) {
		if s == "" {
			return time.Time{}, nil
		}

		return time.Parse(time.RFC3339, s)
	}

	lastSubmitted, err := parse(wmx.LastSubmitted)
	if err != nil {
		return domain.Sitemap{}, fmt.Errorf("could not parse lastSubmitted: %w", err)
	}
	lastDownloaded, err := parse(wmx.LastDownloaded)
	if err != nil {
		return domain.Sitemap{}, fmt.Errorf("could not parse lastDownloaded: %w", err)
	}

	typ := domain.SitemapType(wmx.Type)
	if wmx.IsSitemapsIndex {
		typ = domain.SitemapTypeIndex
	}

	sm := domain.Sitemap{
		Path:           wmx.Path,
		Type:           typ,
		Pending:        wmx.IsPending,
		Warnings:       wmx.Warnings,
		Errors:         wmx.Errors,
		LastSubmitted:  lastSubmitted,
		LastDownloaded: lastDownloaded,
	}
	for _, c := range wmx.Contents {
		sm.Contents = append(sm.Contents, domain.SitemapContent{
			Type:      c.Type,
			Submitted: c.Submitted,
			Indexed:   c.Indexed,
		})
	}

	return sm, nil
}

// mapAPIError classifies a googleapi error onto a serrors kind where the HTTP
// status has a clear semantic, and wraps everything else unchanged.
func mapAPIError(err error, msg string) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case 401:
			return serrors.Wrap(serrors.ErrUnauthorized, err, "%s", msg)
		case 403:
			return serrors.Wrap(serrors.ErrForbidden, err, "%s", msg)
		case 404:
			return serrors.Wrap(serrors.ErrNotFound, err, "%s", msg)
		case 429:
			return serrors.Wrap(serrors.ErrRateLimited, err, "%s", msg)
		}
		if gerr.Code >= 500 {
			return serrors.Wrap(serrors.ErrInternal, err, "%s", msg)
		}
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// Ensure Client conforms to the sitemaps.Client interface at compile time.
var _ sitemaps.Client = (*Client)(nil)
