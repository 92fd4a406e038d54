package submitter

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateSiteURL checks that a Search Console property URL is usable for
// sitemap URL derivation.
//
// The rules are intentionally strict:
//   - Must parse as an absolute URL with an http or https scheme and a host
//   - No query string and no fragment
//   - No trailing slash (the sitemap path is appended with its own "/")
//
// Domain properties ("sc-domain:example.com") are rejected because a sitemap
// URL cannot be derived from them by concatenation.
func ValidateSiteURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("site URL is empty")
	}
	if strings.HasPrefix(raw, "sc-domain:") {
		return fmt.Errorf("domain properties are not supported: %s", raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("could not parse site URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("site URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("site URL has no host: %s", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("site URL must not contain a query or fragment: %s", raw)
	}
	if strings.HasSuffix(raw, "/") {
		return fmt.Errorf("site URL must not end with a slash: %s", raw)
	}

	return nil
}

// SitemapURL derives the full sitemap URL for a site by joining the property
// URL and the feed path with a single "/". For siteURL "https://example.com"
// and feedPath "sitemap.xml" the result is
// "https://example.com/sitemap.xml".
func SitemapURL(siteURL, feedPath string) string {
	return siteURL + "/" + feedPath
}
