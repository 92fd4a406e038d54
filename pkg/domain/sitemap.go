package domain

import "time"

// SitemapType describes the kind of sitemap registered for a site, as
// reported by the search console.
type SitemapType string

const (
	// SitemapTypeSitemap is a regular urlset sitemap.
	SitemapTypeSitemap SitemapType = "sitemap"
	// SitemapTypeIndex is a sitemap index referencing other sitemaps.
	SitemapTypeIndex SitemapType = "sitemapIndex"
	// SitemapTypeRSSFeed is an RSS feed submitted as a sitemap.
	SitemapTypeRSSFeed SitemapType = "rssFeed"
	// SitemapTypeAtomFeed is an Atom feed submitted as a sitemap.
	SitemapTypeAtomFeed SitemapType = "atomFeed"
)

// SitemapContent summarizes one content type (web pages, images, videos)
// inside a registered sitemap.
type SitemapContent struct {
	// Type is the content type this entry counts (e.g. "web", "image").
	Type string `json:"type"`
	// Submitted is the number of URLs of this type listed in the sitemap.
	Submitted int64 `json:"submitted"`
	// Indexed is the number of those URLs the search engine has indexed.
	Indexed int64 `json:"indexed"`
}

// Sitemap represents a sitemap registration for a site as known to the
// search console, including its processing state.
type Sitemap struct {
	// Path is the full URL of the sitemap resource.
	Path string `json:"path"`
	// Type is the detected kind of the sitemap.
	Type SitemapType `json:"type"`

	// Pending reports whether the sitemap has been submitted but not yet
	// processed.
	Pending bool `json:"pending"`
	// Warnings is the number of warnings the processor recorded.
	Warnings int64 `json:"warnings"`
	// Errors is the number of errors the processor recorded.
	Errors int64 `json:"errors"`

	// Contents breaks the sitemap down per content type.
	Contents []SitemapContent `json:"contents,omitempty"`

	// LastSubmitted is the time the sitemap was last submitted; zero value
	// means unknown.
	LastSubmitted time.Time `json:"lastSubmitted"`
	// LastDownloaded is the time the search engine last fetched the sitemap;
	// zero value means it has not been fetched yet.
	LastDownloaded time.Time `json:"lastDownloaded"`
}
