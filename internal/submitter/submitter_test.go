package submitter_test

import (
	"context"
	"errors"
	"sitemapper/internal/submitter"
	"testing"
	"time"

	mocksitemaps "sitemapper/pkg/sitemaps/mock"

	"go.uber.org/mock/gomock"

	"sitemapper/pkg/domain"
	"sitemapper/pkg/logger"
	"sitemapper/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

const (
	site    = "https://example.com"
	sitemap = "https://example.com/sitemap.xml"
)

func newTestSubmitter(t *testing.T, siteURL string) (*mocksitemaps.MockClient, submitter.Submitter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocksitemaps.NewMockClient(ctrl)
	s := submitter.New(client, submitter.Options{SiteURL: siteURL, FeedPath: "sitemap.xml"})

	return client, s
}

func TestSubmit_callsClientWithDerivedURL(t *testing.T) {
	client, s := newTestSubmitter(t, site)

	// exactly one call, carrying exactly the site URL and the derived sitemap URL
	client.EXPECT().Submit(gomock.Any(), site, sitemap).Times(1).Return(nil)

	got, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, sitemap, got)
}

func TestSubmit_invalidSiteURLSkipsClient(t *testing.T) {
	client, s := newTestSubmitter(t, "example.com")

	// client must not be touched when validation fails
	client.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestSubmit_propagatesClientError(t *testing.T) {
	client, s := newTestSubmitter(t, site)

	cause := errors.New("permission denied")
	client.EXPECT().Submit(gomock.Any(), site, sitemap).Return(cause)

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, cause)
}

func TestStatus_returnsClientEntry(t *testing.T) {
	client, s := newTestSubmitter(t, site)

	want := &domain.Sitemap{
		Path:          sitemap,
		Type:          domain.SitemapTypeSitemap,
		Pending:       true,
		LastSubmitted: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}
	client.EXPECT().Get(gomock.Any(), site, sitemap).Return(want, nil)

	got, err := s.Status(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestStatus_notFound(t *testing.T) {
	client, s := newTestSubmitter(t, site)

	client.EXPECT().Get(gomock.Any(), site, sitemap).
		Return(nil, serrors.With(serrors.ErrNotFound, "sitemap not registered"))

	_, err := s.Status(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestList_returnsClientEntries(t *testing.T) {
	client, s := newTestSubmitter(t, site)

	want := []domain.Sitemap{
		{Path: sitemap, Type: domain.SitemapTypeSitemap},
		{Path: site + "/news.xml", Type: domain.SitemapTypeIndex},
	}
	client.EXPECT().List(gomock.Any(), site).Return(want, nil)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDelete_callsClientWithDerivedURL(t *testing.T) {
	client, s := newTestSubmitter(t, site)

	client.EXPECT().Delete(gomock.Any(), site, sitemap).Times(1).Return(nil)

	require.NoError(t, s.Delete(context.Background()))
}

func TestDelete_invalidSiteURLSkipsClient(t *testing.T) {
	client, s := newTestSubmitter(t, "sc-domain:example.com")

	client.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.Delete(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
