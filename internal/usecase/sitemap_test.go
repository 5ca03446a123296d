package usecase_test

import (
	"context"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"kamenpro-backend/internal/catalog"
	"kamenpro-backend/internal/domain"
	"kamenpro-backend/internal/usecase"
	"kamenpro-backend/pkg/metrics"
	"kamenpro-backend/pkg/sitemap"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductSource struct {
	mock.Mock
}

func (m *MockProductSource) ListProductPages(ctx context.Context) ([]domain.ProductPage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductPage), args.Error(1)
}

func (m *MockProductSource) Name() string {
	return "mock"
}

type panickingSource struct{}

func (panickingSource) ListProductPages(context.Context) ([]domain.ProductPage, error) {
	panic("driver exploded")
}

func (panickingSource) Name() string { return "panicking" }

var buildDay = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

func failingSource(err error) *MockProductSource {
	src := new(MockProductSource)
	src.On("ListProductPages", mock.Anything).Return(nil, err)
	return src
}

func emptySource() *MockProductSource {
	src := new(MockProductSource)
	src.On("ListProductPages", mock.Anything).Return([]domain.ProductPage{}, nil)
	return src
}

func TestSitemapFallback(t *testing.T) {
	want, err := sitemap.Render(usecase.FallbackEntries("https://kamenpro.net", buildDay))
	require.NoError(t, err)

	sources := map[string]domain.ProductSource{
		"unreachable": failingSource(errors.New("dial tcp: connection refused")),
		"timeout":     failingSource(context.DeadlineExceeded),
		"empty":       emptySource(),
		"panic":       panickingSource{},
		"none":        nil,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			uc := usecase.NewSitemapUsecase("https://kamenpro.net/", catalog.MustLocations(), src)
			res := uc.Generate(context.Background(), buildDay)

			assert.Equal(t, domain.SitemapFallback, res.Source)
			require.NotNil(t, res.Cause)

			got, err := sitemap.Render(res.Entries)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}

func TestFallbackEntries(t *testing.T) {
	entries := usecase.FallbackEntries("", buildDay)

	locs := make([]string, 0, len(entries))
	for _, e := range entries {
		locs = append(locs, e.Loc)
		assert.Equal(t, "2026-10-19", e.LastMod)
	}
	assert.Equal(t, []string{
		"https://kamenpro.net/",
		"https://kamenpro.net/o-nama",
		"https://kamenpro.net/proizvodi",
		"https://kamenpro.net/reference",
		"https://kamenpro.net/kontakt",
		"https://kamenpro.net/lokacije/bijeljina",
		"https://kamenpro.net/lokacije/brcko",
		"https://kamenpro.net/lokacije/tuzla",
	}, locs)

	assert.Equal(t, domain.ChangeDaily, entries[0].ChangeFreq)
	assert.Equal(t, 1.0, entries[0].Priority)
	require.Len(t, entries[0].Images, 1)
	assert.Equal(t, "https://kamenpro.net/images/home/hero.png", entries[0].Images[0].Loc)
	assert.Equal(t, "KamenPro - Kamene obloge za enterijer i eksterijer", entries[0].Images[0].Title)

	assert.Empty(t, entries[1].Images)
	assert.Equal(t, 0.7, entries[4].Priority)

	brcko := entries[6]
	assert.Equal(t, domain.ChangeWeekly, brcko.ChangeFreq)
	assert.Equal(t, 0.9, brcko.Priority)
	require.Len(t, brcko.Images, 1)
	assert.Equal(t, "https://kamenpro.net/images/lokacije/brcko-og.jpg", brcko.Images[0].Loc)
	assert.Equal(t, "Dekorativni kamen Brčko - KamenPro", brcko.Images[0].Title)
}

func TestFallbackDocumentIsWellFormed(t *testing.T) {
	data, err := sitemap.Render(usecase.FallbackEntries("https://kamenpro.net", buildDay))
	require.NoError(t, err)

	var doc struct {
		XMLName xml.Name
		Attrs   []xml.Attr `xml:",any,attr"`
		URLs    []struct {
			Loc string `xml:"loc"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(data, &doc))
	assert.Equal(t, "urlset", doc.XMLName.Local)
	assert.Len(t, doc.URLs, 8)

	namespaces := map[string]bool{}
	for _, a := range doc.Attrs {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			namespaces[a.Value] = true
		}
	}
	assert.True(t, namespaces[sitemap.NamespaceSitemap])
	assert.True(t, namespaces[sitemap.NamespaceXSI])
	assert.True(t, namespaces[sitemap.NamespaceImage])
}

func TestSitemapDynamic(t *testing.T) {
	src := new(MockProductSource)
	src.On("ListProductPages", mock.Anything).Return([]domain.ProductPage{
		{
			ID:         "12",
			Name:       "Rustik cigla",
			UpdatedAt:  time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC),
			ImageURL:   "https://cdn.kamenpro.net/rustik.jpg",
			ImageTitle: "Rustik cigla crvena",
		},
		{ID: "dolomit bijeli", Name: "Dolomit", ImageURL: "/images/proizvodi/dolomit.jpg"},
		{ID: "7", Name: "Bez slike"},
	}, nil)

	uc := usecase.NewSitemapUsecase("https://kamenpro.net", catalog.MustLocations(), src)
	res := uc.Generate(context.Background(), buildDay)

	assert.Equal(t, domain.SitemapDynamic, res.Source)
	assert.Nil(t, res.Cause)
	require.Len(t, res.Entries, 11)

	// Static sections and locations match the fallback list
	assert.Equal(t, usecase.FallbackEntries("https://kamenpro.net", buildDay), res.Entries[:8])

	p := res.Entries[8]
	assert.Equal(t, "https://kamenpro.net/proizvodi/12", p.Loc)
	assert.Equal(t, "2026-09-01", p.LastMod)
	assert.Equal(t, domain.ChangeWeekly, p.ChangeFreq)
	assert.Equal(t, 0.8, p.Priority)
	assert.Equal(t, []domain.SitemapImage{{Loc: "https://cdn.kamenpro.net/rustik.jpg", Title: "Rustik cigla crvena"}}, p.Images)

	p = res.Entries[9]
	assert.Equal(t, "https://kamenpro.net/proizvodi/dolomit%20bijeli", p.Loc)
	assert.Equal(t, "2026-10-19", p.LastMod)
	assert.Equal(t, []domain.SitemapImage{{Loc: "https://kamenpro.net/images/proizvodi/dolomit.jpg", Title: "Dolomit - KamenPro"}}, p.Images)

	assert.Empty(t, res.Entries[10].Images)
}

func TestSitemapPublish(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "public", "sitemap.xml")

	before := testutil.ToFloat64(metrics.SitemapGenerations.WithLabelValues("fallback"))

	uc := usecase.NewSitemapUsecase("", nil, failingSource(errors.New("db down")))
	res, err := uc.Publish(context.Background(), buildDay, path)
	require.NoError(t, err)
	assert.Equal(t, domain.SitemapFallback, res.Source)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.SitemapGenerations.WithLabelValues("fallback")))

	want, err := sitemap.Render(usecase.FallbackEntries(usecase.DefaultSiteBaseURL, buildDay))
	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	var cause *domain.SitemapSourceError
	require.True(t, errors.As(res.Cause, &cause))
	assert.EqualError(t, errors.Unwrap(res.Cause), "db down")
}

func TestSitemapPublishWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	uc := usecase.NewSitemapUsecase("", nil, nil)
	res, err := uc.Publish(context.Background(), buildDay, filepath.Join(blocker, "sitemap.xml"))
	assert.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, domain.SitemapFallback, res.Source)
}
