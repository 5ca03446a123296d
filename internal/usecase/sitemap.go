package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"kamenpro-backend/internal/domain"
	"kamenpro-backend/pkg/logger"
	"kamenpro-backend/pkg/metrics"
	"kamenpro-backend/pkg/sitemap"
)

const DefaultSiteBaseURL = "https://kamenpro.net"

type page struct {
	path       string
	changeFreq domain.ChangeFreq
	priority   float64
	image      string
	imageTitle string
}

// staticPages are the site sections that exist regardless of the catalog.
var staticPages = []page{
	{"/", domain.ChangeDaily, 1.0, "/images/home/hero.png", "KamenPro - Kamene obloge za enterijer i eksterijer"},
	{"/o-nama", domain.ChangeMonthly, 0.8, "", ""},
	{"/proizvodi", domain.ChangeWeekly, 0.9, "", ""},
	{"/reference", domain.ChangeMonthly, 0.8, "", ""},
	{"/kontakt", domain.ChangeMonthly, 0.7, "", ""},
}

// fallbackLocations are written when the product source is unusable. They do
// not follow the catalog so the fallback document stays fixed.
var fallbackLocations = []page{
	{"/lokacije/bijeljina", domain.ChangeWeekly, 0.9, "/images/lokacije/bijeljina-og.jpg", "Dekorativni kamen Bijeljina - KamenPro"},
	{"/lokacije/brcko", domain.ChangeWeekly, 0.9, "/images/lokacije/brcko-og.jpg", "Dekorativni kamen Brčko - KamenPro"},
	{"/lokacije/tuzla", domain.ChangeWeekly, 0.9, "/images/lokacije/tuzla-og.jpg", "Dekorativni kamen Tuzla - KamenPro"},
}

type sitemapUsecase struct {
	baseURL   string
	locations domain.LocationCatalog
	source    domain.ProductSource
}

// NewSitemapUsecase builds the generator. A nil source always yields the
// fallback; a nil catalog uses the fixed location list.
func NewSitemapUsecase(baseURL string, locations domain.LocationCatalog, source domain.ProductSource) domain.SitemapUsecase {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultSiteBaseURL
	}
	return &sitemapUsecase{
		baseURL:   baseURL,
		locations: locations,
		source:    source,
	}
}

// Generate never fails: any problem with the product source selects the
// fallback entry list and is reported in Cause.
func (uc *sitemapUsecase) Generate(ctx context.Context, today time.Time) *domain.SitemapResult {
	day := today.Format(time.DateOnly)

	products, srcErr := uc.listProducts(ctx)
	if srcErr != nil {
		return &domain.SitemapResult{
			Source:  domain.SitemapFallback,
			Entries: FallbackEntries(uc.baseURL, today),
			Cause:   srcErr,
		}
	}

	entries := make([]domain.SitemapEntry, 0, len(staticPages)+len(products)+3)
	for _, p := range staticPages {
		entries = append(entries, uc.entry(p, day))
	}
	entries = append(entries, uc.locationEntries(day)...)
	for _, p := range products {
		entries = append(entries, uc.productEntry(p, day))
	}

	return &domain.SitemapResult{Source: domain.SitemapDynamic, Entries: entries}
}

func (uc *sitemapUsecase) listProducts(ctx context.Context) (products []domain.ProductPage, srcErr *domain.SitemapSourceError) {
	if uc.source == nil {
		return nil, &domain.SitemapSourceError{Source: "none", Err: errors.New("no product source configured")}
	}
	name := uc.source.Name()

	defer func() {
		if r := recover(); r != nil {
			products = nil
			srcErr = &domain.SitemapSourceError{Source: name, Err: fmt.Errorf("product source panicked: %v", r)}
		}
	}()

	products, err := uc.source.ListProductPages(ctx)
	if err != nil {
		return nil, &domain.SitemapSourceError{Source: name, Err: err}
	}
	if len(products) == 0 {
		return nil, &domain.SitemapSourceError{Source: name, Err: errors.New("product source returned no products")}
	}
	return products, nil
}

func (uc *sitemapUsecase) locationEntries(day string) []domain.SitemapEntry {
	if uc.locations == nil {
		out := make([]domain.SitemapEntry, 0, len(fallbackLocations))
		for _, p := range fallbackLocations {
			out = append(out, uc.entry(p, day))
		}
		return out
	}

	locs := uc.locations.All()
	out := make([]domain.SitemapEntry, 0, len(locs))
	for _, l := range locs {
		out = append(out, uc.entry(page{
			path:       "/lokacije/" + url.PathEscape(l.Slug),
			changeFreq: domain.ChangeWeekly,
			priority:   0.9,
			image:      l.OGImage,
			imageTitle: "Dekorativni kamen " + l.City + " - KamenPro",
		}, day))
	}
	return out
}

func (uc *sitemapUsecase) productEntry(p domain.ProductPage, day string) domain.SitemapEntry {
	lastMod := day
	if !p.UpdatedAt.IsZero() {
		lastMod = p.UpdatedAt.UTC().Format(time.DateOnly)
	}

	e := domain.SitemapEntry{
		Loc:        uc.baseURL + "/proizvodi/" + url.PathEscape(p.ID),
		LastMod:    lastMod,
		ChangeFreq: domain.ChangeWeekly,
		Priority:   0.8,
	}
	if p.ImageURL != "" {
		title := p.ImageTitle
		if title == "" {
			title = p.Name + " - KamenPro"
		}
		e.Images = []domain.SitemapImage{{Loc: uc.absolute(p.ImageURL), Title: title}}
	}
	return e
}

func (uc *sitemapUsecase) entry(p page, day string) domain.SitemapEntry {
	e := domain.SitemapEntry{
		Loc:        uc.absolute(p.path),
		LastMod:    day,
		ChangeFreq: p.changeFreq,
		Priority:   p.priority,
	}
	if p.image != "" {
		e.Images = []domain.SitemapImage{{Loc: uc.absolute(p.image), Title: p.imageTitle}}
	}
	return e
}

func (uc *sitemapUsecase) absolute(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	if ref == "/" {
		return uc.baseURL + "/"
	}
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return uc.baseURL + ref
}

// FallbackEntries is the fixed sitemap written when no product list is
// available: five site sections and three location pages dated today.
func FallbackEntries(baseURL string, today time.Time) []domain.SitemapEntry {
	uc := &sitemapUsecase{baseURL: strings.TrimRight(baseURL, "/")}
	if uc.baseURL == "" {
		uc.baseURL = DefaultSiteBaseURL
	}
	day := today.Format(time.DateOnly)

	entries := make([]domain.SitemapEntry, 0, len(staticPages)+len(fallbackLocations))
	for _, p := range staticPages {
		entries = append(entries, uc.entry(p, day))
	}
	for _, p := range fallbackLocations {
		entries = append(entries, uc.entry(p, day))
	}
	return entries
}

// Publish generates the sitemap and atomically replaces the file at path.
// Only rendering and writing errors are returned.
func (uc *sitemapUsecase) Publish(ctx context.Context, today time.Time, path string) (*domain.SitemapResult, error) {
	res := uc.Generate(ctx, today)

	data, err := sitemap.Render(res.Entries)
	if err != nil {
		return res, fmt.Errorf("failed to render sitemap: %w", err)
	}
	if err := sitemap.WriteFile(path, data); err != nil {
		return res, fmt.Errorf("failed to write sitemap: %w", err)
	}

	metrics.SitemapGenerations.WithLabelValues(string(res.Source)).Inc()
	if res.Cause != nil {
		logger.Log.Warn("Sitemap written from fallback list",
			"source", res.Cause.Source,
			"error", res.Cause.Err,
			"path", path,
			"urls", len(res.Entries),
		)
	} else {
		logger.Log.Info("Sitemap written from product source",
			"source", uc.source.Name(),
			"path", path,
			"urls", len(res.Entries),
		)
	}
	return res, nil
}
