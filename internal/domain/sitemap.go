package domain

import (
	"context"
	"time"
)

// ChangeFreq is the sitemap <changefreq> hint.
type ChangeFreq string

const (
	ChangeAlways  ChangeFreq = "always"
	ChangeHourly  ChangeFreq = "hourly"
	ChangeDaily   ChangeFreq = "daily"
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
	ChangeYearly  ChangeFreq = "yearly"
	ChangeNever   ChangeFreq = "never"
)

// SitemapImage is an <image:image> attached to a sitemap entry.
type SitemapImage struct {
	Loc     string
	Title   string
	Caption string
}

// SitemapEntry is one crawlable URL.
type SitemapEntry struct {
	Loc        string
	LastMod    string // YYYY-MM-DD
	ChangeFreq ChangeFreq
	Priority   float64 // 0..1
	Images     []SitemapImage
}

// ProductPage is a product detail page reported by a ProductSource.
type ProductPage struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	UpdatedAt  time.Time `yaml:"updated_at"`
	ImageURL   string    `yaml:"image_url"`
	ImageTitle string    `yaml:"image_title"`
}

// ProductSource lists the current product pages.
type ProductSource interface {
	ListProductPages(ctx context.Context) ([]ProductPage, error)
	Name() string
}

// SitemapSource tells which branch produced a sitemap.
type SitemapSource string

const (
	SitemapDynamic  SitemapSource = "dynamic"
	SitemapFallback SitemapSource = "fallback"
)

// SitemapResult is either Dynamic (entries built from the product source) or
// Fallback (the fixed entry list). Cause is set only for Fallback.
type SitemapResult struct {
	Source  SitemapSource
	Entries []SitemapEntry
	Cause   *SitemapSourceError
}

// SitemapUsecase builds and publishes the sitemap.
type SitemapUsecase interface {
	Generate(ctx context.Context, today time.Time) *SitemapResult
	Publish(ctx context.Context, today time.Time, path string) (*SitemapResult, error)
}
