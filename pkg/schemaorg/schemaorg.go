// Package schemaorg builds schema.org JSON-LD documents for the public site.
// Every builder is a pure function of its input.
package schemaorg

import (
	"strings"
	"time"

	"kamenpro-backend/internal/domain"
)

const (
	Context     = "https://schema.org"
	ContentType = "application/ld+json"

	DefaultBaseURL  = "https://kamenpro.net"
	DefaultCurrency = "BAM"
	brandName       = "KamenPro"
)

type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion,omitempty"`
	AddressCountry  string `json:"addressCountry"`
}

type GeoCoordinates struct {
	Type      string  `json:"@type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Place struct {
	Type             string `json:"@type"`
	Name             string `json:"name"`
	ContainedInPlace *Place `json:"containedInPlace,omitempty"`
}

type OpeningHoursSpecification struct {
	Type      string   `json:"@type"`
	DayOfWeek []string `json:"dayOfWeek"`
	Opens     string   `json:"opens"`
	Closes    string   `json:"closes"`
}

type LocalBusinessLD struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	ID                        string                      `json:"@id"`
	Name                      string                      `json:"name"`
	Description               string                      `json:"description"`
	URL                       string                      `json:"url"`
	Telephone                 string                      `json:"telephone,omitempty"`
	Email                     string                      `json:"email,omitempty"`
	Image                     string                      `json:"image,omitempty"`
	Address                   PostalAddress               `json:"address"`
	Geo                       GeoCoordinates              `json:"geo"`
	AreaServed                Place                       `json:"areaServed"`
	PriceRange                string                      `json:"priceRange"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification,omitempty"`
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// LocalBusiness describes the landing page of one catalog location.
func LocalBusiness(baseURL string, loc domain.Location) LocalBusinessLD {
	pageURL := Absolute(baseURL, "/lokacije/"+loc.Slug)

	ld := LocalBusinessLD{
		Context:     Context,
		Type:        "LocalBusiness",
		ID:          pageURL,
		Name:        brandName + " " + loc.City,
		Description: "Profesionalni dekorativni kamen i zidne obloge u " + loc.CityGenitive + ". Besplatna dostava i stručna montaža.",
		URL:         pageURL,
		Telephone:   loc.Phone,
		Email:       loc.Email,
		Address: PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: loc.City,
			AddressCountry:  "BA",
		},
		Geo: GeoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  loc.Coordinates.Lat,
			Longitude: loc.Coordinates.Lng,
		},
		AreaServed: Place{
			Type:             "City",
			Name:             loc.City,
			ContainedInPlace: &Place{Type: "Country", Name: "Bosnia and Herzegovina"},
		},
		PriceRange: "$$",
	}
	if loc.OGImage != "" {
		ld.Image = Absolute(baseURL, loc.OGImage)
	}

	if spec, ok := openingHours(loc.Hours.Weekdays, weekdays...); ok {
		ld.OpeningHoursSpecification = append(ld.OpeningHoursSpecification, spec)
	}
	if spec, ok := openingHours(loc.Hours.Saturday, "Saturday"); ok {
		ld.OpeningHoursSpecification = append(ld.OpeningHoursSpecification, spec)
	}
	if spec, ok := openingHours(loc.Hours.Sunday, "Sunday"); ok {
		ld.OpeningHoursSpecification = append(ld.OpeningHoursSpecification, spec)
	}
	return ld
}

// openingHours parses "08:00 - 17:00". Anything else ("Zatvoreno") means closed.
func openingHours(span string, days ...string) (OpeningHoursSpecification, bool) {
	opens, closes, ok := strings.Cut(span, "-")
	if !ok {
		return OpeningHoursSpecification{}, false
	}
	opens, closes = strings.TrimSpace(opens), strings.TrimSpace(closes)
	if !isClock(opens) || !isClock(closes) {
		return OpeningHoursSpecification{}, false
	}
	return OpeningHoursSpecification{
		Type:      "OpeningHoursSpecification",
		DayOfWeek: days,
		Opens:     opens,
		Closes:    closes,
	}, true
}

func isClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

type Brand struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type Offer struct {
	Type            string `json:"@type"`
	URL             string `json:"url,omitempty"`
	PriceCurrency   string `json:"priceCurrency"`
	Price           string `json:"price"`
	PriceValidUntil string `json:"priceValidUntil,omitempty"`
	Availability    string `json:"availability"`
	Seller          Brand  `json:"seller"`
}

type ProductLD struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Brand       Brand  `json:"brand"`
	Category    string `json:"category"`
	SKU         string `json:"sku,omitempty"`
	Material    string `json:"material,omitempty"`
	Offers      *Offer `json:"offers,omitempty"`
}

// ProductInfo is what a product page knows about itself. Price is optional;
// without it no offer is emitted.
type ProductInfo struct {
	ID          string
	Name        string
	Description string
	Image       string
	SKU         string
	Material    string
	Price       string
	Currency    string
	ValidUntil  time.Time
}

// ProductInfoFromPage maps a product source record.
func ProductInfoFromPage(p domain.ProductPage) ProductInfo {
	return ProductInfo{ID: p.ID, Name: p.Name, Image: p.ImageURL}
}

// Product describes one product detail page.
func Product(baseURL string, p ProductInfo) ProductLD {
	ld := ProductLD{
		Context:     Context,
		Type:        "Product",
		Name:        p.Name,
		Description: p.Description,
		Brand:       Brand{Type: "Brand", Name: brandName},
		Category:    "Dekorativni kamen",
		SKU:         p.SKU,
		Material:    p.Material,
	}
	if p.Image != "" {
		ld.Image = Absolute(baseURL, p.Image)
	}
	if p.Price != "" {
		currency := p.Currency
		if currency == "" {
			currency = DefaultCurrency
		}
		offer := &Offer{
			Type:          "Offer",
			PriceCurrency: currency,
			Price:         p.Price,
			Availability:  "https://schema.org/InStock",
			Seller:        Brand{Type: "Organization", Name: brandName},
		}
		if p.ID != "" {
			offer.URL = Absolute(baseURL, "/proizvodi/"+p.ID)
		}
		if !p.ValidUntil.IsZero() {
			offer.PriceValidUntil = p.ValidUntil.Format(time.DateOnly)
		}
		ld.Offers = offer
	}
	return ld
}

type Crumb struct {
	Name string
	URL  string
}

type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type BreadcrumbListLD struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// BreadcrumbList numbers the crumbs from 1 and makes relative URLs absolute.
func BreadcrumbList(baseURL string, crumbs []Crumb) BreadcrumbListLD {
	ld := BreadcrumbListLD{
		Context:         Context,
		Type:            "BreadcrumbList",
		ItemListElement: make([]ListItem, 0, len(crumbs)),
	}
	for i, c := range crumbs {
		ld.ItemListElement = append(ld.ItemListElement, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Name,
			Item:     Absolute(baseURL, c.URL),
		})
	}
	return ld
}

// LocationBreadcrumbs is the trail shown on a location landing page.
func LocationBreadcrumbs(baseURL string, loc domain.Location) BreadcrumbListLD {
	return BreadcrumbList(baseURL, []Crumb{
		{Name: "Početna", URL: "/"},
		{Name: "Lokacije", URL: "/lokacije"},
		{Name: loc.City, URL: "/lokacije/" + loc.Slug},
	})
}

// Absolute resolves a site-relative reference against baseURL.
func Absolute(baseURL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(ref, "/") {
		ref = "/" + ref
	}
	return baseURL + ref
}
