package domain

// Location is a city landing page with its local business contact data.
type Location struct {
	Slug            string      `yaml:"slug"`
	City            string      `yaml:"city"`
	CityGenitive    string      `yaml:"city_genitive"`
	SEOTitle        string      `yaml:"seo_title"`
	MetaDescription string      `yaml:"meta_description"`
	Keywords        []string    `yaml:"keywords"`
	Coordinates     Coordinates `yaml:"coordinates"`
	DeliveryArea    string      `yaml:"delivery_area"`
	Phone           string      `yaml:"phone"`
	Email           string      `yaml:"email"`
	Hours           Hours       `yaml:"hours"`
	OGImage         string      `yaml:"og_image"`
}

type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

type Hours struct {
	Weekdays string `yaml:"weekdays"`
	Saturday string `yaml:"saturday"`
	Sunday   string `yaml:"sunday"`
}

// LocationCatalog looks up location landing pages.
type LocationCatalog interface {
	All() []Location
	BySlug(slug string) (Location, bool)
}
