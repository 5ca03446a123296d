// Package catalog holds the location landing pages compiled into the binary.
package catalog

import (
	_ "embed"
	"fmt"

	"kamenpro-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed locations.yaml
var locationsYAML []byte

type locationCatalog struct {
	locations []domain.Location
	bySlug    map[string]int
}

// Locations parses the embedded catalog.
func Locations() (domain.LocationCatalog, error) {
	return ParseLocations(locationsYAML)
}

// MustLocations is Locations for package initialisation; the embedded file is
// covered by tests so a parse failure is a build defect.
func MustLocations() domain.LocationCatalog {
	c, err := Locations()
	if err != nil {
		panic(err)
	}
	return c
}

// ParseLocations builds a catalog from YAML. Slugs must be unique and non-empty.
func ParseLocations(data []byte) (domain.LocationCatalog, error) {
	var locs []domain.Location
	if err := yaml.Unmarshal(data, &locs); err != nil {
		return nil, fmt.Errorf("failed to parse location catalog: %w", err)
	}

	c := &locationCatalog{bySlug: make(map[string]int, len(locs))}
	for _, l := range locs {
		if l.Slug == "" {
			return nil, fmt.Errorf("location %q has no slug", l.City)
		}
		if _, dup := c.bySlug[l.Slug]; dup {
			return nil, fmt.Errorf("duplicate location slug %q", l.Slug)
		}
		c.bySlug[l.Slug] = len(c.locations)
		c.locations = append(c.locations, l)
	}
	return c, nil
}

func (c *locationCatalog) All() []domain.Location {
	out := make([]domain.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

func (c *locationCatalog) BySlug(slug string) (domain.Location, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Location{}, false
	}
	return c.locations[i], true
}
