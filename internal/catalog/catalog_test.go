package catalog_test

import (
	"testing"

	"kamenpro-backend/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLocations(t *testing.T) {
	c, err := catalog.Locations()
	require.NoError(t, err)

	var slugs []string
	for _, l := range c.All() {
		slugs = append(slugs, l.Slug)
	}
	assert.Equal(t, []string{"bijeljina", "brcko", "tuzla"}, slugs)

	brcko, ok := c.BySlug("brcko")
	require.True(t, ok)
	assert.Equal(t, "Brčko", brcko.City)
	assert.Equal(t, "/images/lokacije/brcko-og.jpg", brcko.OGImage)
	assert.InDelta(t, 44.8694, brcko.Coordinates.Lat, 1e-9)

	_, ok = c.BySlug("sarajevo")
	assert.False(t, ok)
}

func TestParseLocationsRejectsDuplicates(t *testing.T) {
	_, err := catalog.ParseLocations([]byte("- slug: a\n  city: A\n- slug: a\n  city: B\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = catalog.ParseLocations([]byte("- city: NoSlug\n"))
	assert.Error(t, err)
}
