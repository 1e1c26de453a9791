package poi_test

import (
	"testing"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, name := range []string{"see", "do", "go", "buy", "eat", "drink", "sleep"} {
		cat, ok := poi.ParseCategory(name)
		require.True(t, ok, "category %q should parse", name)
		assert.Equal(t, poi.Category(name), cat)
	}

	_, ok := poi.ParseCategory("routebox")
	assert.False(t, ok)
	_, ok = poi.ParseCategory("")
	assert.False(t, ok)
}

func TestResolveType(t *testing.T) {
	assert.Equal(t, poi.Eat, poi.ResolveType("eat"))
	assert.Equal(t, poi.Other, poi.ResolveType("viewpoint"))
	assert.Equal(t, poi.Other, poi.ResolveType(""))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "See", poi.See.Label())
	assert.Equal(t, "Sleep", poi.Sleep.Label())
	assert.Equal(t, "Other", poi.Other.Label())
	assert.Equal(t, "Other", poi.Category("bogus").Label())
}

func TestCoordinatesValid(t *testing.T) {
	assert.True(t, poi.Coordinates{Lat: 48.86, Lon: 2.34}.Valid())
	assert.True(t, poi.Coordinates{Lat: -90, Lon: 180}.Valid())
	assert.False(t, poi.Coordinates{Lat: 90.1, Lon: 0}.Valid())
	assert.False(t, poi.Coordinates{Lat: 0, Lon: -180.5}.Valid())
}

func TestSetCoordsDoesNotOverwrite(t *testing.T) {
	p := &poi.Point{Name: "Louvre", Category: poi.See}

	require.True(t, p.SetCoords(poi.Coordinates{Lat: 48.86, Lon: 2.34}, false))
	require.NotNil(t, p.Coords)
	assert.False(t, p.AddedLocation)

	assert.False(t, p.SetCoords(poi.Coordinates{Lat: 1, Lon: 1}, true))
	assert.InEpsilon(t, 48.86, p.Coords.Lat, 1e-9)
	assert.InEpsilon(t, 2.34, p.Coords.Lon, 1e-9)
	assert.False(t, p.AddedLocation)
}
