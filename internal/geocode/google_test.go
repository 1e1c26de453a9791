package geocode_test

import (
	"context"
	"testing"

	"github.com/jorgemira/wikivoyage2kml/internal/geocode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type mockGoogleClient struct {
	results []maps.GeocodingResult
	err     error
	queries []string
}

func (m *mockGoogleClient) Geocode(_ context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	m.queries = append(m.queries, r.Address)
	return m.results, m.err
}

func TestGoogleGeocode(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves query", func(t *testing.T) {
		mock := &mockGoogleClient{
			results: []maps.GeocodingResult{
				{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 48.8582, Lng: 2.2945}}},
			},
		}

		provider := geocode.NewGoogleProvider(mock)
		coords, err := provider.Geocode(ctx, "Eiffel Tower, Paris")

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 48.8582, coords.Lat, 1e-6)
		assert.InEpsilon(t, 2.2945, coords.Lon, 1e-6)
		assert.Equal(t, []string{"Eiffel Tower, Paris"}, mock.queries)
	})

	t.Run("no results", func(t *testing.T) {
		provider := geocode.NewGoogleProvider(&mockGoogleClient{})
		coords, err := provider.Geocode(ctx, "nowhere")

		require.Nil(t, coords)
		assert.ErrorIs(t, err, geocode.ErrNoResult)
	})

	t.Run("API failure", func(t *testing.T) {
		provider := geocode.NewGoogleProvider(&mockGoogleClient{err: assert.AnError})
		_, err := provider.Geocode(ctx, "somewhere")

		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
