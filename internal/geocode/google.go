package geocode

import (
	"context"
	"fmt"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

// GoogleAPIClient is the subset of the Google Maps client used for
// geocoding, injectable for tests.
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleProvider resolves queries against the Google Maps Geocoding API.
type GoogleProvider struct {
	client GoogleAPIClient
}

// NewGoogleProvider creates a provider backed by the given Maps client.
func NewGoogleProvider(client GoogleAPIClient) *GoogleProvider {
	return &GoogleProvider{client: client}
}

// Geocode resolves a free text query to coordinates. ErrNoResult is
// returned when the API has no match.
func (gp *GoogleProvider) Geocode(ctx context.Context, query string) (*poi.Coordinates, error) {
	log.Debug().Str("query", query).Msg("Google Maps lookup")

	results, err := gp.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}

	if len(results) == 0 {
		return nil, ErrNoResult
	}

	loc := results[0].Geometry.Location
	return &poi.Coordinates{Lat: loc.Lat, Lon: loc.Lng}, nil
}
