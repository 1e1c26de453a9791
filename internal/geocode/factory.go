package geocode

import (
	"errors"
	"fmt"
	"time"

	"github.com/jorgemira/wikivoyage2kml/internal/config"

	"googlemaps.github.io/maps"
)

// NewProvider creates a geocoding provider from the configuration.
//
// Supported providers:
//   - "nominatim": OpenStreetMap Nominatim (free, no API key)
//   - "google": Google Maps Geocoding API (requires an API key)
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "nominatim":
		return NewNominatimProvider(cfg.NominatimURL, cfg.UserAgent, time.Duration(cfg.GeocodeInterval)), nil
	case "google":
		if cfg.APIKey == "" {
			return nil, errors.New("API key is required for the google provider")
		}
		client, err := maps.NewClient(maps.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, fmt.Errorf("create Google Maps client: %w", err)
		}
		return NewGoogleProvider(client), nil
	default:
		return nil, fmt.Errorf("unsupported geocoding provider: %q", cfg.Provider)
	}
}
