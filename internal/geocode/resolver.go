package geocode

import (
	"context"
	"errors"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"

	"github.com/rs/zerolog/log"
)

// Resolver fills missing coordinates on extracted points using a
// Provider. Lookup failures are per point and never abort the pass.
type Resolver struct {
	provider Provider
}

// NewResolver creates a resolver backed by the given provider.
func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Fill attempts to resolve coordinates for every point that has none,
// disambiguating the query with the destination name. Points resolved
// here are flagged as added locations. The return value is the subset of
// points that still have no coordinates after the pass.
func (r *Resolver) Fill(ctx context.Context, destination string, points []*poi.Point) []*poi.Point {
	var unresolved []*poi.Point

	for _, p := range points {
		if p.Coords != nil {
			continue
		}

		query := r.buildQuery(p, destination)
		if query == "" {
			unresolved = append(unresolved, p)
			continue
		}

		coords, err := r.provider.Geocode(ctx, query)
		switch {
		case errors.Is(err, ErrNoResult):
			log.Warn().Str("name", p.Name).Str("query", query).Msg("No geocoding result")
			unresolved = append(unresolved, p)
		case err != nil:
			log.Warn().Err(err).Str("name", p.Name).Msg("Geocoding lookup failed")
			unresolved = append(unresolved, p)
		case !coords.Valid():
			log.Warn().
				Str("name", p.Name).
				Float64("lat", coords.Lat).
				Float64("lon", coords.Lon).
				Msg("Geocoder returned out of range coordinates")
			unresolved = append(unresolved, p)
		default:
			p.SetCoords(*coords, true)
			log.Info().Str("name", p.Name).Msg("Location added from geocoder")
		}
	}

	return unresolved
}

// buildQuery prefers the listing address, falling back to the listing
// name, both qualified with the destination for disambiguation.
func (r *Resolver) buildQuery(p *poi.Point, destination string) string {
	switch {
	case p.Address != "":
		return p.Address + ", " + destination
	case p.Name != "":
		return p.Name + ", " + destination
	default:
		return ""
	}
}
