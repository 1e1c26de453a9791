// Package geocode resolves free text place queries into coordinates.
package geocode

import (
	"context"
	"errors"
	"net/http"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"
)

// ErrNoResult is returned when the lookup service has no match for the
// query. It marks an ordinary miss, as opposed to a transport failure.
var ErrNoResult = errors.New("no geocoding result")

// Provider resolves a place query into geographic coordinates.
type Provider interface {
	Geocode(ctx context.Context, query string) (*poi.Coordinates, error)
}

// HTTPClient is the transport used by HTTP-backed providers, injectable
// for tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
