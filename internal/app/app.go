// Package app wires the extraction, geocoding and serialization stages
// into the single pipeline run by the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorgemira/wikivoyage2kml/internal/config"
	"github.com/jorgemira/wikivoyage2kml/internal/kml"
	"github.com/jorgemira/wikivoyage2kml/internal/poi"
	"github.com/jorgemira/wikivoyage2kml/internal/wikitext"

	"github.com/rs/zerolog/log"
)

// Fetcher retrieves article wikitext for a destination.
type Fetcher interface {
	Article(ctx context.Context, title, language string) (string, error)
}

// Filler resolves missing coordinates for extracted points and returns
// the ones still unresolved.
type Filler interface {
	Fill(ctx context.Context, destination string, points []*poi.Point) []*poi.Point
}

// Prompter asks the user for coordinates of a point the geocoder could
// not resolve. A nil result without error means the point is skipped.
type Prompter interface {
	Prompt(p *poi.Point) (*poi.Coordinates, error)
}

// App holds the pipeline collaborators.
type App struct {
	Fetcher  Fetcher
	Resolver Filler
	Prompter Prompter
	Styles   map[string]config.Style
}

// RunConfig carries the per-invocation settings threaded through the
// pipeline.
type RunConfig struct {
	Destination string
	Language    string
	KMZ         bool
	Add         bool
	Minify      bool
	OutputDir   string
}

// Run executes the pipeline for one destination: fetch, extract,
// optionally geocode missing locations, build the document and write it.
// The returned path is the written output file.
func (a *App) Run(ctx context.Context, rc RunConfig) (string, error) {
	markup, err := a.Fetcher.Article(ctx, rc.Destination, rc.Language)
	if err != nil {
		return "", fmt.Errorf("fetch %q: %w", rc.Destination, err)
	}

	points, skipped := wikitext.Extract(markup)
	if len(points) == 0 {
		return "", fmt.Errorf("no listings found in article for %q", rc.Destination)
	}
	if skipped > 0 {
		log.Warn().Int("count", skipped).Msg("Malformed listings skipped")
	}

	unresolved := a.missing(points)
	if rc.Add {
		if a.Resolver == nil {
			return "", errors.New("adding missing locations requires a geocoding resolver")
		}
		unresolved = a.Resolver.Fill(ctx, rc.Destination, points)
		unresolved, err = a.promptMissing(unresolved)
		if err != nil {
			return "", err
		}
	}

	doc, err := kml.Build(rc.Destination, points, a.Styles)
	if err != nil {
		return "", err
	}

	if rc.Minify {
		doc, err = kml.Minify(doc)
		if err != nil {
			return "", err
		}
	}

	data := []byte(doc)
	if rc.KMZ {
		data, err = kml.Package(data)
		if err != nil {
			return "", err
		}
	}

	path := filepath.Join(rc.OutputDir, kml.Filename(rc.Destination, rc.Language, rc.KMZ))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}

	log.Info().
		Str("destination", rc.Destination).
		Int("markers", len(points)-len(unresolved)).
		Int("skipped", skipped).
		Int("unresolved", len(unresolved)).
		Str("path", path).
		Msg("Document written")

	return path, nil
}

// promptMissing drives the interactive prompt for each unresolved point,
// returning the points that remain without coordinates.
func (a *App) promptMissing(unresolved []*poi.Point) ([]*poi.Point, error) {
	if a.Prompter == nil || len(unresolved) == 0 {
		return unresolved, nil
	}

	var remaining []*poi.Point
	for _, p := range unresolved {
		coords, err := a.Prompter.Prompt(p)
		if err != nil {
			return nil, fmt.Errorf("prompt for %q: %w", p.Name, err)
		}
		if coords == nil {
			remaining = append(remaining, p)
			continue
		}
		if !coords.Valid() {
			log.Warn().Str("name", p.Name).Msg("Coordinates out of geographic range, skipping")
			remaining = append(remaining, p)
			continue
		}
		p.SetCoords(*coords, true)
	}

	return remaining, nil
}

// missing returns the points that have no coordinates.
func (a *App) missing(points []*poi.Point) []*poi.Point {
	var out []*poi.Point
	for _, p := range points {
		if p.Coords == nil {
			out = append(out, p)
		}
	}
	return out
}
