// Package wikitext extracts point of interest listings from raw
// Wikivoyage article markup.
package wikitext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"

	"github.com/rs/zerolog/log"
)

var (
	commentRE = regexp.MustCompile(`(?ms)<!--.*?-->`)
	nowikiRE  = regexp.MustCompile(`(?ms)<nowiki>.*?</nowiki>`)
	listingRE = regexp.MustCompile(`(?mis)\{\{\s*(see|do|go|buy|eat|drink|sleep|listing|marker)\s*\|([^{}]*)\}\}`)

	linkPipeRE = regexp.MustCompile(`\[\[[^\]|]*\|([^\]]*)\]\]`)
	linkRE     = regexp.MustCompile(`\[\[([^\]]*)\]\]`)
	extLinkRE  = regexp.MustCompile(`\[\S+\s+([^\]]*)\]`)
	bareLinkRE = regexp.MustCompile(`\[(\S+)\]`)
	quotesRE   = regexp.MustCompile(`'{2,}`)
	brRE       = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRE      = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
)

// Extract scans wikitext for listing templates and returns one Point per
// recognized listing, in order of appearance, along with the number of
// listings that were skipped as malformed. Templates without a name are
// dropped; coordinate fields that are missing, non-numeric or out of
// geographic range leave the point without coordinates rather than
// failing the extraction.
func Extract(wikitext string) ([]*poi.Point, int) {
	cleaned := nowikiRE.ReplaceAllString(commentRE.ReplaceAllString(wikitext, ""), "")

	var points []*poi.Point
	skipped := 0

	for _, match := range listingRE.FindAllStringSubmatch(cleaned, -1) {
		tmpl := strings.ToLower(strings.TrimSpace(match[1]))
		fields := parseFields(match[2])

		category, ok := poi.ParseCategory(tmpl)
		if !ok {
			// Generic listing and marker templates carry their
			// category in a type field.
			category = poi.ResolveType(strings.ToLower(fields["type"]))
		}

		name := cleanValue(fields["name"])
		if name == "" {
			skipped++
			log.Debug().Str("template", tmpl).Msg("Listing without name skipped")
			continue
		}

		p := &poi.Point{
			Name:       name,
			Category:   category,
			Content:    cleanValue(fields["content"]),
			Address:    cleanValue(fields["address"]),
			Directions: cleanValue(fields["directions"]),
			Phone:      cleanValue(fields["phone"]),
			Email:      cleanValue(fields["email"]),
			URL:        strings.TrimSpace(fields["url"]),
			Hours:      cleanValue(fields["hours"]),
		}

		if coords, ok := parseCoords(fields["lat"], fields["long"]); ok {
			p.Coords = &coords
		}

		points = append(points, p)
	}

	return points, skipped
}

// parseCoords parses the lat and long template fields. Both must be
// present, numeric and in geographic range.
func parseCoords(lat, lon string) (poi.Coordinates, bool) {
	latF, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return poi.Coordinates{}, false
	}
	lonF, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return poi.Coordinates{}, false
	}

	coords := poi.Coordinates{Lat: latF, Lon: lonF}
	if !coords.Valid() {
		return poi.Coordinates{}, false
	}
	return coords, true
}

// parseFields splits a template body into its named key=value arguments.
// Pipes inside wiki links do not terminate an argument.
func parseFields(body string) map[string]string {
	fields := make(map[string]string)

	for _, part := range splitArgs(body) {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key != "" && value != "" {
			fields[key] = value
		}
	}

	return fields
}

// splitArgs splits on top level pipes, keeping [[link|label]] intact.
func splitArgs(body string) []string {
	var args []string
	depth := 0
	start := 0

	for i := 0; i < len(body); i++ {
		switch {
		case strings.HasPrefix(body[i:], "[["):
			depth++
			i++
		case strings.HasPrefix(body[i:], "]]"):
			if depth > 0 {
				depth--
			}
			i++
		case body[i] == '|' && depth == 0:
			args = append(args, body[start:i])
			start = i + 1
		}
	}
	args = append(args, body[start:])

	return args
}

// cleanValue strips wiki markup decoration from a field value, leaving a
// plain text rendering.
func cleanValue(value string) string {
	s := linkPipeRE.ReplaceAllString(value, "$1")
	s = linkRE.ReplaceAllString(s, "$1")
	s = extLinkRE.ReplaceAllString(s, "$1")
	s = bareLinkRE.ReplaceAllString(s, "$1")
	s = quotesRE.ReplaceAllString(s, "")
	s = brRE.ReplaceAllString(s, " ")
	s = tagRE.ReplaceAllString(s, "")

	return strings.Join(strings.Fields(s), " ")
}
