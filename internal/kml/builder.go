package kml

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/jorgemira/wikivoyage2kml/internal/config"
	"github.com/jorgemira/wikivoyage2kml/internal/poi"
)

const iconURL = "http://mapswith.me/placemarks/placemark-%s.png"

// Build serializes the given points into a KML document named after the
// destination. Points without coordinates are left out, the rest are
// grouped into one folder per category in canonical category order.
// Output is deterministic: the same input always yields the same bytes.
func Build(name string, points []*poi.Point, styles map[string]config.Style) (string, error) {
	byCategory := make(map[poi.Category][]*poi.Point)
	for _, p := range points {
		if p.Coords == nil {
			continue
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	doc := Document{Name: name}
	for _, cat := range poi.Categories {
		placed := byCategory[cat]
		if len(placed) == 0 {
			continue
		}

		style := styleFor(styles, cat)
		doc.Styles = append(doc.Styles, Style{
			ID: string(cat),
			IconStyle: IconStyle{
				Icon: Icon{Href: fmt.Sprintf(iconURL, style.Color)},
			},
		})

		folder := Folder{Name: cat.Label()}
		for _, p := range placed {
			folder.Placemarks = append(folder.Placemarks, Placemark{
				Name:        p.Name,
				Description: describe(p),
				StyleURL:    "#" + string(cat),
				ExtendedData: &ExtendedData{Data: []Data{
					{Name: "icon", Value: style.Icon},
				}},
				Point: Point{Coordinates: formatCoords(*p.Coords)},
			})
		}
		doc.Folders = append(doc.Folders, folder)
	}

	out, err := xml.MarshalIndent(KML{Xmlns: Namespace, Document: doc}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize KML: %w", err)
	}

	return xml.Header + string(out) + "\n", nil
}

// styleFor returns the configured style for a category. Categories absent
// from the map get the gray default marker.
func styleFor(styles map[string]config.Style, cat poi.Category) config.Style {
	if s, ok := styles[string(cat)]; ok && s.Color != "" {
		return s
	}
	return config.Style{Color: "gray", Icon: "None"}
}

// formatCoords renders coordinates in KML longitude,latitude,altitude
// order.
func formatCoords(c poi.Coordinates) string {
	return strconv.FormatFloat(c.Lon, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Lat, 'f', -1, 64) + ",0"
}

// describe assembles the placemark description from the listing fields,
// one labeled line per populated field. The markup here is HTML carried
// inside the description element; the XML encoder escapes it on output.
func describe(p *poi.Point) string {
	var lines []string

	add := func(label, value string) {
		if value != "" {
			lines = append(lines, "<b>"+label+"</b> "+value)
		}
	}

	if p.AddedLocation {
		lines = append(lines,
			"<b>WARNING:</b> Location has been added automatically, marker may not be correct")
	}
	if p.URL != "" {
		lines = append(lines, "<b>URL:</b> <a href='"+p.URL+"'>"+p.URL+"</a>")
	}
	if p.Phone != "" {
		lines = append(lines, "<b>Phone number:</b> <a href='tel:"+p.Phone+"'>"+p.Phone+"</a>")
	}
	if p.Email != "" {
		lines = append(lines, "<b>Email:</b> <a href='mailto:"+p.Email+"'>"+p.Email+"</a>")
	}
	add("Address:", p.Address)
	add("Directions:", p.Directions)
	add("Opening hours:", p.Hours)
	if p.Content != "" {
		lines = append(lines, "<b>Place description:</b>", p.Content)
	}

	return strings.Join(lines, "<br/>")
}
