// Package poi defines the point of interest model shared by the
// extraction, geocoding and KML building stages.
package poi

import "math"

// Category classifies a point of interest by the Wikivoyage listing
// template it came from.
type Category string

const (
	See   Category = "see"
	Do    Category = "do"
	Go    Category = "go"
	Buy   Category = "buy"
	Eat   Category = "eat"
	Drink Category = "drink"
	Sleep Category = "sleep"
	Other Category = "other"
)

// Categories lists every category in canonical output order. Folder and
// style ordering in the generated document follows this slice.
var Categories = []Category{See, Do, Go, Buy, Eat, Drink, Sleep, Other}

// Label returns the human readable folder name for the category.
func (c Category) Label() string {
	switch c {
	case See:
		return "See"
	case Do:
		return "Do"
	case Go:
		return "Go"
	case Buy:
		return "Buy"
	case Eat:
		return "Eat"
	case Drink:
		return "Drink"
	case Sleep:
		return "Sleep"
	default:
		return "Other"
	}
}

// ParseCategory maps a listing template name to a category. The second
// return is false for template names that are not listings at all, in
// which case the template must be skipped rather than filed under Other.
// The generic "listing" and "marker" templates carry their category in a
// type= field; resolve those with ResolveType instead.
func ParseCategory(name string) (Category, bool) {
	switch name {
	case "see":
		return See, true
	case "do":
		return Do, true
	case "go":
		return Go, true
	case "buy":
		return Buy, true
	case "eat":
		return Eat, true
	case "drink":
		return Drink, true
	case "sleep":
		return Sleep, true
	default:
		return Other, false
	}
}

// ResolveType maps the type= value of a generic listing or marker
// template to a category, defaulting to Other for unknown values.
func ResolveType(value string) Category {
	if c, ok := ParseCategory(value); ok {
		return c
	}
	return Other
}

// Coordinates is a geographic point in WGS84 degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether both values fall in geographic range.
func (c Coordinates) Valid() bool {
	return math.Abs(c.Lat) <= 90 && math.Abs(c.Lon) <= 180
}

// Point is one extracted listing. All fields except Name and Category are
// optional; Coords is nil until coordinates are parsed from the source
// markup or resolved by geocoding.
type Point struct {
	Name       string
	Category   Category
	Content    string
	Address    string
	Directions string
	Phone      string
	Email      string
	URL        string
	Hours      string

	Coords *Coordinates

	// AddedLocation marks coordinates that were filled in by geocoding
	// or by hand rather than taken from the article markup.
	AddedLocation bool
}

// SetCoords fills in coordinates if none are present yet. Existing
// coordinates are never overwritten; the return reports whether the
// point was updated.
func (p *Point) SetCoords(c Coordinates, added bool) bool {
	if p.Coords != nil {
		return false
	}
	cc := c
	p.Coords = &cc
	p.AddedLocation = added
	return true
}
