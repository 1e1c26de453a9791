// Package kml builds KML marker documents from categorized points of
// interest and packages them for offline map applications.
package kml

import "encoding/xml"

// Namespace is the KML 2.2 XML namespace.
const Namespace = "http://www.opengis.net/kml/2.2"

// KML is the root element of a marker document.
type KML struct {
	XMLName  xml.Name `xml:"kml"`
	Xmlns    string   `xml:"xmlns,attr"`
	Document Document `xml:"Document"`
}

// Document holds the style definitions and category folders.
type Document struct {
	Name    string   `xml:"name"`
	Styles  []Style  `xml:"Style"`
	Folders []Folder `xml:"Folder"`
}

// Style defines the marker icon for one category, referenced by id.
type Style struct {
	ID        string    `xml:"id,attr"`
	IconStyle IconStyle `xml:"IconStyle"`
}

// IconStyle wraps the icon of a style.
type IconStyle struct {
	Icon Icon `xml:"Icon"`
}

// Icon points at the marker image.
type Icon struct {
	Href string `xml:"href"`
}

// Folder groups the placemarks of one category.
type Folder struct {
	Name       string      `xml:"name"`
	Placemarks []Placemark `xml:"Placemark"`
}

// Placemark is a single mapped point.
type Placemark struct {
	Name         string        `xml:"name"`
	Description  string        `xml:"description"`
	StyleURL     string        `xml:"styleUrl"`
	ExtendedData *ExtendedData `xml:"ExtendedData,omitempty"`
	Point        Point         `xml:"Point"`
}

// ExtendedData carries untyped name/value pairs on a placemark.
type ExtendedData struct {
	Data []Data `xml:"Data"`
}

// Data is one ExtendedData entry.
type Data struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

// Point holds the geometry of a placemark. Coordinates are written in
// KML order: longitude,latitude,altitude.
type Point struct {
	Coordinates string `xml:"coordinates"`
}
