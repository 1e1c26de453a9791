package kml

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/tdewolff/minify/v2"
	mxml "github.com/tdewolff/minify/v2/xml"
)

// KMZEntryName is the document name inside a KMZ archive, fixed by
// convention so map applications find it.
const KMZEntryName = "doc.kml"

// Minify compacts a KML document, dropping insignificant whitespace.
func Minify(kml string) (string, error) {
	m := minify.New()
	m.AddFunc("text/xml", mxml.Minify)

	out, err := m.String("text/xml", kml)
	if err != nil {
		return "", fmt.Errorf("minify KML: %w", err)
	}

	return out, nil
}

// Package wraps a KML document into a KMZ archive: a zip file holding a
// single doc.kml entry.
func Package(kml []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)
	entry, err := zw.Create(KMZEntryName)
	if err != nil {
		return nil, fmt.Errorf("create KMZ entry: %w", err)
	}
	if _, err := entry.Write(kml); err != nil {
		return nil, fmt.Errorf("write KMZ entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finish KMZ archive: %w", err)
	}

	return buf.Bytes(), nil
}

// Filename returns the output file name for a destination and language.
func Filename(destination, language string, kmz bool) string {
	ext := "kml"
	if kmz {
		ext = "kmz"
	}
	return fmt.Sprintf("%s (%s) - Wikivoyage2KML.%s", destination, language, ext)
}
