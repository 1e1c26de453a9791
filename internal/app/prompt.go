package app

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"
)

// StdinPrompter asks for coordinates interactively. An empty answer
// skips the point; otherwise the answer is read as "lat, lon".
type StdinPrompter struct {
	In  io.Reader
	Out io.Writer

	reader *bufio.Reader
}

// Prompt asks for the coordinates of one unresolved point.
func (sp *StdinPrompter) Prompt(p *poi.Point) (*poi.Coordinates, error) {
	if sp.reader == nil {
		sp.reader = bufio.NewReader(sp.In)
	}

	fmt.Fprintf(sp.Out, "No location found for %q", p.Name)
	if p.Address != "" {
		fmt.Fprintf(sp.Out, " (%s)", p.Address)
	}
	fmt.Fprint(sp.Out, "\nEnter coordinates as lat,lon or leave empty to skip: ")

	line, err := sp.reader.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	latStr, lonStr, found := strings.Cut(line, ",")
	if !found {
		return nil, fmt.Errorf("invalid coordinates %q", line)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q", latStr)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q", lonStr)
	}

	return &poi.Coordinates{Lat: lat, Lon: lon}, nil
}
