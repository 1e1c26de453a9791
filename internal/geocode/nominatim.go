package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"

	"github.com/rs/zerolog/log"
)

// NominatimProvider resolves queries against the OpenStreetMap Nominatim
// API. The public endpoint allows at most one request per second, so
// lookups are paced by the configured interval.
type NominatimProvider struct {
	client    HTTPClient
	baseURL   string
	userAgent string
	interval  time.Duration
	last      time.Time
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// NewNominatimProvider creates a Nominatim provider for the given search
// endpoint. The user agent must identify the application, per the
// Nominatim usage policy.
func NewNominatimProvider(baseURL, userAgent string, interval time.Duration) *NominatimProvider {
	return &NominatimProvider{
		client:    &http.Client{Timeout: 10 * time.Second},
		baseURL:   baseURL,
		userAgent: userAgent,
		interval:  interval,
	}
}

// NewNominatimProviderWithClient creates a provider with a custom HTTP
// client and no request pacing. Useful for tests.
func NewNominatimProviderWithClient(client HTTPClient, baseURL, userAgent string) *NominatimProvider {
	return &NominatimProvider{client: client, baseURL: baseURL, userAgent: userAgent}
}

// Geocode resolves a free text query to coordinates. ErrNoResult is
// returned when Nominatim has no match.
func (np *NominatimProvider) Geocode(ctx context.Context, query string) (*poi.Coordinates, error) {
	np.pace()

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	q := reqURL.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	reqURL.RawQuery = q.Encode()

	log.Debug().Str("url", reqURL.String()).Msg("Nominatim lookup")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", np.userAgent)

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute geocoding request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("nominatim returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	return &poi.Coordinates{Lat: lat, Lon: lon}, nil
}

// pace blocks until the configured interval has passed since the last
// request.
func (np *NominatimProvider) pace() {
	if np.interval <= 0 {
		return
	}
	if wait := np.interval - time.Since(np.last); wait > 0 {
		time.Sleep(wait)
	}
	np.last = time.Now()
}
