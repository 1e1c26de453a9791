package geocode_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/jorgemira/wikivoyage2kml/internal/geocode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

const nominatimURL = "https://nominatim.openstreetmap.org/search"

func TestNominatimGeocode(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves query", func(t *testing.T) {
		mock := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Equal(t, "Eiffel Tower, Paris", req.URL.Query().Get("q"))
				assert.Equal(t, "json", req.URL.Query().Get("format"))
				assert.Equal(t, "1", req.URL.Query().Get("limit"))
				assert.Equal(t, "test-agent", req.Header.Get("User-Agent"))

				body := `[{"lat":"48.8582","lon":"2.2945"}]`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(body)),
				}, nil
			},
		}

		provider := geocode.NewNominatimProviderWithClient(mock, nominatimURL, "test-agent")
		coords, err := provider.Geocode(ctx, "Eiffel Tower, Paris")

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InEpsilon(t, 48.8582, coords.Lat, 1e-6)
		assert.InEpsilon(t, 2.2945, coords.Lon, 1e-6)
	})

	t.Run("no results", func(t *testing.T) {
		mock := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(`[]`)),
				}, nil
			},
		}

		provider := geocode.NewNominatimProviderWithClient(mock, nominatimURL, "test-agent")
		coords, err := provider.Geocode(ctx, "nowhere at all")

		require.Nil(t, coords)
		assert.ErrorIs(t, err, geocode.ErrNoResult)
	})

	t.Run("rate limited", func(t *testing.T) {
		mock := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusTooManyRequests,
					Body:       io.NopCloser(bytes.NewBufferString(`{"error":"slow down"}`)),
				}, nil
			},
		}

		provider := geocode.NewNominatimProviderWithClient(mock, nominatimURL, "test-agent")
		_, err := provider.Geocode(ctx, "somewhere")

		require.Error(t, err)
		assert.NotErrorIs(t, err, geocode.ErrNoResult)
		assert.Contains(t, err.Error(), "status 429")
	})

	t.Run("invalid coordinates in response", func(t *testing.T) {
		mock := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				body := `[{"lat":"not-a-number","lon":"2.2945"}]`
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewBufferString(body)),
				}, nil
			},
		}

		provider := geocode.NewNominatimProviderWithClient(mock, nominatimURL, "test-agent")
		_, err := provider.Geocode(ctx, "somewhere")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid latitude")
	})

	t.Run("transport failure", func(t *testing.T) {
		mock := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		provider := geocode.NewNominatimProviderWithClient(mock, nominatimURL, "test-agent")
		_, err := provider.Geocode(ctx, "somewhere")

		require.Error(t, err)
		assert.NotErrorIs(t, err, geocode.ErrNoResult)
	})
}
