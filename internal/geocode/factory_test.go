package geocode_test

import (
	"testing"

	"github.com/jorgemira/wikivoyage2kml/internal/config"
	"github.com/jorgemira/wikivoyage2kml/internal/geocode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("nominatim by default", func(t *testing.T) {
		provider, err := geocode.NewProvider(config.Default())

		require.NoError(t, err)
		assert.IsType(t, &geocode.NominatimProvider{}, provider)
	})

	t.Run("google requires API key", func(t *testing.T) {
		cfg := config.Default()
		cfg.Provider = "google"

		_, err := geocode.NewProvider(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key")
	})

	t.Run("google with API key", func(t *testing.T) {
		cfg := config.Default()
		cfg.Provider = "google"
		cfg.APIKey = "test-key"

		provider, err := geocode.NewProvider(cfg)

		require.NoError(t, err)
		assert.IsType(t, &geocode.GoogleProvider{}, provider)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		cfg := config.Default()
		cfg.Provider = "here"

		_, err := geocode.NewProvider(cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported")
	})
}
