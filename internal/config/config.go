// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/jorgemira/wikivoyage2kml/internal/poi"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like
// "1s" or "500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Style describes the map marker used for one listing category.
type Style struct {
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
}

// Config represents the root configuration file structure. Every field is
// optional; zero values fall back to the defaults below.
type Config struct {
	// WikiURL is the MediaWiki API endpoint template, with a {language}
	// placeholder for the article language.
	WikiURL string `yaml:"wiki_url,omitempty"`

	// Provider selects the geocoding backend: nominatim or google.
	Provider string `yaml:"provider,omitempty"`
	// APIKey authenticates against the provider when it requires a key.
	APIKey string `yaml:"api_key,omitempty"`
	// NominatimURL overrides the Nominatim search endpoint.
	NominatimURL string `yaml:"nominatim_url,omitempty"`
	// UserAgent is sent with every Nominatim request, per usage policy.
	UserAgent string `yaml:"user_agent,omitempty"`
	// GeocodeInterval is the minimum pause between Nominatim lookups.
	GeocodeInterval Duration `yaml:"geocode_interval,omitempty"`

	// Styles overrides marker styles per category.
	Styles map[string]Style `yaml:"styles,omitempty"`
}

const (
	defaultWikiURL      = "https://{language}.wikivoyage.org/w/api.php"
	defaultProvider     = "nominatim"
	defaultNominatimURL = "https://nominatim.openstreetmap.org/search"
	defaultUserAgent    = "wikivoyage2kml/1.0 (https://github.com/jorgemira/wikivoyage2kml)"
	defaultInterval     = Duration(time.Second)
)

// Default returns the built-in configuration with the stock marker styles.
func Default() *Config {
	return &Config{
		WikiURL:         defaultWikiURL,
		Provider:        defaultProvider,
		NominatimURL:    defaultNominatimURL,
		UserAgent:       defaultUserAgent,
		GeocodeInterval: defaultInterval,
		Styles: map[string]Style{
			string(poi.See):   {Color: "green", Icon: "Sights"},
			string(poi.Do):    {Color: "teal", Icon: "Entertainment"},
			string(poi.Go):    {Color: "brown", Icon: "Transport"},
			string(poi.Buy):   {Color: "pink", Icon: "Shop"},
			string(poi.Eat):   {Color: "red", Icon: "Food"},
			string(poi.Drink): {Color: "yellow", Icon: "Bar"},
			string(poi.Sleep): {Color: "blue", Icon: "Hotel"},
			string(poi.Other): {Color: "gray", Icon: "None"},
		},
	}
}

// Load reads and parses the YAML configuration file from the specified
// path, merging it over the defaults. A missing file is not an error, the
// defaults apply as-is. Environment variables are bootstrapped from .env
// when present and take precedence over the file, so credentials can stay
// out of config files.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if file.WikiURL != "" {
		cfg.WikiURL = file.WikiURL
	}
	if file.Provider != "" {
		cfg.Provider = file.Provider
	}
	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.NominatimURL != "" {
		cfg.NominatimURL = file.NominatimURL
	}
	if file.UserAgent != "" {
		cfg.UserAgent = file.UserAgent
	}
	if file.GeocodeInterval > 0 {
		cfg.GeocodeInterval = file.GeocodeInterval
	}
	for name, style := range file.Styles {
		base := cfg.Styles[name]
		if style.Color != "" {
			base.Color = style.Color
		}
		if style.Icon != "" {
			base.Icon = style.Icon
		}
		cfg.Styles[name] = base
	}

	if v := os.Getenv("WV2KML_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("WV2KML_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("WV2KML_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	return cfg, nil
}
