// Package config holds the run configuration for the wrapstats CLI.
// The engine itself never reads files or environment - the CLI loads a
// Config and translates it into engine options.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHomeCountry    = "United States"
	DefaultTopVenues      = 10
	DefaultTopCategories  = 10
	DefaultTopCities      = 10
	DefaultTopFriends     = 5
	DefaultCoordPrecision = 4
)

// Config controls report shape and timestamp interpretation.
type Config struct {
	// HomeCountry venues get bare or state-qualified city keys;
	// venues elsewhere are keyed "City, Country".
	HomeCountry string `yaml:"homeCountry"`

	// Timezone is an IANA zone name ("America/New_York"). Empty means
	// the process-local zone.
	Timezone string `yaml:"timezone"`

	TopVenues     int `yaml:"topVenues"`
	TopCategories int `yaml:"topCategories"`
	TopCities     int `yaml:"topCities"`
	TopFriends    int `yaml:"topFriends"`

	// CoordPrecision is the decimal digits map coordinates are rounded
	// to before bucketing.
	CoordPrecision int `yaml:"coordPrecision"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HomeCountry:    DefaultHomeCountry,
		TopVenues:      DefaultTopVenues,
		TopCategories:  DefaultTopCategories,
		TopCities:      DefaultTopCities,
		TopFriends:     DefaultTopFriends,
		CoordPrecision: DefaultCoordPrecision,
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}

	// Zeroed-out sizes in the file fall back to defaults - a report with
	// empty rankings is never what the user meant.
	if cfg.TopVenues <= 0 {
		cfg.TopVenues = DefaultTopVenues
	}
	if cfg.TopCategories <= 0 {
		cfg.TopCategories = DefaultTopCategories
	}
	if cfg.TopCities <= 0 {
		cfg.TopCities = DefaultTopCities
	}
	if cfg.TopFriends <= 0 {
		cfg.TopFriends = DefaultTopFriends
	}
	if cfg.CoordPrecision <= 0 {
		cfg.CoordPrecision = DefaultCoordPrecision
	}
	return cfg, nil
}
