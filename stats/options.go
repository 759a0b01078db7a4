package stats

import "time"

// ============================================================================
// ENGINE OPTIONS - Functional options for Aggregate()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	HomeCountry    string         // venues here get bare/state-qualified city keys
	Location       *time.Location // local-clock interpretation of timestamps
	TopVenues      int
	TopCategories  int
	TopCities      int
	TopFriends     int
	CoordPrecision int // decimal digits for map bucket rounding
}

// WithHomeCountry sets the country whose venues are keyed by bare city or
// "City, State". Venues elsewhere are keyed "City, Country".
func WithHomeCountry(country string) Option {
	return func(c *config) {
		c.HomeCountry = country
	}
}

// WithLocation sets the time zone used to interpret check-in timestamps.
// Defaults to the process-local zone. A nil loc is ignored.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.Location = loc
		}
	}
}

// WithTopVenues sets the size of the top-venues ranking.
func WithTopVenues(n int) Option {
	return func(c *config) {
		c.TopVenues = n
	}
}

// WithTopCategories sets the size of the top-categories ranking.
func WithTopCategories(n int) Option {
	return func(c *config) {
		c.TopCategories = n
	}
}

// WithTopCities sets the size of the top-cities ranking.
func WithTopCities(n int) Option {
	return func(c *config) {
		c.TopCities = n
	}
}

// WithTopFriends sets the size of the top-friends ranking.
func WithTopFriends(n int) Option {
	return func(c *config) {
		c.TopFriends = n
	}
}

// WithCoordPrecision sets how many decimal digits map bucket coordinates
// are rounded to.
func WithCoordPrecision(digits int) Option {
	return func(c *config) {
		c.CoordPrecision = digits
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		HomeCountry:    "United States",
		Location:       time.Local,
		TopVenues:      10,
		TopCategories:  10,
		TopCities:      10,
		TopFriends:     5,
		CoordPrecision: 4,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
