// Package wrapstats turns a year of location check-ins into a "Wrapped"
// style statistics report.
//
// Usage:
//
//	import "github.com/wrapstats-org/wrapstats/stats"
//
//	report := stats.Aggregate(checkins,
//	    stats.WithHomeCountry("United States"),
//	    stats.WithTopFriends(5),
//	)
//
// The engine takes a slice of check-in records (already fetched by the
// caller) and returns a render-ready Statistics value: venue, category,
// city and country rankings, hourly/daily/monthly distributions, streaks,
// social and media ratios, and a geocoded point list.
//
// Fetching raw check-ins and rendering the report are handled by the
// caller. The engine never performs I/O - all computation is local and a
// nil result is the canonical "no data" signal.
package wrapstats
