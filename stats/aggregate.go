package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// AGGREGATOR - Main Pass + Reductions
// ============================================================================
// Entry point: Aggregate(checkins, opts...)
//
// Pipeline:
//   1. One forward pass over all records in input order, building
//      insertion-ordered frequency tables and per-record derived facts
//      (venue identity, local date/time, map bucket key).
//   2. Reductions over the tables: rankings, dense distributions, peak
//      selection, streaks, ratios, bookends, map points.
//
// All state is scoped to a single Aggregate call - the engine holds no
// shared accumulators and is safe for concurrent callers. It never fails
// on malformed or partial input: every absent field takes its documented
// default.
// ============================================================================

const (
	unknownVenueID   = "unknown"
	unknownVenueName = "Unknown Venue"
	unknownPlace     = "Unknown"
	defaultCategory  = "Other"
)

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Monday-first, matching the report's weekday convention.
var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Aggregate derives the full Statistics report from a sequence of
// check-ins. Records are read in input order and never mutated. Returns
// nil for empty input - the canonical "no data" signal.
func Aggregate(checkins []CheckIn, opts ...Option) *Statistics {
	if len(checkins) == 0 {
		return nil
	}

	agg := newAggregation(applyOptions(opts))
	for i := range checkins {
		agg.observe(&checkins[i])
	}
	return agg.reduce(checkins)
}

// ============================================================================
// MAIN PASS
// ============================================================================

// venueInfo is the fact set cached for a venue id. The first record
// observed for an id fixes it for the rest of the pass.
type venueInfo struct {
	name     string
	category string
	city     string
	state    string
	country  string
	lat      float64
	lng      float64
}

// coordKey buckets map points by rounded coordinates. Struct equality
// gives the value-equality semantics the bucket map needs.
type coordKey struct {
	lat float64
	lng float64
}

// aggregation is the invocation-scoped context threaded through one pass.
type aggregation struct {
	cfg *config

	venues     map[string]*venueInfo
	venueOrder []string

	venueCounts    *Counter
	categoryCounts *Counter
	cityCounts     *Counter
	countryCounts  *Counter
	friendCounts   *Counter
	perDay         *Counter

	hourly  [24]int
	daily   [7]int // Monday-first
	monthly [12]int

	dates map[string]struct{}

	withFriends int
	withShouts  int
	totalPhotos int

	mapBuckets  map[coordKey][]string
	bucketOrder []coordKey
}

func newAggregation(cfg *config) *aggregation {
	return &aggregation{
		cfg:            cfg,
		venues:         make(map[string]*venueInfo),
		venueCounts:    NewCounter(),
		categoryCounts: NewCounter(),
		cityCounts:     NewCounter(),
		countryCounts:  NewCounter(),
		friendCounts:   NewCounter(),
		perDay:         NewCounter(),
		dates:          make(map[string]struct{}),
		mapBuckets:     make(map[coordKey][]string),
	}
}

// observe folds one check-in into the tallies.
func (a *aggregation) observe(c *CheckIn) {
	name := venueDisplayName(c.Venue)
	info := a.resolveVenue(c.Venue, name)

	a.venueCounts.Add(name)
	a.categoryCounts.Add(info.category)
	a.cityCounts.Add(cityKey(info, a.cfg.HomeCountry))
	a.countryCounts.Add(info.country)

	t := time.Unix(c.CreatedAt, 0).In(a.cfg.Location)
	a.hourly[t.Hour()]++
	a.daily[mondayIndex(t.Weekday())]++
	a.monthly[int(t.Month())-1]++

	dateKey := t.Format(dateKeyLayout)
	a.dates[dateKey] = struct{}{}
	a.perDay.Add(dateKey)

	if len(c.With) > 0 {
		a.withFriends++
		for _, friend := range c.With {
			if display := strings.TrimSpace(friend.FirstName + " " + friend.LastName); display != "" {
				a.friendCounts.Add(display)
			}
		}
	}

	if c.Shout != "" {
		a.withShouts++
	}
	if c.Photos != nil {
		a.totalPhotos += len(c.Photos.Items)
	}

	if info.lat != 0 && info.lng != 0 {
		key := coordKey{
			lat: roundCoord(info.lat, a.cfg.CoordPrecision),
			lng: roundCoord(info.lng, a.cfg.CoordPrecision),
		}
		if _, seen := a.mapBuckets[key]; !seen {
			a.bucketOrder = append(a.bucketOrder, key)
		}
		a.mapBuckets[key] = append(a.mapBuckets[key], name)
	}
}

// resolveVenue returns the cached fact set for the record's venue id,
// creating it from this record if the id has not been seen. Later records
// with the same id never update the cache.
func (a *aggregation) resolveVenue(v *Venue, name string) *venueInfo {
	id := unknownVenueID
	if v != nil && v.ID != "" {
		id = v.ID
	}

	if info, ok := a.venues[id]; ok {
		return info
	}

	info := &venueInfo{
		name:     name,
		category: defaultCategory,
		city:     unknownPlace,
		country:  unknownPlace,
	}
	if v != nil {
		if len(v.Categories) > 0 && v.Categories[0].Name != "" {
			info.category = v.Categories[0].Name
		}
		if loc := v.Location; loc != nil {
			if loc.City != "" {
				info.city = loc.City
			}
			info.state = loc.State
			if loc.Country != "" {
				info.country = loc.Country
			}
			info.lat = loc.Lat
			info.lng = loc.Lng
		}
	}

	a.venues[id] = info
	a.venueOrder = append(a.venueOrder, id)
	return info
}

// venueDisplayName returns the record's venue name with the documented
// default. All id-less venues render under the same synthetic name.
func venueDisplayName(v *Venue) string {
	if v == nil || v.Name == "" {
		return unknownVenueName
	}
	return v.Name
}

// cityKey composes the ranking key for a venue's city: home-country venues
// are state-qualified ("New York, NY") or bare, everything else is
// country-qualified ("Paris, France").
func cityKey(info *venueInfo, homeCountry string) string {
	if info.state != "" {
		return info.city + ", " + info.state
	}
	if info.country != homeCountry {
		return info.city + ", " + info.country
	}
	return info.city
}

// mondayIndex maps time.Weekday (Sunday-first) onto the Monday-first
// report order.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// ============================================================================
// REDUCTIONS
// ============================================================================

// reduce computes the final Statistics once all tallies are complete.
func (a *aggregation) reduce(checkins []CheckIn) *Statistics {
	total := len(checkins)
	st := &Statistics{
		TotalCheckins: total,

		UniqueVenues:     len(a.venues),
		TopVenues:        a.rankVenues(),
		TopCategories:    a.categoryCounts.MostCommon(a.cfg.TopCategories),
		UniqueCategories: a.categoryCounts.Len(),
		TopCities:        a.cityCounts.MostCommon(a.cfg.TopCities),
		UniqueCities:     a.cityCounts.Len(),
		Countries:        a.countryCounts.MostCommon(0),

		CheckinsWithFriends: a.withFriends,
		FriendPercentage:    percentage(a.withFriends, total),
		TopFriends:          a.friendCounts.MostCommon(a.cfg.TopFriends),
		SoloCheckins:        total - a.withFriends,
		SoloPercentage:      percentage(total-a.withFriends, total),

		CheckinsWithShouts: a.withShouts,
		ShoutPercentage:    percentage(a.withShouts, total),
		TotalPhotos:        a.totalPhotos,
	}

	a.reduceDistributions(st)
	a.reduceActivity(st, total)
	a.reduceTimeOfDay(st)
	a.reduceBookends(st, checkins)

	st.MapPoints = make([]MapPoint, 0, len(a.bucketOrder))
	for _, key := range a.bucketOrder {
		st.MapPoints = append(st.MapPoints, MapPoint{
			Lat:   key.lat,
			Lng:   key.lng,
			Names: strings.Join(a.mapBuckets[key], ","),
		})
	}

	return st
}

// rankVenues builds the top-venues list, joining ranked display names back
// to the cached facts of the first venue id rendering that name.
func (a *aggregation) rankVenues() []VenueRank {
	ranked := a.venueCounts.MostCommon(a.cfg.TopVenues)
	out := make([]VenueRank, 0, len(ranked))
	for _, entry := range ranked {
		rank := VenueRank{Name: entry.Name, Count: entry.Count}
		for _, id := range a.venueOrder {
			if info := a.venues[id]; info.name == entry.Name {
				rank.Category = info.category
				rank.City = info.city
				rank.State = info.state
				rank.Country = info.country
				break
			}
		}
		out = append(out, rank)
	}
	return out
}

// reduceDistributions densifies the calendar tallies and selects peaks.
// Ties resolve to the first key in domain order.
func (a *aggregation) reduceDistributions(st *Statistics) {
	st.HourlyDistribution = make(map[string]int, 24)
	for h := 0; h < 24; h++ {
		st.HourlyDistribution[strconv.Itoa(h)] = a.hourly[h]
	}
	st.MonthlyDistribution = make(map[string]int, 12)
	for i, m := range monthNames {
		st.MonthlyDistribution[m] = a.monthly[i]
	}
	st.DailyDistribution = make(map[string]int, 7)
	for i, d := range dayNames {
		st.DailyDistribution[d] = a.daily[i]
	}

	st.PeakHour = maxIndex(a.hourly[:])
	st.PeakHourFormatted = FormatHour(st.PeakHour)
	st.BusiestDay = dayNames[maxIndex(a.daily[:])]
	st.BusiestMonth = monthNames[maxIndex(a.monthly[:])]
}

// reduceActivity computes the span, streak and per-day metrics from the
// distinct active dates.
func (a *aggregation) reduceActivity(st *Statistics, total int) {
	sortedDates := make([]string, 0, len(a.dates))
	for d := range a.dates {
		sortedDates = append(sortedDates, d)
	}
	sort.Strings(sortedDates)

	st.DaysActive = len(sortedDates)
	if len(sortedDates) == 0 {
		return
	}

	parsed := make([]time.Time, 0, len(sortedDates))
	for _, d := range sortedDates {
		if t, err := time.Parse(dateKeyLayout, d); err == nil {
			parsed = append(parsed, t)
		}
	}

	if len(parsed) > 0 {
		first := parsed[0]
		last := parsed[len(parsed)-1]
		span := int(last.Sub(first).Hours()/24) + 1
		st.TotalDays = span
		st.ActivityPercentage = percentage(len(sortedDates), span)
	}

	st.AvgCheckinsPerActiveDay = RoundTo1(float64(total) / float64(len(sortedDates)))

	maxDay := a.perDay.Max()
	st.MaxCheckinsDay = maxDay
	st.MaxCheckinsCount = a.perDay.Get(maxDay)

	st.LongestStreak = LongestStreak(parsed)
}

// reduceTimeOfDay buckets the hourly tally into day parts and assigns the
// personality label of the strict-max bucket, ties resolving in
// morning/afternoon/evening/night order.
func (a *aggregation) reduceTimeOfDay(st *Statistics) {
	sum := func(from, to int) int {
		n := 0
		for h := from; h < to; h++ {
			n += a.hourly[h]
		}
		return n
	}

	st.TimeOfDay = TimeOfDay{
		Morning:   sum(5, 12),
		Afternoon: sum(12, 17),
		Evening:   sum(17, 21),
		Night:     sum(21, 24) + sum(0, 5),
	}

	buckets := []struct {
		count int
		label string
	}{
		{st.TimeOfDay.Morning, "Early Bird"},
		{st.TimeOfDay.Afternoon, "Day Explorer"},
		{st.TimeOfDay.Evening, "Evening Wanderer"},
		{st.TimeOfDay.Night, "Night Owl"},
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.count > best.count {
			best = b
		}
	}
	st.TimePersonality = best.label

	weekend := a.daily[5] + a.daily[6] // Saturday, Sunday
	weekday := 0
	for i := 0; i < 5; i++ {
		weekday += a.daily[i]
	}
	st.WeekendPercentage = percentage(weekend, weekend+weekday)
	st.WeekdayPercentage = percentage(weekday, weekend+weekday)
}

// reduceBookends finds the earliest and latest check-ins. Timestamp ties
// keep the record encountered first.
func (a *aggregation) reduceBookends(st *Statistics, checkins []CheckIn) {
	first, last := 0, 0
	for i := range checkins {
		if checkins[i].CreatedAt < checkins[first].CreatedAt {
			first = i
		}
		if checkins[i].CreatedAt > checkins[last].CreatedAt {
			last = i
		}
	}
	st.FirstCheckin = a.summarize(&checkins[first])
	st.LastCheckin = a.summarize(&checkins[last])
}

func (a *aggregation) summarize(c *CheckIn) CheckinSummary {
	t := time.Unix(c.CreatedAt, 0).In(a.cfg.Location)
	return CheckinSummary{
		Venue: venueDisplayName(c.Venue),
		Date:  t.Format(longDateLayout),
		Time:  t.Format(clockLayout),
	}
}

// maxIndex returns the index of the largest value, ties broken by the
// smallest index.
func maxIndex(counts []int) int {
	best := 0
	for i, n := range counts {
		if n > counts[best] {
			best = i
		}
	}
	return best
}
