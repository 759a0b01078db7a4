package stats

// ============================================================================
// STATS TYPES - Check-In Input Records and the Statistics Result
// ============================================================================
// Input records mirror the raw check-in payload: every field is optional
// and absence is the normal case. The engine substitutes documented
// defaults on read instead of rejecting partial records.
//
// The engine has ZERO external dependencies.
// ============================================================================

// ============================================================================
// INPUT RECORDS
// ============================================================================

// CheckIn is a single timestamped visit event. All fields are optional;
// a zero-value CheckIn is a valid (if uninformative) input.
type CheckIn struct {
	Venue     *Venue      `json:"venue,omitempty"`
	CreatedAt int64       `json:"createdAt"` // Unix seconds, local-clock interpretation
	With      []Companion `json:"with,omitempty"`
	Shout     string      `json:"shout,omitempty"`
	Photos    *PhotoGroup `json:"photos,omitempty"`
}

// Venue is the place a check-in happened at. Records sharing an id are the
// same venue; records without an id collapse into one synthetic
// "Unknown Venue" entry.
type Venue struct {
	ID         string     `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Location   *Location  `json:"location,omitempty"`
	Categories []Category `json:"categories,omitempty"`
}

// Location holds a venue's place facts. Lat/Lng of 0 count as absent.
type Location struct {
	City    string  `json:"city,omitempty"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
}

// Category is a venue category; only the first element of a venue's
// category list is consulted (its primary category).
type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Companion is a person a check-in was shared with. The display name is
// the trimmed "FirstName LastName" concatenation; companions whose display
// name trims to empty are ignored.
type Companion struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// PhotoGroup wraps the photos attached to a check-in. Only len(Items)
// matters to the engine.
type PhotoGroup struct {
	Count int     `json:"count"`
	Items []Photo `json:"items,omitempty"`
}

// Photo is a single attached photo.
type Photo struct {
	ID     string `json:"id,omitempty"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// ============================================================================
// STATISTICS - render-ready output
// ============================================================================

// Statistics is the immutable result of one Aggregate call. Field names
// match the report renderer's contract. A nil *Statistics (empty input)
// renders as an empty JSON object.
type Statistics struct {
	TotalCheckins int `json:"total_checkins"`

	// Venues
	UniqueVenues int         `json:"unique_venues"`
	TopVenues    []VenueRank `json:"top_venues"`

	// Categories
	TopCategories    []NameCount `json:"top_categories"`
	UniqueCategories int         `json:"unique_categories"`

	// Places
	TopCities    []NameCount `json:"top_cities"`
	UniqueCities int         `json:"unique_cities"`
	Countries    []NameCount `json:"countries"`

	// Temporal distributions (dense: every hour/month/weekday present)
	HourlyDistribution  map[string]int `json:"hourly_distribution"`
	MonthlyDistribution map[string]int `json:"monthly_distribution"`
	DailyDistribution   map[string]int `json:"daily_distribution"`

	// Peaks
	PeakHour          int    `json:"peak_hour"`
	PeakHourFormatted string `json:"peak_hour_formatted"`
	BusiestDay        string `json:"busiest_day"`
	BusiestMonth      string `json:"busiest_month"`

	// Activity span
	DaysActive              int     `json:"days_active"`
	TotalDays               int     `json:"total_days_2025"`
	ActivityPercentage      float64 `json:"activity_percentage"`
	AvgCheckinsPerActiveDay float64 `json:"avg_checkins_per_active_day"`
	MaxCheckinsDay          string  `json:"max_checkins_day"`
	MaxCheckinsCount        int     `json:"max_checkins_count"`
	LongestStreak           int     `json:"longest_streak"`

	// Social
	CheckinsWithFriends int         `json:"checkins_with_friends"`
	FriendPercentage    float64     `json:"friend_percentage"`
	TopFriends          []NameCount `json:"top_friends"`
	SoloCheckins        int         `json:"solo_checkins"`
	SoloPercentage      float64     `json:"solo_percentage"`

	// Shouts and photos
	CheckinsWithShouts int     `json:"checkins_with_shouts"`
	ShoutPercentage    float64 `json:"shout_percentage"`
	TotalPhotos        int     `json:"total_photos"`

	// Time of day
	TimeOfDay       TimeOfDay `json:"time_of_day"`
	TimePersonality string    `json:"time_personality"`

	// Weekend vs weekday
	WeekendPercentage float64 `json:"weekend_percentage"`
	WeekdayPercentage float64 `json:"weekday_percentage"`

	// Bookends
	FirstCheckin CheckinSummary `json:"first_checkin"`
	LastCheckin  CheckinSummary `json:"last_checkin"`

	// Map
	MapPoints []MapPoint `json:"map_points"`
}

// NameCount is one entry of a ranked list.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VenueRank is one entry of the top-venues ranking, carrying the venue
// facts cached during the main pass.
type VenueRank struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Category string `json:"category"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

// TimeOfDay buckets the hourly tallies into four day parts.
// Every hour falls into exactly one bucket, so the four counts sum to
// the total check-in count.
type TimeOfDay struct {
	Morning   int `json:"morning"`   // [5, 12)
	Afternoon int `json:"afternoon"` // [12, 17)
	Evening   int `json:"evening"`   // [17, 21)
	Night     int `json:"night"`     // [21, 24) and [0, 5)
}

// CheckinSummary renders one bookend check-in (earliest or latest).
type CheckinSummary struct {
	Venue string `json:"venue"`
	Date  string `json:"date"` // "January 02, 2006"
	Time  string `json:"time"` // "03:04 PM"
}

// MapPoint is one rounded-coordinate bucket: all visits whose venue
// coordinates round to the same 4-decimal pair collapse into one point.
type MapPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Names string  `json:"names"` // comma-joined venue names, one per visit
}
