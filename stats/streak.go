package stats

import "time"

// ============================================================================
// STREAK DETECTION
// ============================================================================

// LongestStreak returns the longest run of calendar-consecutive dates.
// Input must be sorted ascending and duplicate-free; dates are compared at
// day granularity. Returns 0 for empty input and 1 for a single date.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	maxStreak := 1
	current := 1
	for i := 1; i < len(dates); i++ {
		if sameDay(dates[i-1].AddDate(0, 0, 1), dates[i]) {
			current++
			if current > maxStreak {
				maxStreak = current
			}
		} else {
			current = 1
		}
	}
	return maxStreak
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
