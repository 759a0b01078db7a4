package stats

import (
	"fmt"
	"math"
)

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

const (
	dateKeyLayout  = "2006-01-02"
	longDateLayout = "January 02, 2006"
	clockLayout    = "03:04 PM"
)

// FormatHour renders an hour of day (0-23) on a 12-hour clock:
// 0 -> "12am", 9 -> "9am", 12 -> "12pm", 13 -> "1pm".
func FormatHour(hour int) string {
	switch {
	case hour == 0:
		return "12am"
	case hour < 12:
		return fmt.Sprintf("%dam", hour)
	case hour == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", hour-12)
	}
}

// RoundTo1 rounds to 1 decimal place.
func RoundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

// roundCoord rounds a coordinate to the given number of decimal digits.
// Buckets compare by value equality, not floating-point bit identity, so
// both inputs of a near pair land on the same key.
func roundCoord(v float64, digits int) float64 {
	factor := math.Pow10(digits)
	return math.Round(v*factor) / factor
}

// percentage returns part/total*100 rounded to 1 decimal, 0 when total
// is 0.
func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return RoundTo1(float64(part) / float64(total) * 100)
}
