package engine

import (
	"math"
	"time"
)

// startOfDay truncates t to midnight in its own location. All window
// comparisons in the engine are calendar-day comparisons, not timestamps.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b (both already at
// midnight). Negative when b is before a.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// nights is the length of a stay window in nights, floored at zero.
func nights(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(startOfDay(checkOut).Sub(startOfDay(checkIn)).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// contains reports whether the [in,out] window fully contains [wIn,wOut].
// Containment, not overlap: on multi-stay itineraries only full containment
// disambiguates which stay a traveler belongs to.
func contains(in, out, wIn, wOut time.Time) bool {
	return !wIn.Before(in) && !wOut.After(out)
}

// overlaps reports whether two [in,out] windows share at least one day.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !bIn.After(aOut) && !bOut.Before(aIn)
}
