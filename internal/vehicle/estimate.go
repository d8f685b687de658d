package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EstimateLayout is the wire layout of EstimatedDate: four-digit year, then
// day, then month.
const EstimateLayout = "2006/02/01"

// ErrNoEstimate is returned by ParseEstimate for empty input.
var ErrNoEstimate = errors.New("no estimated date")

// ParseEstimate parses wire text into a date at local midnight.
func ParseEstimate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrNoEstimate
	}
	t, err := time.ParseInLocation(EstimateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid estimated date %q (want YYYY/DD/MM): %w", s, err)
	}
	return t, nil
}

// FormatEstimate renders t in EstimateLayout using t's own calendar date.
func FormatEstimate(t time.Time) string {
	return t.Format(EstimateLayout)
}

// SameDay reports whether a and b fall on the same calendar date in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
