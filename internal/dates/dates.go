// Package dates holds the calendar-date helpers shared by the journaling
// workflow. Everything here is pure and pinned to UTC: the web client picks
// dates as plain YYYY-MM-DD strings, and using UTC on both parsing and
// display avoids the off-by-one-day shifts a local timezone would introduce.
package dates

import "time"

// ISOLayout is the wire format for calendar dates.
const ISOLayout = "2006-01-02"

// displayLayout renders as MM/DD/YYYY with a weekday abbreviation.
const displayLayout = "01/02/2006 (Mon)"

// FormatDisplayDate renders an ISO date as "MM/DD/YYYY (Ddd)" using UTC
// calendar fields. Malformed input degrades to a placeholder string rather
// than an error; display formatting is best effort.
func FormatDisplayDate(isoDate string) string {
	t, err := time.ParseInLocation(ISOLayout, isoDate, time.UTC)
	if err != nil {
		return "Invalid Date"
	}
	return t.Format(displayLayout)
}

// ParseISODate parses a strict YYYY-MM-DD string at UTC midnight.
func ParseISODate(s string) (time.Time, error) {
	return time.ParseInLocation(ISOLayout, s, time.UTC)
}

// Today returns the current UTC calendar date in ISO form.
func Today() string {
	return time.Now().UTC().Format(ISOLayout)
}

// Midnight truncates t to UTC midnight.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
