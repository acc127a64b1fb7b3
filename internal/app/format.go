package app

import (
	"fmt"
	"time"
)

// FormatTimestamp renders an ISO-8601 timestamp for display, e.g.
// "2021-04-01T21:30:00Z" becomes "01st April 2021 - 09:30 PM UTC".
// Input that does not parse is returned unchanged, so one bad stored
// record degrades its own entry instead of failing the whole feed.
func FormatTimestamp(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}

	t = t.UTC()
	day := t.Day()
	return fmt.Sprintf("%02d%s %s - %s UTC",
		day, ordinalSuffix(day), t.Format("January 2006"), t.Format("03:04 PM"))
}

// ordinalSuffix returns the English ordinal suffix for a day of month.
// 11, 12 and 13 take "th" regardless of their last digit.
func ordinalSuffix(day int) string {
	switch day {
	case 11, 12, 13:
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
