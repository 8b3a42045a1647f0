// Package calendar holds the day-granularity date helpers shared by the ledger,
// the rate table and the text/HTTP layers.
package calendar

import (
	"fmt"
	"time"
)

// Layouts used on the wire and on screen.
const (
	DayLayout   = "20060102"
	MonthLayout = "200601"
)

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a yyyyMMdd string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyyMMdd", s)
	}
	return t, nil
}

// FormatDay renders t as yyyyMMdd.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}
