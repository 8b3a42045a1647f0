package interest

import (
	"errors"
	"fmt"
	"time"

	"gicbank/internal/shared/calendar"
)

// ErrInvalidPeriod is returned for a month outside 1-12 or an unparsable yyyyMM.
var ErrInvalidPeriod = errors.New("invalid statement period")

// Period is one calendar month.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates year and month.
func NewPeriod(year int, month time.Month) (Period, error) {
	if month < time.January || month > time.December || year < 1 {
		return Period{}, fmt.Errorf("%w: %04d-%02d", ErrInvalidPeriod, year, int(month))
	}
	return Period{Year: year, Month: month}, nil
}

// ParsePeriod parses a yyyyMM string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(calendar.MonthLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q, expected yyyyMM", ErrInvalidPeriod, s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Start is the first day of the month.
func (p Period) Start() time.Time {
	return calendar.Date(p.Year, p.Month, 1)
}

// End is the first day of the following month (exclusive bound).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// LastDay is the final calendar day of the month.
func (p Period) LastDay() time.Time {
	return p.End().AddDate(0, 0, -1)
}

// Contains reports whether date falls inside the month.
func (p Period) Contains(date time.Time) bool {
	d := calendar.Day(date)
	return !d.Before(p.Start()) && d.Before(p.End())
}

func (p Period) String() string {
	return p.Start().Format(calendar.MonthLayout)
}
