// Package rotation computes duty assignments for a fixed-period chore
// rotation: who is on duty now, the boundaries of their period, and the
// sequence of upcoming periods. All functions are pure; callers supply
// the clock.
package rotation

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a day on the UTC calendar with no time-of-day component.
// Rotation arithmetic is defined over calendar days, not instants, so the
// two are kept as distinct types.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date from calendar fields. Out-of-range fields are
// normalized the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the UTC calendar day containing the instant t.
func DateOf(t time.Time) Date {
	t = t.UTC()
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.StartOfDay().Weekday()
}

// StartOfDay returns midnight UTC of d.
func (d Date) StartOfDay() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last represented instant of d: 23:59:59.999 UTC.
func (d Date) EndOfDay() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

// String renders d in YYYY-MM-DD form.
func (d Date) String() string {
	return d.StartOfDay().Format(DateLayout)
}
