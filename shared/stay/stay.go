// Package stay models hotel stays as half-open date ranges [checkIn, checkOut).
//
// Dates are calendar days. They are carried as time.Time values normalized to
// midnight UTC so that comparisons and day arithmetic never depend on the
// location the value was parsed or scanned in.
package stay

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format of a calendar date.
	DateLayout = "2006-01-02"

	// CompactLayout is the date component used inside booking ids.
	CompactLayout = "20060102"

	hoursPerDay = 24
)

// Date truncates t to its calendar day in t's own location and returns that day
// at midnight UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a normalized date.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return parsed, nil
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return Date(t).Format(DateLayout)
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share at least one day.
// Touching ranges, where one ends on the day the other starts, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return Date(aStart).Before(Date(bEnd)) && Date(bStart).Before(Date(aEnd))
}

// OccupiesDate reports whether date falls inside [checkIn, checkOut).
func OccupiesDate(checkIn, checkOut, date time.Time) bool {
	day := Date(date)

	return !day.Before(Date(checkIn)) && day.Before(Date(checkOut))
}

// Nights returns the whole number of nights between checkIn and checkOut.
func Nights(checkIn, checkOut time.Time) int {
	return int(Date(checkOut).Sub(Date(checkIn)).Hours() / hoursPerDay)
}

// Valid reports whether the range spans at least one night.
func Valid(checkIn, checkOut time.Time) bool {
	return Date(checkOut).After(Date(checkIn))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}

// MonthDays returns every day of the month containing date, in order.
func MonthDays(date time.Time) []time.Time {
	first := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	days := make([]time.Time, 0, 31)
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}
