// Package calendar holds the date arithmetic the analytics engine is built
// on. Dates travel as YYYY-MM-DD strings at the edges of the system and as
// UTC-midnight time.Time values internally, so string comparison and
// chronological comparison always agree. Weeks are ISO weeks: Monday first.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the canonical date key format.
const DateLayout = "2006-01-02"

// ErrInvalidDate reports a date string that is not a valid YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date (must be YYYY-MM-DD)")

// ParseDate parses a canonical date key into a UTC-midnight instant.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// MustParseDate is ParseDate for values known to be valid, typically test
// fixtures and compile-time constants. It panics on malformed input.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDate renders a canonical date key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOf strips the time of day in t's location and re-anchors the calendar
// date at UTC midnight. This is how a wall-clock instant becomes a local
// calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the calendar date of now, in now's location.
func Today(now time.Time) time.Time {
	return DateOf(now)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the whole calendar days from a to b (negative when b
// precedes a). Both arguments are reduced to their calendar dates first.
func DaysBetween(a, b time.Time) int {
	return int(DateOf(b).Sub(DateOf(a)).Hours() / 24)
}

// DayOfWeek numbers days Monday=1 through Sunday=7.
func DayOfWeek(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// WeekStart returns the Monday of t's week as a UTC-midnight date. A Sunday
// maps back six days, never forward.
func WeekStart(t time.Time) time.Time {
	d := DateOf(t)
	return AddDays(d, -(DayOfWeek(d) - 1))
}

// WeekEnd returns the Sunday of t's week.
func WeekEnd(t time.Time) time.Time {
	return AddDays(WeekStart(t), 6)
}

// WeekDates returns the seven date keys of t's week, Monday first.
func WeekDates(t time.Time) [7]string {
	var dates [7]string
	start := WeekStart(t)
	for i := 0; i < 7; i++ {
		dates[i] = FormatDate(AddDays(start, i))
	}
	return dates
}
