package engine

import (
	"time"

	"github.com/comitanigiacomo/kanso-habit-engine/internal/core/calendar"
)

// EditGraceHour is the local hour at which the previous day locks. Until
// then a forgotten entry can still be backfilled after midnight.
const EditGraceHour = 6

// IsDateEditable gates entry writes. Today is always editable, the future
// never is, yesterday stays open while now's local hour is before
// EditGraceHour, and anything older is locked. A malformed date is an error,
// not a verdict.
func IsDateEditable(date string, now time.Time) (bool, error) {
	d, err := calendar.ParseDate(date)
	if err != nil {
		return false, err
	}

	switch calendar.DaysBetween(d, calendar.Today(now)) {
	case 0:
		return true, nil
	case 1:
		return now.Hour() < EditGraceHour, nil
	default:
		return false, nil
	}
}
