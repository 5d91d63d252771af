package booking

import (
	"fmt"
	"time"
)

// CapacityWindow bounds concurrent bookings per salon. It is fixed at one
// hour regardless of the requested services' durations.
const CapacityWindow = time.Hour

// parseTimeOfDay reads a salon working-hours value, "09:00:00" or "09:00".
func parseTimeOfDay(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time of day %q", s)
}

// onDate pins a time-of-day to the calendar date of ref, in ref's location.
func onDate(ref, tod time.Time) time.Time {
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0,
		ref.Location(),
	)
}

// WithinWorkingHours reports whether t falls inside [open, close) on t's own
// calendar date. Working hours never span midnight under this model.
func WithinWorkingHours(startWorkingHours, endWorkingHours string, t time.Time) (bool, error) {
	opens, err := parseTimeOfDay(startWorkingHours)
	if err != nil {
		return false, err
	}
	closes, err := parseTimeOfDay(endWorkingHours)
	if err != nil {
		return false, err
	}

	dayOpen := onDate(t, opens)
	dayClose := onDate(t, closes)

	return !t.Before(dayOpen) && t.Before(dayClose), nil
}
