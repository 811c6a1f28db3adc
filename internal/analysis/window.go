package analysis

import (
	"errors"
	"time"
)

// ErrInvalidRange is returned when the selected start date falls after the
// end date. Nothing is computed in that case.
var ErrInvalidRange = errors.New("start date is after end date")

// ErrNoDataInRange is returned when no order in the export was picked up
// inside the selected range. Distinct from a report full of zero rows: no
// tables are produced at all.
var ErrNoDataInRange = errors.New("no orders picked up in the selected date range")

// Window is an inclusive calendar-date interval. Membership is decided on
// the date component only; time of day is ignored.
type Window struct {
	Start time.Time
	End   time.Time
}

// Windows holds the two pickup-search windows derived from one selected
// range: the range itself for same-day orders, and the range shifted back a
// day for next-day orders, whose delivery cycle runs the day after pickup.
type Windows struct {
	SameDay Window
	NextDay Window
}

// ResolveWindows derives both pickup windows from the selected range.
func ResolveWindows(start, end time.Time) (Windows, error) {
	s, e := dateOf(start), dateOf(end)
	if s.After(e) {
		return Windows{}, ErrInvalidRange
	}
	same := Window{Start: s, End: e}
	return Windows{SameDay: same, NextDay: same.shift(-1)}, nil
}

func (w Window) shift(days int) Window {
	return Window{Start: w.Start.AddDate(0, 0, days), End: w.End.AddDate(0, 0, days)}
}

// Contains reports whether t's calendar date lies in the window, inclusive
// on both ends.
func (w Window) Contains(t time.Time) bool {
	d := dateOf(t)
	return !d.Before(dateOf(w.Start)) && !d.After(dateOf(w.End))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDate(a, b time.Time) bool {
	return dateOf(a).Equal(dateOf(b))
}
