// Package schedule holds the time arithmetic the whole engine is built
// on: canonical slot windows, the single overlap predicate, and the
// per-slot availability resolution.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidWindow    = errors.New("window start must be before end")
)

// TimeOfDay is a wall-clock time expressed as minutes from midnight.
// It is a comparison key, never a display string.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses "15:04" formatted input. 24:00 is accepted as an
// exclusive end bound.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d/time.Minute)
}

// Date normalizes t to midnight UTC so dates compare as values.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Window is a half-open interval [start, end) on a calendar date. It is
// the atomic unit of overlap comparison and is never persisted on its
// own; reservations, blocks and maintenance each carry one.
type Window struct {
	date  time.Time
	start TimeOfDay
	end   TimeOfDay
}

func NewWindow(date time.Time, start, end TimeOfDay) (Window, error) {
	if start >= end {
		return Window{}, ErrInvalidWindow
	}
	return Window{date: Date(date), start: start, end: end}, nil
}

// WindowFromInstants rebuilds a Window from persisted UTC instants.
func WindowFromInstants(startAt, endAt time.Time) Window {
	startAt = startAt.UTC()
	endAt = endAt.UTC()
	date := Date(startAt)
	return Window{
		date:  date,
		start: TimeOfDay(startAt.Sub(date) / time.Minute),
		end:   TimeOfDay(endAt.Sub(date) / time.Minute),
	}
}

func (w Window) Date() time.Time  { return w.date }
func (w Window) Start() TimeOfDay { return w.start }
func (w Window) End() TimeOfDay   { return w.end }

// StartAt returns the window's start instant in UTC.
func (w Window) StartAt() time.Time {
	return w.date.Add(time.Duration(w.start) * time.Minute)
}

func (w Window) EndAt() time.Time {
	return w.date.Add(time.Duration(w.end) * time.Minute)
}

func (w Window) Duration() time.Duration {
	return time.Duration(w.end-w.start) * time.Minute
}

// Overlaps implements the half-open intersection rule: [s1,e1) and
// [s2,e2) conflict iff s1 < e2 && s2 < e1. Touching endpoints do not
// conflict.
func (w Window) Overlaps(other Window) bool {
	if !w.date.Equal(other.date) {
		return false
	}
	return w.start < other.end && other.start < w.end
}

func (w Window) Equal(other Window) bool {
	return w.date.Equal(other.date) && w.start == other.start && w.end == other.end
}

// Hours expands the window into discrete hourly slots, used when a
// spanning maintenance window is shown against the slot grid. A
// trailing partial hour is kept as-is so the display covers the whole
// window.
func (w Window) Hours() []Window {
	var slots []Window
	for start := w.start; start < w.end; start += 60 {
		end := start + 60
		if end > w.end {
			end = w.end
		}
		slots = append(slots, Window{date: w.date, start: start, end: end})
	}
	return slots
}

func (w Window) String() string {
	return fmt.Sprintf("%s %s-%s", w.date.Format("2006-01-02"), w.start, w.end)
}
