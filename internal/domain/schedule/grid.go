package schedule

import "time"

// Slot policy: 60-minute canonical slots, default operating hours used
// when a court has no per-day schedule configured.
const (
	SlotDuration = time.Hour

	DefaultOpen  TimeOfDay = 6 * 60  // 06:00
	DefaultClose TimeOfDay = 23 * 60 // 23:00
)

// DayHours is one weekday's operating span for a court.
type DayHours struct {
	Open  bool
	Start TimeOfDay
	End   TimeOfDay
}

func DefaultDayHours() DayHours {
	return DayHours{Open: true, Start: DefaultOpen, End: DefaultClose}
}

// Grid derives the canonical bookable windows for a date from the day's
// operating hours. It is deterministic and never persisted; callers
// regenerate it per request. If the open span is not a whole number of
// hours the trailing partial hour is dropped.
func Grid(date time.Time, hours DayHours) []Window {
	if !hours.Open || hours.Start >= hours.End {
		return nil
	}

	day := Date(date)
	slots := make([]Window, 0, (hours.End-hours.Start)/60)
	for start := hours.Start; start+60 <= hours.End; start += 60 {
		slots = append(slots, Window{date: day, start: start, end: start + 60})
	}
	return slots
}

// InGrid reports whether w matches a canonical slot of the grid exactly.
// Booking requests must claim whole canonical slots.
func InGrid(grid []Window, w Window) bool {
	for _, slot := range grid {
		if slot.Equal(w) {
			return true
		}
	}
	return false
}
