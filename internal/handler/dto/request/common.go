package request

import (
	"errors"
	"time"

	"court-booking/internal/domain/schedule"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTime = errors.New("time must be formatted as HH:MM")
)

// ParseDate accepts a YYYY-MM-DD calendar date and normalizes it to
// midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return schedule.Date(t), nil
}

// slotWindows converts a list of HH:MM start times on one date into
// canonical hourly windows.
func slotWindows(date time.Time, startTimes []string) ([]schedule.Window, error) {
	windows := make([]schedule.Window, 0, len(startTimes))
	for _, s := range startTimes {
		start, err := schedule.ParseTimeOfDay(s)
		if err != nil {
			return nil, ErrInvalidTime
		}
		w, err := schedule.NewWindow(date, start, start.Add(schedule.SlotDuration))
		if err != nil {
			return nil, ErrInvalidTime
		}
		windows = append(windows, w)
	}
	return windows, nil
}
