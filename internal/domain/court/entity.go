package court

import (
	"errors"
	"time"

	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("court name is required")
	ErrInvalidPrice = errors.New("price per hour cannot be negative")
)

// WeeklyHours holds one DayHours per weekday, indexed by time.Weekday.
type WeeklyHours [7]schedule.DayHours

func DefaultWeeklyHours() WeeklyHours {
	var wh WeeklyHours
	for i := range wh {
		wh[i] = schedule.DefaultDayHours()
	}
	return wh
}

func (wh WeeklyHours) On(day time.Weekday) schedule.DayHours {
	return wh[day]
}

// Court is a single bookable resource belonging to a facility. Edits
// come from the owner-side collaborator; the engine only reads it.
type Court struct {
	id                uuid.UUID
	facilityID        uuid.UUID
	name              string
	sport             string
	pricePerHourCents int64
	hours             *WeeklyHours // nil means the default 06:00-23:00 policy
}

func NewCourt(id, facilityID uuid.UUID, name, sport string, pricePerHourCents int64, hours *WeeklyHours) (*Court, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if pricePerHourCents < 0 {
		return nil, ErrInvalidPrice
	}
	return &Court{
		id:                id,
		facilityID:        facilityID,
		name:              name,
		sport:             sport,
		pricePerHourCents: pricePerHourCents,
		hours:             hours,
	}, nil
}

func (c *Court) ID() uuid.UUID            { return c.id }
func (c *Court) FacilityID() uuid.UUID    { return c.facilityID }
func (c *Court) Name() string             { return c.name }
func (c *Court) Sport() string            { return c.sport }
func (c *Court) PricePerHourCents() int64 { return c.pricePerHourCents }

// HoursOn returns the operating span for the given date's weekday,
// falling back to the policy default when none is configured.
func (c *Court) HoursOn(date time.Time) schedule.DayHours {
	if c.hours == nil {
		return schedule.DefaultDayHours()
	}
	return c.hours.On(schedule.Date(date).Weekday())
}

// PriceFor computes the amount for a booked window from the hourly rate.
func (c *Court) PriceFor(w schedule.Window) int64 {
	return c.pricePerHourCents * int64(w.Duration()) / int64(time.Hour)
}
