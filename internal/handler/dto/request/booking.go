package request

import (
	"court-booking/internal/domain/principal"
	"court-booking/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CourtID    uuid.UUID  `json:"court_id" binding:"required"`
	Date       string     `json:"date" binding:"required"`
	StartTimes []string   `json:"start_times" binding:"required,min=1"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
}

// ToInput resolves the booked customer: customers always book for
// themselves; staff may book for a named customer or, when none is
// given, take a guest booking.
func (r CreateBookingRequest) ToInput(actor principal.Principal) (usecase.CreateBookingInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	windows, err := slotWindows(date, r.StartTimes)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}

	customerID := r.CustomerID
	if !actor.IsStaff() {
		id := actor.ID
		customerID = &id
	}

	return usecase.CreateBookingInput{
		CourtID:    r.CourtID,
		CustomerID: customerID,
		Windows:    windows,
	}, nil
}
