package response

import (
	"court-booking/internal/infra/readstore"
	"court-booking/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingResponse struct {
	BookingRef     string      `json:"booking_ref"`
	ReservationIDs []uuid.UUID `json:"reservation_ids"`
	AmountCents    int64       `json:"amount_cents"`
}

func FromCreateBookingResult(r *usecase.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingRef:     r.BookingRef,
		ReservationIDs: r.ReservationIDs,
		AmountCents:    r.AmountCents,
	}
}

// ReservationView already carries response-shaped JSON tags; the alias
// keeps handlers importing one dto package.
type ReservationResponse = readstore.ReservationView
