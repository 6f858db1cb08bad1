package booking

import (
	"errors"
	"time"

	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition  = errors.New("invalid reservation state transition")
	ErrCancellationWindow = errors.New("cancellation window violated")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrMissingReference   = errors.New("booking reference is required")
)

// DefaultCancellationCutoff is the policy default: cancellation is
// rejected once the start instant is 2 hours away or closer.
const DefaultCancellationCutoff = 2 * time.Hour

// Reservation is a customer's claim on one window of one court.
// Lifecycle: pending -> confirmed -> completed, with pending|confirmed
// -> cancelled. completed and cancelled are terminal.
type Reservation struct {
	id            uuid.UUID
	courtID       uuid.UUID
	customerID    *uuid.UUID // nil for guest bookings taken at the desk
	window        schedule.Window
	amountCents   int64
	status        Status
	paymentStatus PaymentStatus
	bookingRef    string
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(courtID uuid.UUID, customerID *uuid.UUID, window schedule.Window, amountCents int64, bookingRef string) (*Reservation, error) {
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if bookingRef == "" {
		return nil, ErrMissingReference
	}
	return &Reservation{
		id:            uuid.New(),
		courtID:       courtID,
		customerID:    customerID,
		window:        window,
		amountCents:   amountCents,
		status:        StatusPending,
		paymentStatus: PaymentPending,
		bookingRef:    bookingRef,
	}, nil
}

func Reconstruct(
	id, courtID uuid.UUID,
	customerID *uuid.UUID,
	window schedule.Window,
	amountCents int64,
	status Status,
	paymentStatus PaymentStatus,
	bookingRef string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		courtID:       courtID,
		customerID:    customerID,
		window:        window,
		amountCents:   amountCents,
		status:        status,
		paymentStatus: paymentStatus,
		bookingRef:    bookingRef,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) CourtID() uuid.UUID           { return r.courtID }
func (r *Reservation) CustomerID() *uuid.UUID       { return r.customerID }
func (r *Reservation) Window() schedule.Window      { return r.window }
func (r *Reservation) AmountCents() int64           { return r.amountCents }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) PaymentStatus() PaymentStatus { return r.paymentStatus }
func (r *Reservation) BookingRef() string           { return r.bookingRef }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }

// BelongsTo reports whether customerID holds this reservation. Guest
// reservations belong to nobody; only staff may act on them.
func (r *Reservation) BelongsTo(customerID uuid.UUID) bool {
	return r.customerID != nil && *r.customerID == customerID
}

func (r *Reservation) Confirm() error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusConfirmed
	return nil
}

// Cancel enforces the cutoff policy: the reservation may be cancelled
// only while now is strictly before start-cutoff. At exactly
// start-cutoff the request is rejected.
func (r *Reservation) Cancel(now time.Time, cutoff time.Duration) error {
	if !r.status.IsActive() {
		return ErrInvalidTransition
	}
	if !now.Before(r.window.StartAt().Add(-cutoff)) {
		return ErrCancellationWindow
	}
	r.status = StatusCancelled
	return nil
}

// CompleteIfElapsed transitions an active reservation whose end instant
// has passed into completed. Idempotent: terminal states and windows
// still in progress are left untouched.
func (r *Reservation) CompleteIfElapsed(now time.Time) bool {
	if !r.status.IsActive() || now.Before(r.window.EndAt()) {
		return false
	}
	r.status = StatusCompleted
	return true
}

func (r *Reservation) MarkPayment(status PaymentStatus) {
	r.paymentStatus = status
}
