package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/infra/db"

	"github.com/google/uuid"
)

// ReservationRepository is the only writer of reservation rows. The
// overlap invariant is enforced by the store's exclusion constraint;
// an insert that loses the race surfaces as KindConflict.
type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Insert(ctx context.Context, res *booking.Reservation) error {
	query := `
		INSERT INTO reservations
			(id, court_id, customer_id, booking_date, start_at, end_at,
			 amount_cents, status, payment_status, booking_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	w := res.Window()
	_, err := r.db.Exec(ctx, query,
		res.ID(),
		res.CourtID(),
		res.CustomerID(),
		w.Date(),
		w.StartAt(),
		w.EndAt(),
		res.AmountCents(),
		res.Status().String(),
		res.PaymentStatus().String(),
		res.BookingRef(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	query := `
		SELECT id, court_id, customer_id, start_at, end_at,
		       amount_cents, status, payment_status, booking_ref,
		       created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var (
		resID, courtID uuid.UUID
		customerID     *uuid.UUID
		startAt, endAt time.Time
		amountCents    int64
		status         string
		paymentStatus  string
		bookingRef     string
		createdAt      time.Time
		updatedAt      time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&resID, &courtID, &customerID, &startAt, &endAt,
		&amountCents, &status, &paymentStatus, &bookingRef,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return booking.Reconstruct(
		resID, courtID, customerID,
		schedule.WindowFromInstants(startAt, endAt),
		amountCents,
		booking.Status(status),
		booking.PaymentStatus(paymentStatus),
		bookingRef,
		createdAt, updatedAt,
	), nil
}

// Update persists the mutable lifecycle fields only; the window and
// identity of a reservation never change.
func (r *ReservationRepository) Update(ctx context.Context, res *booking.Reservation) error {
	query := `
		UPDATE reservations
		SET status = $2, payment_status = $3, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, res.ID(), res.Status().String(), res.PaymentStatus().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "reservation not found")
	}
	return nil
}

// CompleteElapsed is the auto-complete sweep: one idempotent statement,
// safe to re-run and safe to run concurrently with itself.
func (r *ReservationRepository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE reservations
		SET status = 'completed', updated_at = now()
		WHERE status IN ('pending', 'confirmed') AND end_at <= $1
	`

	tag, err := r.db.Exec(ctx, query, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete elapsed reservations", err)
	}
	return tag.RowsAffected(), nil
}
