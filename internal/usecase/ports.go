package usecase

import (
	"context"
	"time"

	"court-booking/internal/domain/blocking"
	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra/readstore"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside a database transaction. Serializable
// executions may be retried, so the callback must be idempotent up to
// the commit.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the transaction-bound stores.
type Tx interface {
	Reservations() ReservationRepository
	Blocks() BlockedSlotRepository
	Maintenance() MaintenanceRepository
	Claims() ClaimReader
}

type ReservationRepository interface {
	Insert(ctx context.Context, res *booking.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	Update(ctx context.Context, res *booking.Reservation) error
	CompleteElapsed(ctx context.Context, now time.Time) (int64, error)
}

type BlockedSlotRepository interface {
	Upsert(ctx context.Context, b *blocking.BlockedSlot) error
	Delete(ctx context.Context, courtID uuid.UUID, w schedule.Window) (bool, error)
}

type MaintenanceRepository interface {
	Insert(ctx context.Context, m *blocking.MaintenanceSchedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*blocking.MaintenanceSchedule, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ClaimReader lists every active claim on a court for one day:
// pending/confirmed reservations, blocked slots and maintenance.
type ClaimReader interface {
	ActiveClaims(ctx context.Context, courtID uuid.UUID, date time.Time) ([]schedule.Claim, error)
}

type CourtReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readstore.CourtSnapshot, error)
	ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*readstore.CourtSnapshot, error)
}

type ReservationViewReader interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*readstore.ReservationView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*readstore.ReservationView, error)
}

// PaymentGateway holds and releases funds against a booking reference.
// Failures never roll back a committed reservation; payment status is
// reconciled out of band.
type PaymentGateway interface {
	Hold(ctx context.Context, bookingRef string, amountCents int64) error
	Release(ctx context.Context, bookingRef string) error
}
