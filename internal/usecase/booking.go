package usecase

import (
	"context"
	"log/slog"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/principal"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// CreateBookingInput is a request for one or more canonical slots on a
// single court and date. CustomerID is nil for guest bookings taken by
// staff.
type CreateBookingInput struct {
	CourtID    uuid.UUID
	CustomerID *uuid.UUID
	Windows    []schedule.Window
}

type CreateBookingResult struct {
	BookingRef     string
	ReservationIDs []uuid.UUID
	AmountCents    int64
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	Cancel(ctx context.Context, reservationID uuid.UUID, actor principal.Principal) error
}

type bookingCommandsImpl struct {
	uow      UnitOfWork
	courts   CourtReader
	payments PaymentGateway
	clock    clock.Clock
	cutoff   time.Duration
}

func NewBookingCommands(uow UnitOfWork, courts CourtReader, payments PaymentGateway, clk clock.Clock, cutoff time.Duration) BookingCommands {
	if cutoff <= 0 {
		cutoff = booking.DefaultCancellationCutoff
	}
	return &bookingCommandsImpl{uow: uow, courts: courts, payments: payments, clock: clk, cutoff: cutoff}
}

// Create books the requested slots atomically: either every slot is
// reserved under one booking reference or none is. The conflict check
// and the inserts share a serializable transaction; the store's
// exclusion constraint backstops races the check cannot see.
func (b *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error) {
	if len(input.Windows) == 0 {
		return nil, errs.Mark(errs.New("at least one slot is required"), ErrValidation)
	}

	court, err := b.courts.FindByID(ctx, input.CourtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	day := schedule.Date(input.Windows[0].Date())
	grid := schedule.Grid(day, court.HoursOn(day))
	if err := validateRequestedWindows(input.Windows, day, grid); err != nil {
		return nil, err
	}

	ref := booking.NewReference(b.clock.Now())
	reservations := make([]*booking.Reservation, 0, len(input.Windows))
	var total int64
	for _, w := range input.Windows {
		amount := court.PriceFor(w)
		res, err := booking.NewReservation(input.CourtID, input.CustomerID, w, amount, ref)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		reservations = append(reservations, res)
		total += amount
	}

	err = b.uow.WithinSerializable(ctx, func(ctx context.Context, tx Tx) error {
		claims, err := tx.Claims().ActiveClaims(ctx, input.CourtID, day)
		if err != nil {
			return errs.Mark(err, ErrStoreUnavailable)
		}
		if hits := schedule.ConflictsAny(input.Windows, claims); len(hits) > 0 {
			return newConflictError(hits)
		}
		for _, res := range reservations {
			if err := tx.Reservations().Insert(ctx, res); err != nil {
				if infra.IsKind(err, infra.KindConflict) {
					return errs.Mark(err, ErrConflict)
				}
				return errs.Mark(err, ErrStoreUnavailable)
			}
		}
		return nil
	})
	if err != nil {
		var conflictErr *ConflictError
		if errs.Is(err, ErrConflict) && !errs.As(err, &conflictErr) {
			return nil, b.describeStoreConflict(ctx, input.CourtID, day, input.Windows)
		}
		return nil, err
	}

	b.holdPayment(ctx, ref, total, reservations)

	ids := make([]uuid.UUID, 0, len(reservations))
	for _, res := range reservations {
		ids = append(ids, res.ID())
	}
	return &CreateBookingResult{BookingRef: ref, ReservationIDs: ids, AmountCents: total}, nil
}

// describeStoreConflict names the claims behind an exclusion-constraint
// rejection. The constraint fires on overlaps committed after the
// in-transaction check, so a fresh read finds the winning claims; if
// that read fails the conflict is still reported, just without detail.
func (b *bookingCommandsImpl) describeStoreConflict(ctx context.Context, courtID uuid.UUID, day time.Time, windows []schedule.Window) error {
	var hits []schedule.Claim
	err := b.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		claims, err := tx.Claims().ActiveClaims(ctx, courtID, day)
		if err != nil {
			return err
		}
		hits = schedule.ConflictsAny(windows, claims)
		return nil
	})
	if err != nil {
		return newConflictError(nil)
	}
	return newConflictError(hits)
}

// holdPayment runs after commit. A successful hold confirms the
// reservations; the slots are already held either way, so a gateway
// failure marks payment failed rather than undoing the booking.
func (b *bookingCommandsImpl) holdPayment(ctx context.Context, ref string, total int64, reservations []*booking.Reservation) {
	status := booking.PaymentCompleted
	if err := b.payments.Hold(ctx, ref, total); err != nil {
		slog.Warn("payment hold failed", "booking_ref", ref, "error", err.Error())
		status = booking.PaymentFailed
	}

	err := b.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		for _, res := range reservations {
			res.MarkPayment(status)
			if status == booking.PaymentCompleted {
				if err := res.Confirm(); err != nil {
					return err
				}
			}
			if err := tx.Reservations().Update(ctx, res); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("payment status update failed", "booking_ref", ref, "error", err.Error())
	}
}

// Cancel enforces ownership and the cutoff policy. Customers may cancel
// their own reservations, owners any reservation on their own courts,
// and admins any at all. Reservations the actor cannot see report
// not-found rather than denied.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, reservationID uuid.UUID, actor principal.Principal) error {
	now := b.clock.Now()

	var bookingRef string
	var refunded bool
	err := b.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		res, err := tx.Reservations().FindByID(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNotFound)
			}
			return errs.Mark(err, ErrStoreUnavailable)
		}

		if err := b.authorizeCancel(ctx, res, actor); err != nil {
			return err
		}

		if err := res.Cancel(now, b.cutoff); err != nil {
			switch {
			case errs.Is(err, booking.ErrCancellationWindow):
				return errs.Mark(err, ErrCancellationWindow)
			default:
				return errs.Mark(err, ErrInvalidTransition)
			}
		}

		if res.PaymentStatus() == booking.PaymentCompleted {
			res.MarkPayment(booking.PaymentRefunded)
			refunded = true
		}
		bookingRef = res.BookingRef()
		return tx.Reservations().Update(ctx, res)
	})
	if err != nil {
		return err
	}

	if refunded {
		if err := b.payments.Release(ctx, bookingRef); err != nil {
			slog.Warn("payment release failed", "booking_ref", bookingRef, "error", err.Error())
		}
	}
	return nil
}

// authorizeCancel decides whether the actor may see this reservation at
// all. An owner's reach stops at their own courts, so a mismatch reads
// as not-found, never as denied.
func (b *bookingCommandsImpl) authorizeCancel(ctx context.Context, res *booking.Reservation, actor principal.Principal) error {
	if res.BelongsTo(actor.ID) || actor.IsAdmin() {
		return nil
	}
	if !actor.IsStaff() {
		return errs.Mark(errs.New("reservation not visible to actor"), ErrNotFound)
	}

	court, err := b.courts.FindByID(ctx, res.CourtID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrNotFound)
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	if court.OwnerID != actor.ID {
		return errs.Mark(errs.New("reservation not visible to actor"), ErrNotFound)
	}
	return nil
}

func validateRequestedWindows(windows []schedule.Window, day time.Time, grid []schedule.Window) error {
	for i, w := range windows {
		if !w.Date().Equal(day) {
			return errs.Mark(errs.New("all slots must share one date"), ErrValidation)
		}
		if !schedule.InGrid(grid, w) {
			return errs.Mark(errs.New("slot outside operating hours"), ErrValidation)
		}
		for _, other := range windows[:i] {
			if w.Overlaps(other) {
				return errs.Mark(errs.New("requested slots overlap each other"), ErrValidation)
			}
		}
	}
	return nil
}
