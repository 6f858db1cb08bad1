package usecase

import (
	"context"

	"court-booking/internal/domain/blocking"
	"court-booking/internal/domain/principal"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ScheduleMaintenanceInput struct {
	CourtID     uuid.UUID
	Window      schedule.Window
	Reason      blocking.MaintenanceReason
	Description string
	Actor       principal.Principal
}

// ScheduleMaintenanceResult reports the stored schedule plus its
// expansion into hourly display slots.
type ScheduleMaintenanceResult struct {
	ID    uuid.UUID
	Slots []schedule.Window
}

type MaintenanceCommands interface {
	Schedule(ctx context.Context, input ScheduleMaintenanceInput) (*ScheduleMaintenanceResult, error)
	Cancel(ctx context.Context, id uuid.UUID, actor principal.Principal) error
}

type maintenanceCommandsImpl struct {
	uow    UnitOfWork
	courts CourtReader
}

func NewMaintenanceCommands(uow UnitOfWork, courts CourtReader) MaintenanceCommands {
	return &maintenanceCommandsImpl{uow: uow, courts: courts}
}

// Schedule claims a spanning window. Unlike bulk blocking there is no
// partial success: any overlapping reservation, block or maintenance
// rejects the whole window.
func (m *maintenanceCommandsImpl) Schedule(ctx context.Context, input ScheduleMaintenanceInput) (*ScheduleMaintenanceResult, error) {
	if err := m.authorizeCourt(ctx, input.CourtID, input.Actor); err != nil {
		return nil, err
	}

	ms, err := blocking.NewMaintenanceSchedule(input.CourtID, input.Window, input.Reason, input.Description, input.Actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = m.uow.WithinSerializable(ctx, func(ctx context.Context, tx Tx) error {
		claims, err := tx.Claims().ActiveClaims(ctx, input.CourtID, input.Window.Date())
		if err != nil {
			return errs.Mark(err, ErrStoreUnavailable)
		}
		if hits := schedule.Conflicts(input.Window, claims); len(hits) > 0 {
			return newConflictError(hits)
		}
		return tx.Maintenance().Insert(ctx, ms)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDBFailure) {
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		return nil, err
	}

	return &ScheduleMaintenanceResult{ID: ms.ID(), Slots: ms.DisplaySlots()}, nil
}

func (m *maintenanceCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actor principal.Principal) error {
	return m.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		ms, err := tx.Maintenance().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrNotFound)
			}
			return errs.Mark(err, ErrStoreUnavailable)
		}

		if err := m.authorizeCourt(ctx, ms.CourtID(), actor); err != nil {
			return err
		}

		removed, err := tx.Maintenance().Delete(ctx, id)
		if err != nil {
			return errs.Mark(err, ErrStoreUnavailable)
		}
		if !removed {
			return errs.Mark(errs.New("maintenance schedule already removed"), ErrNotFound)
		}
		return nil
	})
}

func (m *maintenanceCommandsImpl) authorizeCourt(ctx context.Context, courtID uuid.UUID, actor principal.Principal) error {
	court, err := m.courts.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrNotFound)
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	if !actor.IsAdmin() && court.OwnerID != actor.ID {
		return errs.Mark(errs.New("court belongs to another owner"), ErrAccessDenied)
	}
	return nil
}
