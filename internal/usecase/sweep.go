package usecase

import (
	"context"

	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
)

type SweepCommands interface {
	CompleteElapsed(ctx context.Context) (int64, error)
}

type sweepCommandsImpl struct {
	uow   UnitOfWork
	clock clock.Clock
}

func NewSweepCommands(uow UnitOfWork, clk clock.Clock) SweepCommands {
	return &sweepCommandsImpl{uow: uow, clock: clk}
}

// CompleteElapsed moves active reservations whose end instant has
// passed into completed. Safe to run from overlapping schedules; a
// second pass finds nothing left to update.
func (s *sweepCommandsImpl) CompleteElapsed(ctx context.Context) (int64, error) {
	var completed int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
		n, err := tx.Reservations().CompleteElapsed(ctx, s.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrStoreUnavailable)
		}
		completed = n
		return nil
	})
	return completed, err
}
