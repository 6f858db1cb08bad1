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

type BlockOutcome string

const (
	OutcomeBlocked  BlockOutcome = "blocked"
	OutcomeRemoved  BlockOutcome = "removed"
	OutcomeConflict BlockOutcome = "conflict"
	OutcomeNotFound BlockOutcome = "not_found"
	OutcomeFailed   BlockOutcome = "failed"
)

// SlotOutcome is the per-item result of a bulk block or unblock. Detail
// names the conflicting claim kind or the failure cause.
type SlotOutcome struct {
	Window  schedule.Window
	Outcome BlockOutcome
	Detail  string
}

type BulkBlockInput struct {
	CourtID uuid.UUID
	Windows []schedule.Window
	Reason  string
	Actor   principal.Principal
}

type BulkUnblockInput struct {
	CourtID uuid.UUID
	Windows []schedule.Window
	Actor   principal.Principal
}

type BulkResult struct {
	Outcomes []SlotOutcome
	Failed   int
}

type BlockingCommands interface {
	Block(ctx context.Context, input BulkBlockInput) (*BulkResult, error)
	Unblock(ctx context.Context, input BulkUnblockInput) (*BulkResult, error)
}

type blockingCommandsImpl struct {
	uow    UnitOfWork
	courts CourtReader
}

func NewBlockingCommands(uow UnitOfWork, courts CourtReader) BlockingCommands {
	return &blockingCommandsImpl{uow: uow, courts: courts}
}

// Block processes each slot independently: a conflict on one slot never
// aborts the rest. Re-blocking an already blocked slot updates its
// reason.
func (b *blockingCommandsImpl) Block(ctx context.Context, input BulkBlockInput) (*BulkResult, error) {
	if len(input.Windows) == 0 {
		return nil, errs.Mark(errs.New("at least one slot is required"), ErrValidation)
	}
	if err := b.authorizeCourt(ctx, input.CourtID, input.Actor); err != nil {
		return nil, err
	}

	result := &BulkResult{Outcomes: make([]SlotOutcome, 0, len(input.Windows))}
	for _, w := range input.Windows {
		result.Outcomes = append(result.Outcomes, b.blockOne(ctx, input, w))
	}
	for _, o := range result.Outcomes {
		if o.Outcome != OutcomeBlocked {
			result.Failed++
		}
	}
	return result, nil
}

func (b *blockingCommandsImpl) blockOne(ctx context.Context, input BulkBlockInput, w schedule.Window) SlotOutcome {
	slot, err := blocking.NewBlockedSlot(input.CourtID, w, input.Reason, input.Actor.ID)
	if err != nil {
		return SlotOutcome{Window: w, Outcome: OutcomeFailed, Detail: err.Error()}
	}

	var hit *schedule.Claim
	err = b.uow.WithinSerializable(ctx, func(ctx context.Context, tx Tx) error {
		claims, err := tx.Claims().ActiveClaims(ctx, input.CourtID, w.Date())
		if err != nil {
			return err
		}
		// Existing blocks never conflict; the upsert refreshes them.
		hard := schedule.Filter(claims, schedule.ClaimReservation, schedule.ClaimMaintenance)
		if hits := schedule.Conflicts(w, hard); len(hits) > 0 {
			hit = &hits[0]
			return newConflictError(hits)
		}
		return tx.Blocks().Upsert(ctx, slot)
	})
	switch {
	case err == nil:
		return SlotOutcome{Window: w, Outcome: OutcomeBlocked}
	case hit != nil:
		return SlotOutcome{Window: w, Outcome: OutcomeConflict, Detail: string(hit.Kind)}
	default:
		return SlotOutcome{Window: w, Outcome: OutcomeFailed, Detail: "store failure"}
	}
}

// Unblock removes blocks slot by slot. Missing blocks are reported, not
// treated as errors.
func (b *blockingCommandsImpl) Unblock(ctx context.Context, input BulkUnblockInput) (*BulkResult, error) {
	if len(input.Windows) == 0 {
		return nil, errs.Mark(errs.New("at least one slot is required"), ErrValidation)
	}
	if err := b.authorizeCourt(ctx, input.CourtID, input.Actor); err != nil {
		return nil, err
	}

	result := &BulkResult{Outcomes: make([]SlotOutcome, 0, len(input.Windows))}
	for _, w := range input.Windows {
		outcome := SlotOutcome{Window: w, Outcome: OutcomeRemoved}
		err := b.uow.Within(ctx, func(ctx context.Context, tx Tx) error {
			removed, err := tx.Blocks().Delete(ctx, input.CourtID, w)
			if err != nil {
				return err
			}
			if !removed {
				outcome.Outcome = OutcomeNotFound
			}
			return nil
		})
		if err != nil {
			outcome.Outcome = OutcomeFailed
			outcome.Detail = "store failure"
		}
		if outcome.Outcome != OutcomeRemoved {
			result.Failed++
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	return result, nil
}

func (b *blockingCommandsImpl) authorizeCourt(ctx context.Context, courtID uuid.UUID, actor principal.Principal) error {
	court, err := b.courts.FindByID(ctx, courtID)
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
