package repository

import (
	"context"
	"time"

	"court-booking/internal/domain/blocking"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/infra/db"

	"github.com/google/uuid"
)

type BlockedSlotRepository struct {
	db db.DBTX
}

func NewBlockedSlotRepository(dbtx db.DBTX) *BlockedSlotRepository {
	return &BlockedSlotRepository{db: dbtx}
}

// Upsert implements the idempotent block: a second block on the same
// (court, date, start) updates the reason instead of erroring.
func (r *BlockedSlotRepository) Upsert(ctx context.Context, b *blocking.BlockedSlot) error {
	query := `
		INSERT INTO blocked_slots (id, court_id, slot_date, start_at, end_at, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (court_id, slot_date, start_at)
		DO UPDATE SET reason = EXCLUDED.reason, created_by = EXCLUDED.created_by
	`

	w := b.Window()
	_, err := r.db.Exec(ctx, query,
		b.ID(), b.CourtID(), w.Date(), w.StartAt(), w.EndAt(), b.Reason(), b.CreatedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert blocked slot", err)
	}
	return nil
}

// Delete removes a block and reports whether a row existed; unblocking
// an absent slot is a no-op, not an error.
func (r *BlockedSlotRepository) Delete(ctx context.Context, courtID uuid.UUID, w schedule.Window) (bool, error) {
	query := `
		DELETE FROM blocked_slots
		WHERE court_id = $1 AND slot_date = $2 AND start_at = $3
	`

	tag, err := r.db.Exec(ctx, query, courtID, w.Date(), w.StartAt())
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete blocked slot", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *BlockedSlotRepository) FindByCourtAndDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]*blocking.BlockedSlot, error) {
	query := `
		SELECT id, court_id, start_at, end_at, reason, created_by, created_at
		FROM blocked_slots
		WHERE court_id = $1 AND slot_date = $2
		ORDER BY start_at
	`

	rows, err := r.db.Query(ctx, query, courtID, schedule.Date(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked slots", err)
	}
	defer rows.Close()

	var blocks []*blocking.BlockedSlot
	for rows.Next() {
		var (
			id, court      uuid.UUID
			startAt, endAt time.Time
			reason         string
			createdBy      uuid.UUID
			createdAt      time.Time
		)
		if err := rows.Scan(&id, &court, &startAt, &endAt, &reason, &createdBy, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked slot", err)
		}
		blocks = append(blocks, blocking.ReconstructBlockedSlot(
			id, court, schedule.WindowFromInstants(startAt, endAt), reason, createdBy, createdAt,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked slots", err)
	}
	return blocks, nil
}
