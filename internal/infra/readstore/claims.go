package readstore

import (
	"context"
	"time"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/infra/db"

	"github.com/google/uuid"
)

// ClaimReadStore assembles the competing claims for one court and date:
// active reservations, blocked slots and maintenance windows, in one
// shape the conflict detector and availability resolver consume.
type ClaimReadStore struct {
	db db.DBTX
}

func NewClaimReadStore(dbtx db.DBTX) *ClaimReadStore {
	return &ClaimReadStore{db: dbtx}
}

// ActiveClaims excludes cancelled/completed reservations; those free
// their window per the core invariant.
func (s *ClaimReadStore) ActiveClaims(ctx context.Context, courtID uuid.UUID, date time.Time) ([]schedule.Claim, error) {
	query := `
		SELECT id, start_at, end_at, 'reservation' AS kind, booking_ref AS label
		FROM reservations
		WHERE court_id = $1 AND booking_date = $2 AND status IN ('pending', 'confirmed')
		UNION ALL
		SELECT id, start_at, end_at, 'blocked', reason
		FROM blocked_slots
		WHERE court_id = $1 AND slot_date = $2
		UNION ALL
		SELECT id, start_at, end_at, 'maintenance', reason
		FROM maintenance_schedules
		WHERE court_id = $1 AND maintenance_date = $2
		ORDER BY start_at
	`

	rows, err := s.db.Query(ctx, query, courtID, schedule.Date(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load claims", err)
	}
	defer rows.Close()

	var claims []schedule.Claim
	for rows.Next() {
		var (
			id             uuid.UUID
			startAt, endAt time.Time
			kind           string
			label          string
		)
		if err := rows.Scan(&id, &startAt, &endAt, &kind, &label); err != nil {
			return nil, infra.WrapRepoErr("failed to scan claim", err)
		}
		claims = append(claims, schedule.Claim{
			Kind:   schedule.ClaimKind(kind),
			ID:     id,
			Window: schedule.WindowFromInstants(startAt, endAt),
			Label:  label,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claims", err)
	}
	return claims, nil
}
