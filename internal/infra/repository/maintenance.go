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

type MaintenanceRepository struct {
	db db.DBTX
}

func NewMaintenanceRepository(dbtx db.DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{db: dbtx}
}

func (r *MaintenanceRepository) Insert(ctx context.Context, m *blocking.MaintenanceSchedule) error {
	query := `
		INSERT INTO maintenance_schedules
			(id, court_id, maintenance_date, start_at, end_at, reason, description, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	w := m.Window()
	_, err := r.db.Exec(ctx, query,
		m.ID(), m.CourtID(), w.Date(), w.StartAt(), w.EndAt(),
		m.Reason().String(), m.Description(), string(m.Status()), m.CreatedBy(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert maintenance schedule", err)
	}
	return nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*blocking.MaintenanceSchedule, error) {
	query := `
		SELECT id, court_id, start_at, end_at, reason, description, status, created_by, created_at
		FROM maintenance_schedules
		WHERE id = $1
	`

	var (
		mID, courtID   uuid.UUID
		startAt, endAt time.Time
		reason         string
		description    string
		status         string
		createdBy      uuid.UUID
		createdAt      time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mID, &courtID, &startAt, &endAt, &reason, &description, &status, &createdBy, &createdAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find maintenance schedule", err)
	}

	return blocking.ReconstructMaintenanceSchedule(
		mID, courtID,
		schedule.WindowFromInstants(startAt, endAt),
		blocking.MaintenanceReason(reason),
		description,
		blocking.MaintenanceStatus(status),
		createdBy,
		createdAt,
	), nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM maintenance_schedules WHERE id = $1`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete maintenance schedule", err)
	}
	return tag.RowsAffected() > 0, nil
}
