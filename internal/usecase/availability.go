// Package usecase wires the scheduling domain to the stores: availability
// queries, booking/blocking/maintenance commands and the completion sweep.
package usecase

import (
	"context"
	"time"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// CourtAvailability is one court's resolved day view.
type CourtAvailability struct {
	CourtID   uuid.UUID
	CourtName string
	Date      time.Time
	Slots     []schedule.Slot
}

type AvailabilityQueries interface {
	ForCourt(ctx context.Context, courtID uuid.UUID, date time.Time) (*CourtAvailability, error)
	ForFacility(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]*CourtAvailability, error)
}

type availabilityQueriesImpl struct {
	courts CourtReader
	claims ClaimReader
}

func NewAvailabilityQueries(courts CourtReader, claims ClaimReader) AvailabilityQueries {
	return &availabilityQueriesImpl{courts: courts, claims: claims}
}

func (q *availabilityQueriesImpl) ForCourt(ctx context.Context, courtID uuid.UUID, date time.Time) (*CourtAvailability, error) {
	court, err := q.courts.FindByID(ctx, courtID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrNotFound)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	day := schedule.Date(date)
	claims, err := q.claims.ActiveClaims(ctx, courtID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	grid := schedule.Grid(day, court.HoursOn(day))
	return &CourtAvailability{
		CourtID:   court.ID,
		CourtName: court.Name,
		Date:      day,
		Slots:     schedule.Resolve(grid, claims),
	}, nil
}

// ForFacility resolves every court of the facility for one date. Courts
// closed that day appear with an empty slot list.
func (q *availabilityQueriesImpl) ForFacility(ctx context.Context, facilityID uuid.UUID, date time.Time) ([]*CourtAvailability, error) {
	courts, err := q.courts.ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	if len(courts) == 0 {
		return nil, errs.Mark(errs.New("facility has no courts"), ErrNotFound)
	}

	day := schedule.Date(date)
	result := make([]*CourtAvailability, 0, len(courts))
	for _, court := range courts {
		claims, err := q.claims.ActiveClaims(ctx, court.ID, day)
		if err != nil {
			return nil, errs.Mark(err, ErrStoreUnavailable)
		}
		grid := schedule.Grid(day, court.HoursOn(day))
		result = append(result, &CourtAvailability{
			CourtID:   court.ID,
			CourtName: court.Name,
			Date:      day,
			Slots:     schedule.Resolve(grid, claims),
		})
	}
	return result, nil
}
