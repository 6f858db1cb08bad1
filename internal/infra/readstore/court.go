package readstore

import (
	"context"
	"encoding/json"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/infra/db"

	"github.com/google/uuid"
)

// CourtSnapshot is the read model the engine needs from the owner-side
// court catalog: pricing, operating hours and the owning principal for
// ownership checks.
type CourtSnapshot struct {
	ID                uuid.UUID
	FacilityID        uuid.UUID
	OwnerID           uuid.UUID
	Name              string
	Sport             string
	PricePerHourCents int64
	Hours             *court.WeeklyHours // nil means default policy hours
}

// HoursOn resolves the operating span for a date's weekday.
func (s *CourtSnapshot) HoursOn(date time.Time) schedule.DayHours {
	if s.Hours == nil {
		return schedule.DefaultDayHours()
	}
	return s.Hours.On(schedule.Date(date).Weekday())
}

func (s *CourtSnapshot) PriceFor(w schedule.Window) int64 {
	return s.PricePerHourCents * int64(w.Duration()) / int64(time.Hour)
}

type CourtReadStore struct {
	db db.DBTX
}

func NewCourtReadStore(dbtx db.DBTX) *CourtReadStore {
	return &CourtReadStore{db: dbtx}
}

const courtColumns = `
	c.id, c.facility_id, f.owner_id, c.name, c.sport, c.price_per_hour_cents, c.operating_hours
`

func (s *CourtReadStore) FindByID(ctx context.Context, id uuid.UUID) (*CourtSnapshot, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts c
		JOIN facilities f ON f.id = c.facility_id
		WHERE c.id = $1
	`

	snap, err := scanCourt(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	return snap, nil
}

func (s *CourtReadStore) ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*CourtSnapshot, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts c
		JOIN facilities f ON f.id = c.facility_id
		WHERE c.facility_id = $1
		ORDER BY c.name
	`

	rows, err := s.db.Query(ctx, query, facilityID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var snaps []*CourtSnapshot
	for rows.Next() {
		snap, err := scanCourt(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan court", err)
		}
		snaps = append(snaps, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate courts", err)
	}
	return snaps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourt(row rowScanner) (*CourtSnapshot, error) {
	var (
		snap      CourtSnapshot
		hoursJSON []byte
	)
	if err := row.Scan(
		&snap.ID, &snap.FacilityID, &snap.OwnerID,
		&snap.Name, &snap.Sport, &snap.PricePerHourCents, &hoursJSON,
	); err != nil {
		return nil, err
	}

	if len(hoursJSON) > 0 {
		hours, err := parseWeeklyHours(hoursJSON)
		if err != nil {
			return nil, err
		}
		snap.Hours = hours
	}
	return &snap, nil
}

// operating_hours is a jsonb array of 7 entries indexed by weekday
// (0 = Sunday): [{"open":true,"start":"06:00","end":"22:00"}, ...].
type dayHoursJSON struct {
	Open  bool   `json:"open"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func parseWeeklyHours(raw []byte) (*court.WeeklyHours, error) {
	var days [7]dayHoursJSON
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, err
	}

	var hours court.WeeklyHours
	for i, d := range days {
		if !d.Open {
			hours[i] = schedule.DayHours{}
			continue
		}
		start, err := schedule.ParseTimeOfDay(d.Start)
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseTimeOfDay(d.End)
		if err != nil {
			return nil, err
		}
		hours[i] = schedule.DayHours{Open: true, Start: start, End: end}
	}
	return &hours, nil
}
