package readstore

import (
	"context"
	"time"

	"court-booking/internal/domain/schedule"
	"court-booking/internal/infra"
	"court-booking/internal/infra/db"

	"github.com/google/uuid"
)

// ReservationView is the read model served to customers and to the
// reporting collaborator; denormalized with the court name.
type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	CourtID       uuid.UUID  `json:"court_id"`
	CourtName     string     `json:"court_name"`
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	Date          string     `json:"date"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	AmountCents   int64      `json:"amount_cents"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	BookingRef    string     `json:"booking_ref"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewQuery = `
	SELECT r.id, r.court_id, c.name, r.customer_id, r.start_at, r.end_at,
	       r.amount_cents, r.status, r.payment_status, r.booking_ref,
	       r.created_at, r.updated_at
	FROM reservations r
	JOIN courts c ON c.id = r.court_id
`

func (s *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := scanReservationView(s.db.QueryRow(ctx, reservationViewQuery+` WHERE r.id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservation view", err)
	}
	return view, nil
}

func (s *ReservationReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationViewQuery+` WHERE r.customer_id = $1 ORDER BY r.start_at DESC`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func scanReservationView(row rowScanner) (*ReservationView, error) {
	var (
		view           ReservationView
		startAt, endAt time.Time
	)
	if err := row.Scan(
		&view.ID, &view.CourtID, &view.CourtName, &view.CustomerID, &startAt, &endAt,
		&view.AmountCents, &view.Status, &view.PaymentStatus, &view.BookingRef,
		&view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}

	w := schedule.WindowFromInstants(startAt, endAt)
	view.Date = w.Date().Format("2006-01-02")
	view.StartTime = w.Start().String()
	view.EndTime = w.End().String()
	return &view, nil
}
