//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestFacility(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	facilityID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO facilities (id, owner_id, name) VALUES ($1, $2, $3)",
		facilityID, ownerID, name)
	require.NoError(t, err)

	return facilityID
}

// CreateTestCourt inserts a court with NULL operating hours, so the
// default 06:00-23:00 policy applies on every weekday.
func CreateTestCourt(t *testing.T, db DBLike, facilityID uuid.UUID, name, sport string, pricePerHourCents int64) uuid.UUID {
	t.Helper()

	courtID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO courts (id, facility_id, name, sport, price_per_hour_cents) VALUES ($1, $2, $3, $4, $5)",
		courtID, facilityID, name, sport, pricePerHourCents)
	require.NoError(t, err)

	return courtID
}

// CreateTestCourtWithHours takes the operating_hours JSON verbatim: a
// seven-entry array indexed by weekday, Sunday first.
func CreateTestCourtWithHours(t *testing.T, db DBLike, facilityID uuid.UUID, name, sport string, pricePerHourCents int64, hoursJSON string) uuid.UUID {
	t.Helper()

	courtID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO courts (id, facility_id, name, sport, price_per_hour_cents, operating_hours) VALUES ($1, $2, $3, $4, $5, $6)",
		courtID, facilityID, name, sport, pricePerHourCents, hoursJSON)
	require.NoError(t, err)

	return courtID
}

// CreateTestReservation writes a reservation row directly, bypassing
// the booking pipeline. Useful for seeding elapsed or foreign state
// the API would refuse to create.
func CreateTestReservation(t *testing.T, db DBLike, courtID uuid.UUID, customerID *uuid.UUID, startAt, endAt time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	bookingRef := "BK" + startAt.UTC().Format("20060102150405") + "-" + strings.ToUpper(reservationID.String()[:4])
	amountCents := int64(endAt.Sub(startAt).Hours() * 3000)

	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, court_id, customer_id, booking_date, start_at, end_at, amount_cents, status, payment_status, booking_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'completed', $9)`,
		reservationID, courtID, customerID, startAt.UTC().Truncate(24*time.Hour),
		startAt, endAt, amountCents, status, bookingRef)
	require.NoError(t, err)

	return reservationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
