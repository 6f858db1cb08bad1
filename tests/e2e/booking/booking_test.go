//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"court-booking/internal/domain/principal"
	"court-booking/internal/handler/dto/request"
	"court-booking/internal/handler/dto/response"
	"court-booking/tests/common/authtest"
	"court-booking/tests/common/dbtest"
	"court-booking/tests/common/httptest"
	"court-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL          = "/api/bookings"
	courtAvailabilityURL = "/api/courts/%s/availability?date=%s"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// bookingDate picks a day far enough out that the cancellation cutoff
// never interferes.
func bookingDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *BookingSuite) seedCourt(t *testing.T) (ownerID, courtID uuid.UUID) {
	t.Helper()
	ownerID = uuid.New()
	facilityID := dbtest.CreateTestFacility(t, s.DB, ownerID, "Riverside Tennis Club")
	courtID = dbtest.CreateTestCourt(t, s.DB, facilityID, "Court 1", "tennis", 3000)
	return ownerID, courtID
}

func (s *BookingSuite) fetchAvailability(t *testing.T, courtID uuid.UUID, date string) response.CourtAvailabilityResponse {
	t.Helper()
	url := fmt.Sprintf(courtAvailabilityURL, courtID, date)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, w.Code, "availability request should succeed")

	var avail response.CourtAvailabilityResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &avail))
	return avail
}

func findSlot(t *testing.T, avail response.CourtAvailabilityResponse, startTime string) response.SlotResponse {
	t.Helper()
	for _, slot := range avail.Slots {
		if slot.StartTime == startTime {
			return slot
		}
	}
	t.Fatalf("slot %s not found in availability response", startTime)
	return response.SlotResponse{}
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: booking two slots succeeds and shows up in availability", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		customerID := uuid.New()
		token := authtest.TokenFor(t, s.Config, customerID, principal.RoleCustomer)
		date := bookingDate()

		reqBody := request.CreateBookingRequest{
			CourtID:    courtID,
			Date:       date,
			StartTimes: []string{"10:00", "11:00"},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, "booking should be created")

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.BookingRef)
		require.Len(t, created.ReservationIDs, 2)
		require.Equal(t, int64(6000), created.AmountCents, "two hours at 3000 cents/hour")

		avail := s.fetchAvailability(t, courtID, date)
		require.Len(t, avail.Slots, 17, "default hours 06:00-23:00 yield 17 slots")

		booked := findSlot(t, avail, "10:00")
		require.Equal(t, "booked", booked.Status)
		require.Equal(t, created.BookingRef, booked.BookingRef)

		free := findSlot(t, avail, "09:00")
		require.Equal(t, "available", free.Status)
		require.Empty(t, free.BookingRef)
	})

	s.Run("Normal case: touching bookings on adjacent slots both succeed", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		date := bookingDate()

		first := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"10:00"}}, first)
		require.Equal(t, http.StatusCreated, w.Code)

		second := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"11:00"}}, second)
		require.Equal(t, http.StatusCreated, w.Code, "touching endpoints must not conflict")
	})

	s.Run("Normal case: concurrent requests for one slot book it exactly once", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		date := bookingDate()

		const contenders = 8
		tokens := make([]string, contenders)
		for i := range tokens {
			tokens[i] = authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		}

		codes := make([]int, contenders)
		var wg sync.WaitGroup
		for i := 0; i < contenders; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
					request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"15:00"}}, tokens[i])
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			default:
				require.Equal(t, http.StatusConflict, code, "losing requests must see a conflict")
			}
		}
		require.Equal(t, 1, created, "exactly one request may win the slot")

		avail := s.fetchAvailability(t, courtID, date)
		require.Equal(t, "booked", findSlot(t, avail, "15:00").Status)
	})

	s.Run("Error case: overlapping booking is rejected with conflict details", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		date := bookingDate()

		first := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"10:00", "11:00"}}, first)
		require.Equal(t, http.StatusCreated, w.Code)

		second := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"11:00"}}, second)
		require.Equal(t, http.StatusConflict, w.Code)

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		conflicts, ok := body["conflicts"].([]any)
		require.True(t, ok, "conflict response should carry details")
		require.NotEmpty(t, conflicts)
		detail := conflicts[0].(map[string]any)
		require.Equal(t, "reservation", detail["kind"])
		require.Equal(t, "11:00", detail["start_time"])
	})

	s.Run("Error case: unknown court returns not found", func() {
		t := s.T()

		token := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: uuid.New(), Date: bookingDate(), StartTimes: []string{"10:00"}}, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: unauthenticated request is rejected", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: bookingDate(), StartTimes: []string{"10:00"}}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestReservationVisibility - Reservation read API tests
// =============================================================================

func (s *BookingSuite) TestReservationVisibility() {
	s.Run("Normal case: customer reads own reservation detail", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		customerID := uuid.New()
		token := authtest.TokenFor(t, s.Config, customerID, principal.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: bookingDate(), StartTimes: []string{"10:00"}}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		detailURL := bookingsURL + "/" + created.ReservationIDs[0].String()
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var view response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &view))
		require.Equal(t, created.BookingRef, view.BookingRef)
		require.Equal(t, "confirmed", view.Status)
		require.Equal(t, "completed", view.PaymentStatus)
		require.Equal(t, "Court 1", view.CourtName)
	})

	s.Run("Error case: another customer's reservation reads as not found", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		owner := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: bookingDate(), StartTimes: []string{"10:00"}}, owner)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		stranger := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		detailURL := bookingsURL + "/" + created.ReservationIDs[0].String()
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, stranger)
		require.Equal(t, http.StatusNotFound, w.Code, "foreign reservations must not leak")
	})

	s.Run("Normal case: listing returns only the caller's reservations", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		date := bookingDate()

		mine := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"10:00"}}, mine)
		require.Equal(t, http.StatusCreated, w.Code)

		other := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"12:00"}}, other)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, mine)
		require.Equal(t, http.StatusOK, w.Code)

		var views []response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &views))
		require.Len(t, views, 1)
		require.Equal(t, "10:00", views[0].StartTime)
	})
}

// =============================================================================
// TestCancelBooking - Cancellation API tests
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: cancellation frees the slot for rebooking", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		date := bookingDate()
		token := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"10:00"}}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cancelURL := bookingsURL + "/" + created.ReservationIDs[0].String() + "/cancel"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		avail := s.fetchAvailability(t, courtID, date)
		require.Equal(t, "available", findSlot(t, avail, "10:00").Status, "cancelled reservation frees its window")

		rebooker := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"10:00"}}, rebooker)
		require.Equal(t, http.StatusCreated, w.Code, "freed slot must be bookable again")
	})

	s.Run("Error case: another customer cannot cancel the reservation", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		token := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: bookingDate(), StartTimes: []string{"10:00"}}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		stranger := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		cancelURL := bookingsURL + "/" + created.ReservationIDs[0].String() + "/cancel"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, stranger)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: cancelled reservation cannot be cancelled again", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		token := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: bookingDate(), StartTimes: []string{"10:00"}}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.CreateBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cancelURL := bookingsURL + "/" + created.ReservationIDs[0].String() + "/cancel"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: cancellation inside the cutoff window is rejected", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		customerID := uuid.New()
		token := authtest.TokenFor(t, s.Config, customerID, principal.RoleCustomer)

		// Starts in 30 minutes, well inside the 2h cutoff.
		start := time.Now().UTC().Add(30 * time.Minute)
		reservationID := dbtest.CreateTestReservation(t, s.DB, courtID, &customerID,
			start, start.Add(time.Hour), "confirmed")

		cancelURL := bookingsURL + "/" + reservationID.String() + "/cancel"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, "Cancellation window has passed", body["error"])
	})
}
