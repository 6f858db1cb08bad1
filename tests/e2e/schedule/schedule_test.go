//go:build e2e

package schedule_test

import (
	"fmt"
	"net/http"
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
	blocksURL            = "/api/blocks"
	unblockURL           = "/api/blocks/unblock"
	maintenanceURL       = "/api/maintenance"
	courtAvailabilityURL = "/api/courts/%s/availability?date=%s"
)

type ScheduleSuite struct {
	e2e.SharedSuite
}

func (s *ScheduleSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestScheduleSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ScheduleSuite))
}

func scheduleDate() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *ScheduleSuite) seedCourt(t *testing.T) (ownerID, courtID uuid.UUID) {
	t.Helper()
	ownerID = uuid.New()
	facilityID := dbtest.CreateTestFacility(t, s.DB, ownerID, "Harbour Sports Centre")
	courtID = dbtest.CreateTestCourt(t, s.DB, facilityID, "Court A", "padel", 2500)
	return ownerID, courtID
}

func (s *ScheduleSuite) bookSlot(t *testing.T, courtID uuid.UUID, date, startTime string) response.CreateBookingResponse {
	t.Helper()
	token := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{startTime}}, token)
	require.Equal(t, http.StatusCreated, w.Code, "seed booking should succeed")

	var created response.CreateBookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *ScheduleSuite) fetchAvailability(t *testing.T, courtID uuid.UUID, date string) response.CourtAvailabilityResponse {
	t.Helper()
	url := fmt.Sprintf(courtAvailabilityURL, courtID, date)
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

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

func outcomeFor(t *testing.T, result response.BulkResultResponse, startTime string) response.SlotOutcomeResponse {
	t.Helper()
	for _, o := range result.Outcomes {
		if o.StartTime == startTime {
			return o
		}
	}
	t.Fatalf("no outcome for slot %s", startTime)
	return response.SlotOutcomeResponse{}
}

// =============================================================================
// TestBlockSlots - Owner blocking API tests
// =============================================================================

func (s *ScheduleSuite) TestBlockSlots() {
	s.Run("Normal case: owner blocks free slots and availability reflects them", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		date := scheduleDate()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL,
			request.BlockSlotsRequest{CourtID: courtID, Date: date, StartTimes: []string{"09:00", "10:00"}, Reason: "private event"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var result response.BulkResultResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.Equal(t, 0, result.Failed)
		require.Equal(t, "blocked", outcomeFor(t, result, "09:00").Outcome)
		require.Equal(t, "blocked", outcomeFor(t, result, "10:00").Outcome)

		avail := s.fetchAvailability(t, courtID, date)
		blocked := findSlot(t, avail, "09:00")
		require.Equal(t, "blocked", blocked.Status)
		require.Equal(t, "private event", blocked.Reason)
		require.Equal(t, "available", findSlot(t, avail, "11:00").Status)
	})

	s.Run("Normal case: reserved slot reports a conflict outcome, the rest block", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		date := scheduleDate()
		s.bookSlot(t, courtID, date, "10:00")

		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL,
			request.BlockSlotsRequest{CourtID: courtID, Date: date, StartTimes: []string{"09:00", "10:00"}, Reason: "resurfacing prep"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var result response.BulkResultResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.Equal(t, 1, result.Failed)
		require.Equal(t, "blocked", outcomeFor(t, result, "09:00").Outcome)

		conflicted := outcomeFor(t, result, "10:00")
		require.Equal(t, "conflict", conflicted.Outcome)
		require.Contains(t, conflicted.Detail, "reservation")

		avail := s.fetchAvailability(t, courtID, date)
		require.Equal(t, "booked", findSlot(t, avail, "10:00").Status, "the reservation wins the slot")
	})

	s.Run("Normal case: blocked slot rejects customer bookings", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		date := scheduleDate()

		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL,
			request.BlockSlotsRequest{CourtID: courtID, Date: date, StartTimes: []string{"10:00"}, Reason: "league training"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		customer := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{CourtID: courtID, Date: date, StartTimes: []string{"10:00"}}, customer)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: owner of another facility is denied", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		foreign := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleOwner)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL,
			request.BlockSlotsRequest{CourtID: courtID, Date: scheduleDate(), StartTimes: []string{"09:00"}, Reason: "event"}, foreign)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("Error case: customer role cannot reach the endpoint", func() {
		t := s.T()

		_, courtID := s.seedCourt(t)
		customer := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL,
			request.BlockSlotsRequest{CourtID: courtID, Date: scheduleDate(), StartTimes: []string{"09:00"}, Reason: "event"}, customer)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestUnblockSlots - Owner unblocking API tests
// =============================================================================

func (s *ScheduleSuite) TestUnblockSlots() {
	s.Run("Normal case: unblock removes the block and reports missing slots", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		date := scheduleDate()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, blocksURL,
			request.BlockSlotsRequest{CourtID: courtID, Date: date, StartTimes: []string{"09:00"}, Reason: "private event"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, unblockURL,
			request.UnblockSlotsRequest{CourtID: courtID, Date: date, StartTimes: []string{"09:00", "10:00"}}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var result response.BulkResultResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &result))
		require.Equal(t, "removed", outcomeFor(t, result, "09:00").Outcome)
		require.Equal(t, "not_found", outcomeFor(t, result, "10:00").Outcome)

		avail := s.fetchAvailability(t, courtID, date)
		require.Equal(t, "available", findSlot(t, avail, "09:00").Status)
	})
}

// =============================================================================
// TestMaintenance - Maintenance scheduling API tests
// =============================================================================

func (s *ScheduleSuite) TestMaintenance() {
	s.Run("Normal case: maintenance window claims its hourly slots", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		date := scheduleDate()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, maintenanceURL,
			request.ScheduleMaintenanceRequest{
				CourtID: courtID, Date: date,
				StartTime: "09:00", EndTime: "12:00",
				Reason: "resurfacing", Description: "clay top-up",
			}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ScheduleMaintenanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Len(t, created.Slots, 3)

		avail := s.fetchAvailability(t, courtID, date)
		slot := findSlot(t, avail, "10:00")
		require.Equal(t, "maintenance", slot.Status)
		require.Equal(t, "resurfacing", slot.Reason)
		require.Equal(t, "available", findSlot(t, avail, "12:00").Status, "window end is exclusive")
	})

	s.Run("Error case: overlapping reservation rejects the whole window", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		date := scheduleDate()
		s.bookSlot(t, courtID, date, "10:00")

		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, maintenanceURL,
			request.ScheduleMaintenanceRequest{
				CourtID: courtID, Date: date,
				StartTime: "09:00", EndTime: "12:00",
				Reason: "cleaning",
			}, token)
		require.Equal(t, http.StatusConflict, w.Code)

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		conflicts, ok := body["conflicts"].([]any)
		require.True(t, ok)
		require.NotEmpty(t, conflicts)
		require.Equal(t, "reservation", conflicts[0].(map[string]any)["kind"])

		avail := s.fetchAvailability(t, courtID, date)
		require.Equal(t, "available", findSlot(t, avail, "09:00").Status, "no partial maintenance insert")
	})

	s.Run("Normal case: owner cancels a schedule and the slots free up", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		date := scheduleDate()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, maintenanceURL,
			request.ScheduleMaintenanceRequest{
				CourtID: courtID, Date: date,
				StartTime: "14:00", EndTime: "16:00",
				Reason: "repair", Description: "net replacement",
			}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ScheduleMaintenanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, maintenanceURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		avail := s.fetchAvailability(t, courtID, date)
		require.Equal(t, "available", findSlot(t, avail, "14:00").Status)
	})

	s.Run("Error case: foreign owner cannot cancel the schedule", func() {
		t := s.T()

		ownerID, courtID := s.seedCourt(t)
		token := authtest.TokenFor(t, s.Config, ownerID, principal.RoleOwner)
		date := scheduleDate()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, maintenanceURL,
			request.ScheduleMaintenanceRequest{
				CourtID: courtID, Date: date,
				StartTime: "14:00", EndTime: "15:00",
				Reason: "inspection",
			}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ScheduleMaintenanceResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		foreign := authtest.TokenFor(t, s.Config, uuid.New(), principal.RoleOwner)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, maintenanceURL+"/"+created.ID.String(), nil, foreign)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
