package response

import (
	"court-booking/internal/domain/schedule"
	"court-booking/internal/usecase"

	"github.com/google/uuid"
)

type SlotResponse struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	BookingRef string `json:"booking_ref,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

type CourtAvailabilityResponse struct {
	CourtID   uuid.UUID      `json:"court_id"`
	CourtName string         `json:"court_name"`
	Date      string         `json:"date"`
	Slots     []SlotResponse `json:"slots"`
}

type FacilityAvailabilityResponse struct {
	FacilityID uuid.UUID                    `json:"facility_id"`
	Date       string                       `json:"date"`
	Courts     []*CourtAvailabilityResponse `json:"courts"`
}

func FromCourtAvailability(a *usecase.CourtAvailability) *CourtAvailabilityResponse {
	slots := make([]SlotResponse, 0, len(a.Slots))
	for _, s := range a.Slots {
		slots = append(slots, fromSlot(s))
	}
	return &CourtAvailabilityResponse{
		CourtID:   a.CourtID,
		CourtName: a.CourtName,
		Date:      a.Date.Format("2006-01-02"),
		Slots:     slots,
	}
}

func FromFacilityAvailability(facilityID uuid.UUID, courts []*usecase.CourtAvailability) *FacilityAvailabilityResponse {
	resp := &FacilityAvailabilityResponse{
		FacilityID: facilityID,
		Courts:     make([]*CourtAvailabilityResponse, 0, len(courts)),
	}
	for _, a := range courts {
		resp.Courts = append(resp.Courts, FromCourtAvailability(a))
	}
	if len(courts) > 0 {
		resp.Date = courts[0].Date.Format("2006-01-02")
	}
	return resp
}

func fromSlot(s schedule.Slot) SlotResponse {
	return SlotResponse{
		StartTime:  s.Window.Start().String(),
		EndTime:    s.Window.End().String(),
		Status:     string(s.State),
		BookingRef: s.BookingRef,
		Reason:     s.Reason,
	}
}
