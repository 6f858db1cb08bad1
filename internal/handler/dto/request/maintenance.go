package request

import (
	"strings"

	"court-booking/internal/domain/blocking"
	"court-booking/internal/domain/principal"
	"court-booking/internal/domain/schedule"
	"court-booking/internal/usecase"

	"github.com/google/uuid"
)

type ScheduleMaintenanceRequest struct {
	CourtID     uuid.UUID `json:"court_id" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	StartTime   string    `json:"start_time" binding:"required"`
	EndTime     string    `json:"end_time" binding:"required"`
	Reason      string    `json:"reason" binding:"required"`
	Description string    `json:"description,omitempty"`
}

func (r ScheduleMaintenanceRequest) ToInput(actor principal.Principal) (usecase.ScheduleMaintenanceInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.ScheduleMaintenanceInput{}, err
	}
	start, err := schedule.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return usecase.ScheduleMaintenanceInput{}, ErrInvalidTime
	}
	end, err := schedule.ParseTimeOfDay(r.EndTime)
	if err != nil {
		return usecase.ScheduleMaintenanceInput{}, ErrInvalidTime
	}
	window, err := schedule.NewWindow(date, start, end)
	if err != nil {
		return usecase.ScheduleMaintenanceInput{}, err
	}

	return usecase.ScheduleMaintenanceInput{
		CourtID:     r.CourtID,
		Window:      window,
		Reason:      blocking.MaintenanceReason(strings.ToLower(r.Reason)),
		Description: strings.TrimSpace(r.Description),
		Actor:       actor,
	}, nil
}
