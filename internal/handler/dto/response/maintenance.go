package response

import (
	"court-booking/internal/usecase"

	"github.com/google/uuid"
)

type MaintenanceSlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleMaintenanceResponse struct {
	ID    uuid.UUID                 `json:"id"`
	Slots []MaintenanceSlotResponse `json:"slots"`
}

func FromScheduleMaintenanceResult(r *usecase.ScheduleMaintenanceResult) *ScheduleMaintenanceResponse {
	slots := make([]MaintenanceSlotResponse, 0, len(r.Slots))
	for _, w := range r.Slots {
		slots = append(slots, MaintenanceSlotResponse{
			StartTime: w.Start().String(),
			EndTime:   w.End().String(),
		})
	}
	return &ScheduleMaintenanceResponse{ID: r.ID, Slots: slots}
}
