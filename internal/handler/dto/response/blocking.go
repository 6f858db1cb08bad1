package response

import (
	"court-booking/internal/usecase"
)

type SlotOutcomeResponse struct {
	StartTime string `json:"start_time"`
	Outcome   string `json:"outcome"`
	Detail    string `json:"detail,omitempty"`
}

type BulkResultResponse struct {
	Outcomes []SlotOutcomeResponse `json:"outcomes"`
	Failed   int                   `json:"failed"`
}

func FromBulkResult(r *usecase.BulkResult) *BulkResultResponse {
	outcomes := make([]SlotOutcomeResponse, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		outcomes = append(outcomes, SlotOutcomeResponse{
			StartTime: o.Window.Start().String(),
			Outcome:   string(o.Outcome),
			Detail:    o.Detail,
		})
	}
	return &BulkResultResponse{Outcomes: outcomes, Failed: r.Failed}
}
