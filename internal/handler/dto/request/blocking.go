package request

import (
	"court-booking/internal/domain/principal"
	"court-booking/internal/usecase"

	"github.com/google/uuid"
)

type BlockSlotsRequest struct {
	CourtID    uuid.UUID `json:"court_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTimes []string  `json:"start_times" binding:"required,min=1"`
	Reason     string    `json:"reason" binding:"required"`
}

func (r BlockSlotsRequest) ToInput(actor principal.Principal) (usecase.BulkBlockInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.BulkBlockInput{}, err
	}
	windows, err := slotWindows(date, r.StartTimes)
	if err != nil {
		return usecase.BulkBlockInput{}, err
	}
	return usecase.BulkBlockInput{
		CourtID: r.CourtID,
		Windows: windows,
		Reason:  r.Reason,
		Actor:   actor,
	}, nil
}

type UnblockSlotsRequest struct {
	CourtID    uuid.UUID `json:"court_id" binding:"required"`
	Date       string    `json:"date" binding:"required"`
	StartTimes []string  `json:"start_times" binding:"required,min=1"`
}

func (r UnblockSlotsRequest) ToInput(actor principal.Principal) (usecase.BulkUnblockInput, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.BulkUnblockInput{}, err
	}
	windows, err := slotWindows(date, r.StartTimes)
	if err != nil {
		return usecase.BulkUnblockInput{}, err
	}
	return usecase.BulkUnblockInput{
		CourtID: r.CourtID,
		Windows: windows,
		Actor:   actor,
	}, nil
}
