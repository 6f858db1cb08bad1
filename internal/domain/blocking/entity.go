// Package blocking holds the owner-side claims that remove slots from
// availability: discrete blocked slots and spanning maintenance windows.
package blocking

import (
	"errors"
	"time"

	"court-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyReason   = errors.New("reason is required")
	ErrInvalidReason = errors.New("unknown maintenance reason")
	ErrNotSlotSized  = errors.New("blocked slot must cover exactly one canonical slot")
)

// BlockedSlot removes a single discrete slot from availability. Unique
// per (court, date, start); re-blocking the same slot updates the
// reason instead of erroring.
type BlockedSlot struct {
	id        uuid.UUID
	courtID   uuid.UUID
	window    schedule.Window
	reason    string
	createdBy uuid.UUID
	createdAt time.Time
}

func NewBlockedSlot(courtID uuid.UUID, window schedule.Window, reason string, createdBy uuid.UUID) (*BlockedSlot, error) {
	if reason == "" {
		return nil, ErrEmptyReason
	}
	if window.Duration() != schedule.SlotDuration {
		return nil, ErrNotSlotSized
	}
	return &BlockedSlot{
		id:        uuid.New(),
		courtID:   courtID,
		window:    window,
		reason:    reason,
		createdBy: createdBy,
	}, nil
}

func ReconstructBlockedSlot(id, courtID uuid.UUID, window schedule.Window, reason string, createdBy uuid.UUID, createdAt time.Time) *BlockedSlot {
	return &BlockedSlot{id: id, courtID: courtID, window: window, reason: reason, createdBy: createdBy, createdAt: createdAt}
}

func (b *BlockedSlot) ID() uuid.UUID           { return b.id }
func (b *BlockedSlot) CourtID() uuid.UUID      { return b.courtID }
func (b *BlockedSlot) Window() schedule.Window { return b.window }
func (b *BlockedSlot) Reason() string          { return b.reason }
func (b *BlockedSlot) CreatedBy() uuid.UUID    { return b.createdBy }
func (b *BlockedSlot) CreatedAt() time.Time    { return b.createdAt }

type MaintenanceReason string

const (
	ReasonCleaning    MaintenanceReason = "cleaning"
	ReasonRepair      MaintenanceReason = "repair"
	ReasonInspection  MaintenanceReason = "inspection"
	ReasonResurfacing MaintenanceReason = "resurfacing"
	ReasonOther       MaintenanceReason = "other"
)

func (r MaintenanceReason) String() string {
	return string(r)
}

func (r MaintenanceReason) IsValid() bool {
	switch r {
	case ReasonCleaning, ReasonRepair, ReasonInspection, ReasonResurfacing, ReasonOther:
		return true
	default:
		return false
	}
}

// MaintenanceStatus has a single value in the current scope; removal is
// by deletion, not a status transition.
type MaintenanceStatus string

const MaintenanceScheduled MaintenanceStatus = "scheduled"

// MaintenanceSchedule removes a contiguous window (possibly spanning
// several slots) from availability with a categorized reason.
type MaintenanceSchedule struct {
	id          uuid.UUID
	courtID     uuid.UUID
	window      schedule.Window
	reason      MaintenanceReason
	description string
	status      MaintenanceStatus
	createdBy   uuid.UUID
	createdAt   time.Time
}

func NewMaintenanceSchedule(courtID uuid.UUID, window schedule.Window, reason MaintenanceReason, description string, createdBy uuid.UUID) (*MaintenanceSchedule, error) {
	if !reason.IsValid() {
		return nil, ErrInvalidReason
	}
	return &MaintenanceSchedule{
		id:          uuid.New(),
		courtID:     courtID,
		window:      window,
		reason:      reason,
		description: description,
		status:      MaintenanceScheduled,
		createdBy:   createdBy,
	}, nil
}

func ReconstructMaintenanceSchedule(
	id, courtID uuid.UUID,
	window schedule.Window,
	reason MaintenanceReason,
	description string,
	status MaintenanceStatus,
	createdBy uuid.UUID,
	createdAt time.Time,
) *MaintenanceSchedule {
	return &MaintenanceSchedule{
		id:          id,
		courtID:     courtID,
		window:      window,
		reason:      reason,
		description: description,
		status:      status,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (m *MaintenanceSchedule) ID() uuid.UUID             { return m.id }
func (m *MaintenanceSchedule) CourtID() uuid.UUID        { return m.courtID }
func (m *MaintenanceSchedule) Window() schedule.Window   { return m.window }
func (m *MaintenanceSchedule) Reason() MaintenanceReason { return m.reason }
func (m *MaintenanceSchedule) Description() string       { return m.description }
func (m *MaintenanceSchedule) Status() MaintenanceStatus { return m.status }
func (m *MaintenanceSchedule) CreatedBy() uuid.UUID      { return m.createdBy }
func (m *MaintenanceSchedule) CreatedAt() time.Time      { return m.createdAt }

// DisplaySlots expands the window into discrete hourly slots for the
// owner dashboard collaborator.
func (m *MaintenanceSchedule) DisplaySlots() []schedule.Window {
	return m.window.Hours()
}
