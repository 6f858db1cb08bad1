package schedule

type SlotState string

const (
	SlotAvailable   SlotState = "available"
	SlotBooked      SlotState = "booked"
	SlotBlocked     SlotState = "blocked"
	SlotMaintenance SlotState = "maintenance"
)

// Slot is one grid window resolved against the existing claims.
// BookingRef is set for booked slots, Reason for blocked/maintenance.
type Slot struct {
	Window     Window
	State      SlotState
	BookingRef string
	Reason     string
}

// claim kinds in resolution priority order. A confirmed commitment
// outranks precautionary owner holds.
var resolutionOrder = []ClaimKind{ClaimReservation, ClaimMaintenance, ClaimBlocked}

// Resolve maps every grid slot to its status. Pure function of its
// inputs; safe to recompute on every request.
func Resolve(grid []Window, claims []Claim) []Slot {
	slots := make([]Slot, 0, len(grid))
	for _, w := range grid {
		slots = append(slots, resolveSlot(w, claims))
	}
	return slots
}

func resolveSlot(w Window, claims []Claim) Slot {
	hits := Conflicts(w, claims)
	for _, kind := range resolutionOrder {
		for _, c := range hits {
			if c.Kind != kind {
				continue
			}
			slot := Slot{Window: w}
			switch kind {
			case ClaimReservation:
				slot.State = SlotBooked
				slot.BookingRef = c.Label
			case ClaimMaintenance:
				slot.State = SlotMaintenance
				slot.Reason = c.Label
			case ClaimBlocked:
				slot.State = SlotBlocked
				slot.Reason = c.Label
			}
			return slot
		}
	}
	return Slot{Window: w, State: SlotAvailable}
}
