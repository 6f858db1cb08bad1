package schedule

import "github.com/google/uuid"

// ClaimKind distinguishes who holds a window. The overlap rule is the
// same for every kind; only resolution priority differs.
type ClaimKind string

const (
	ClaimReservation ClaimKind = "reservation"
	ClaimBlocked     ClaimKind = "blocked"
	ClaimMaintenance ClaimKind = "maintenance"
)

// Claim is an existing hold on a window, scoped to one court and date.
// Label carries the booking reference for reservations and the reason
// for blocks and maintenance.
type Claim struct {
	Kind   ClaimKind
	ID     uuid.UUID
	Window Window
	Label  string
}

// Conflicts returns the claims overlapping the candidate window. An
// empty result means the window is free. Booking creation, bulk
// blocking and maintenance scheduling all route through this one
// predicate.
func Conflicts(candidate Window, existing []Claim) []Claim {
	var hits []Claim
	for _, c := range existing {
		if candidate.Overlaps(c.Window) {
			hits = append(hits, c)
		}
	}
	return hits
}

// ConflictsAny checks a set of candidate windows (a multi-slot booking
// request) and returns each conflicting claim once.
func ConflictsAny(candidates []Window, existing []Claim) []Claim {
	seen := make(map[uuid.UUID]struct{})
	var hits []Claim
	for _, w := range candidates {
		for _, c := range Conflicts(w, existing) {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			hits = append(hits, c)
		}
	}
	return hits
}

// Filter returns the claims of the given kinds.
func Filter(claims []Claim, kinds ...ClaimKind) []Claim {
	var out []Claim
	for _, c := range claims {
		for _, k := range kinds {
			if c.Kind == k {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
