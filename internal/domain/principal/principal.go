// Package principal identifies the actor behind a request. The engine
// does not own accounts or credentials; it only needs an id and a role
// to run ownership checks.
package principal

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

type Principal struct {
	ID   uuid.UUID
	Role Role
}

// IsStaff reports whether the principal may perform owner-side
// operations (blocking, maintenance, owner cancellations).
func (p Principal) IsStaff() bool {
	return p.Role == RoleOwner || p.Role == RoleAdmin
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
