package usecase

import "court-booking/internal/domain/principal"

// TokenValidator lets the auth middleware resolve a bearer token to a
// principal without depending on the JWT implementation.
type TokenValidator interface {
	Principal(token string) (principal.Principal, error)
}
