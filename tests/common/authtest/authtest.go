//go:build unit || e2e

package authtest

import (
	"testing"

	"court-booking/internal/domain/principal"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenFor mints an access token for the given principal, signed with
// the test config's secret. The engine trusts the identity platform's
// tokens and has no login endpoint of its own.
func TokenFor(t *testing.T, cfg config.Config, userID uuid.UUID, role principal.Role) string {
	t.Helper()

	svc := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	token, err := svc.GenerateToken(userID, role)
	require.NoError(t, err, "failed to sign test token")

	return token
}
