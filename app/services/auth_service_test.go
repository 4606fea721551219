package services_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/app/services"
	"github.com/trixtech/trixtech/pkg/auth"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	db := newTestDB(t)
	return services.NewAuthService(repositories.NewUserRepository(db))
}

func TestRegisterIssuesTokenAndDefaultsRole(t *testing.T) {
	svc := newAuthService(t)

	token, user, err := svc.Register("Alice", "alice@example.com", "password123", "")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, models.RoleCustomer, user.Role)
	assert.NotZero(t, user.ID)

	ident, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, ident.ID)
	assert.Equal(t, models.RoleCustomer, ident.Role)
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := newAuthService(t)

	_, user, err := svc.Register("Alice", "alice@example.com", "password123", "")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "password123"))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register("Alice", "alice@example.com", "password123", "")
	require.NoError(t, err)

	_, _, err = svc.Register("Other Alice", "alice@example.com", "different-pass", "")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t)

	_, registered, err := svc.Register("Bob", "bob@example.com", "password123", "admin")
	require.NoError(t, err)

	token, user, err := svc.Login("bob@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, registered.ID, user.ID)
	assert.Equal(t, "admin", user.Role)

	_, _, err = svc.Login("bob@example.com", "wrong-password")
	assert.ErrorIs(t, err, services.ErrUnauthorized)

	_, _, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestUserJSONNeverContainsCredential(t *testing.T) {
	svc := newAuthService(t)

	_, user, err := svc.Register("Carol", "carol@example.com", "password123", "")
	require.NoError(t, err)

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	lowered := strings.ToLower(string(raw))
	assert.NotContains(t, lowered, "password")
	assert.NotContains(t, string(raw), user.Password)
}
