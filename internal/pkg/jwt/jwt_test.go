package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipl/employee-monitoring/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAndDecodeAccessToken(t *testing.T) {
	svc := newTestService()
	employeeID := "123e4567-e89b-12d3-a456-426614174000"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "Asha", user.RoleManager, &employeeID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	role, _ := decoded.Get("role")
	assert.Equal(t, "MANAGER", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	empID, _ := decoded.Get("employee_id")
	assert.Equal(t, employeeID, empID)
}

func TestAccessTokenWithoutEmployeeProfile(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("user-1", "Asha", user.RoleAdmin, nil)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	empID, ok := decoded.Get("employee_id")
	if ok {
		assert.Nil(t, empID)
	}
}

func TestValidateRefreshToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-7")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", userID)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("user-1", "Asha", user.RoleEmployee, nil)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err, "access token must not pass refresh validation")
}

func TestRevokedTokenRejected(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-9")
	require.NoError(t, err)

	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err, "revoked token must be rejected")
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()
	expiresAt := time.Now().Add(24 * time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("some-token", expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}
