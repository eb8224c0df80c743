package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users map[string]user.User // keyed by id
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	s.users[u.ID] = u
	return u, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func newStubRepo(users ...user.User) *stubUserRepo {
	repo := &stubUserRepo{users: make(map[string]user.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := newStubRepo(user.User{
		ID:           "user-1",
		Email:        "asha@tipl.local",
		PasswordHash: string(hash),
		Role:         user.RoleEmployee,
	})
	svc := NewAuthService(nil, repo, jwt.NewJWTService("test-secret", "1h", "24h"))

	_, _, _, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "asha@tipl.local",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// Unknown email reports the same error as a bad password.
	_, _, _, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@tipl.local",
		Password: "right-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshExpiredToken(t *testing.T) {
	// Refresh tokens from this service are already expired when issued.
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "-1h")
	token, _, err := jwtSvc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc := NewAuthService(nil, newStubRepo(), jwtSvc)

	_, _, _, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestRefreshMalformedToken(t *testing.T) {
	svc := NewAuthService(nil, newStubRepo(), jwt.NewJWTService("test-secret", "1h", "24h"))

	_, _, _, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRevokedToken(t *testing.T) {
	jwtSvc := jwt.NewJWTService("test-secret", "1h", "24h")
	token, _, err := jwtSvc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	jwtSvc.RevokeToken(token)

	svc := NewAuthService(nil, newStubRepo(), jwtSvc)

	_, _, _, err = svc.Refresh(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
