package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/pkg/jwt"
)

func newProtectedRouter(t *testing.T, jwtService jwt.Service, tier func(http.Handler) http.Handler) *chi.Mux {
	t.Helper()
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(AuthRequired(jwtService.JWTAuth()))
		r.Use(tier)
		r.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func doRequest(router *chi.Mux, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func tokenFor(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("user-1", "Test User", role, nil)
	require.NoError(t, err)
	return token
}

func TestRequireAdmin(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireAdmin)

	t.Run("anonymous rejected", func(t *testing.T) {
		rec := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("employee rejected", func(t *testing.T) {
		rec := doRequest(router, tokenFor(t, jwtService, user.RoleEmployee))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager rejected", func(t *testing.T) {
		rec := doRequest(router, tokenFor(t, jwtService, user.RoleManager))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		rec := doRequest(router, tokenFor(t, jwtService, user.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireManager(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireManager)

	t.Run("anonymous rejected", func(t *testing.T) {
		rec := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("employee rejected", func(t *testing.T) {
		rec := doRequest(router, tokenFor(t, jwtService, user.RoleEmployee))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("manager allowed", func(t *testing.T) {
		rec := doRequest(router, tokenFor(t, jwtService, user.RoleManager))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin allowed", func(t *testing.T) {
		rec := doRequest(router, tokenFor(t, jwtService, user.RoleAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthRequiredRejectsRefreshToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	router := newProtectedRouter(t, jwtService, RequireManager)

	refresh, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	rec := doRequest(router, refresh)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "refresh tokens must not work as access tokens")
}
