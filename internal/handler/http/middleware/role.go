package middleware

import (
	"net/http"

	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/domain/user"
	"github.com/tipl/employee-monitoring/internal/handler/http/response"
)

// RequireManager requires MANAGER or ADMIN role.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := auth.SessionFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !session.IsManager() {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires the ADMIN role. There is no bypass; every request
// through an admin route passes this check.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := auth.SessionFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		if !session.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
