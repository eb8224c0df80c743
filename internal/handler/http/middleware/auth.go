package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/tipl/employee-monitoring/internal/domain/auth"
	"github.com/tipl/employee-monitoring/internal/handler/http/response"
)

// AuthRequired rejects requests whose token is missing, invalid, or not an
// access token. The session parse is total; a token that verifies but lacks a
// usable identity is still rejected here rather than deeper in a service.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if _, err := auth.SessionFromContext(r.Context()); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
