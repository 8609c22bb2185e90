package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyRole lets the request through when the principal carries at least
// one of the roles. Must run after AuthnMiddleware.
func RequireAnyRole(roles ...string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing bearer token")
				return
			}

			for _, role := range roles {
				if p.HasRole(role) {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate",
				`Bearer error="insufficient_role", error_description="requires one of: `+strings.Join(roles, ", ")+`"`)
			WriteJSON(w, http.StatusForbidden, ErrorBody{
				Error:            "insufficient_role",
				ErrorDescription: "the access token does not carry a permitted role",
			})
		})
	}
}
