package httpapi

import (
	"net/http"
	"strings"

	"github.com/FBenja/fleet-api/internal/app/auth"
)

// NewAuthMiddleware enforces Authorization: Bearer <token> for protected routes.
//
// The guard is an ordered pipeline: extract the token, verify it, resolve the
// user. Every failure mode, including a token whose user no longer exists,
// produces the same 401 so callers cannot distinguish them. On success the
// resolved identity is stored in the request context.
func NewAuthMiddleware(authSvc *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeMsg(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				writeMsg(w, http.StatusUnauthorized, "malformed Authorization header")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if raw == "" {
				writeMsg(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			u, err := authSvc.Authenticate(r.Context(), raw)
			if err != nil {
				writeMsg(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			id := Identity{ID: u.ID, Name: u.Name, Email: u.Email}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
