package middleware

import (
	"context"
	"net/http"

	"github.com/studysphere/server/internal/domain"
)

// RoleReader resolves the caller's current role from the credential store.
// Absent users resolve to student, so absence never grants access.
type RoleReader interface {
	RoleFor(ctx context.Context, email string) (string, error)
}

// RequireRole enforces an exact role match for the authenticated caller.
// Assumes Auth() has already injected claims into context. The store is
// re-queried on every request; role changes take effect on the caller's
// next request without any token reissue.
func RequireRole(required string, roles RoleReader, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := EmailFromContext(r.Context())
			if !ok {
				// Middleware ordering issue (Auth not applied) or a token
				// without an email claim.
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			role, err := roles.RoleFor(r.Context(), email)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if role != required {
				writeErr(w, r, domain.ErrForbidden())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
