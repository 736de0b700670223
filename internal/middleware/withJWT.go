package middleware

import (
	"context"
	"net/http"

	"github.com/akraev/reposhare/internal/app/service"
)

// ContextKey is a custom type used for keys in the context to prevent
// collisions.
type ContextKey string

// UserIDKey holds the session owner's GitHub login.
const UserIDKey ContextKey = "userID"

// ClaimsKey holds the full session claims (display name, GitHub token).
const ClaimsKey ContextKey = "claims"

// InjectUserID adds the user ID to the request context, making it
// accessible for downstream handlers. Exposed for tests.
func InjectUserID(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, userID)
	return req.WithContext(ctx)
}

// InjectClaims adds full session claims to the request context.
func InjectClaims(req *http.Request, claims *service.Claims) *http.Request {
	ctx := context.WithValue(req.Context(), UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, ClaimsKey, claims)
	return req.WithContext(ctx)
}

// WithJWT guards protected routes. Sessions are only minted by the
// OAuth exchange handler, so a missing or invalid cookie is 401 here —
// never a silently generated identity.
func WithJWT(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseClaims(cookie)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, InjectClaims(r, claims))
		})
	}
}
