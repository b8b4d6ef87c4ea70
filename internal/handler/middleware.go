package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/emshaw/inkwell/internal/domain"
	"github.com/emshaw/inkwell/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

// sessionCookie is the name of the cookie carrying the signed session token.
const sessionCookie = "session"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is authenticated.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// WithUser is middleware that resolves the session cookie to a user and
// injects it into the request context. The lookup hits the database on every
// request; a token whose user has since vanished is treated as anonymous.
// Unauthenticated requests proceed without a user.
func WithUser(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		user, err := auth.CurrentUser(r.Context(), cookie.Value)
		if err != nil {
			slog.Error("resolve session", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if user != nil {
			r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin is the authorization gate for post management. It must run
// after WithUser. Anyone but the designated administrator gets a 403 before
// the protected handler executes.
func RequireAdmin(guard *service.Guard, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := guard.RequireAdmin(UserFromContext(r.Context())); err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
