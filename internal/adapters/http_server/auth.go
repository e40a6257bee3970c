package httpserver

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"tour_ops/internal/adapters/observability"
	"tour_ops/internal/auth"
)

type ctxKey int

const (
	identityKey ctxKey = iota
	payloadKey
)

const tokenHeader = "x-auth-token"

func identityFrom(r *http.Request) (auth.Identity, bool) {
	id, ok := r.Context().Value(identityKey).(auth.Identity)
	return id, ok
}

func withIdentity(r *http.Request, id auth.Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, id))
}

// OptionalAuth attaches the identity when a valid token is present and lets
// the request through anonymous otherwise.
func OptionalAuth(v *auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get(tokenHeader); raw != "" {
				if id, err := v.Verify(raw); err == nil {
					observability.ObserveAuth("token_ok")
					r = withIdentity(r, id)
				} else {
					observability.ObserveAuth("token_invalid")
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth rejects requests without a valid token: missing is 401,
// unverifiable is 400.
func RequireAuth(v *auth.Verifier) func(http.Handler) http.Handler {
	return requireIdentity(v, false)
}

// RequireAdmin additionally rejects authenticated non-admins with 401.
func RequireAdmin(v *auth.Verifier) func(http.Handler) http.Handler {
	return requireIdentity(v, true)
}

func requireIdentity(v *auth.Verifier, admin bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(tokenHeader)
			if raw == "" {
				observability.ObserveAuth("token_missing")
				writeText(w, http.StatusUnauthorized, "User is not allowed")
				return
			}
			id, err := v.Verify(raw)
			if err != nil {
				observability.ObserveAuth("token_invalid")
				writeText(w, http.StatusBadRequest, "Broken token")
				return
			}
			if admin && !id.IsAdmin {
				writeText(w, http.StatusUnauthorized, "Only admin is allowed")
				return
			}
			observability.ObserveAuth("token_ok")
			next.ServeHTTP(w, withIdentity(r, id))
		})
	}
}

// RateLimit guards a route with a shared token bucket.
func RateLimit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				writeText(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
