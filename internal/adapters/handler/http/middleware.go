package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/mulozi/api/internal/core/ports"
)

type contextKey string

// ProfileKey holds the domain.PublicProfile the guard decoded from the
// access token.
const ProfileKey contextKey = "userProfile"

const refreshTokenKey contextKey = "refreshToken"

// Guard gates the configured protected paths. Requests to other paths pass
// through untouched. For protected paths it requires a Bearer access token,
// validates it, requires a non-empty email claim, re-confirms the user still
// exists, and attaches the decoded profile to the request context. Every
// failure fails closed with 401 before the handler runs.
func Guard(tokens ports.TokenService, users ports.UserRepository, protectedRoutes []string) func(http.Handler) http.Handler {
	protected := make(map[string]struct{}, len(protectedRoutes))
	for _, route := range protectedRoutes {
		protected[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := protected[r.URL.Path]; !ok {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			profile, _, err := tokens.Validate(token, ports.AccessToken)
			if err != nil {
				unauthorized(w)
				return
			}

			if profile.Email == "" {
				unauthorized(w)
				return
			}

			// Tokens can outlive account deletion; a store error also
			// denies, never allows.
			user, err := users.GetByEmail(r.Context(), profile.Email)
			if err != nil || user == nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ProfileKey, *profile)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RefreshGuard authenticates the refresh endpoint: it requires a Bearer
// token that verifies against the refresh key and stashes the raw token in
// the request context for the handler to rotate.
func RefreshGuard(tokens ports.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w)
				return
			}

			if _, _, err := tokens.Validate(token, ports.RefreshToken); err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), refreshTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The header, the literal scheme word and the token segment are each
// required.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if parts[0] != "Bearer" {
		return "", false
	}
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, "Unauthorized", http.StatusUnauthorized)
}
