/*-------------------------------------------------------------------------
 *
 * Linear MCP Server
 *
 * Copyright (c) 2026, Linear MCP Server contributors
 * This software is released under The MIT License
 *
 *-------------------------------------------------------------------------
 */

package auth

import (
	"context"
	"net/http"
	"strings"

	"linear-mcp/internal/logging"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// IdentityContextKey is the context key for the authenticated
	// identity: the token hash for bearer auth, the username for
	// Basic auth.
	IdentityContextKey contextKey = "auth_identity"

	// HealthCheckPath is the path for the health check endpoint (bypasses authentication)
	HealthCheckPath = "/health"
)

// GetIdentityFromContext retrieves the authenticated identity from the
// request context. Returns empty string for unauthenticated requests.
func GetIdentityFromContext(ctx context.Context) string {
	if identity, ok := ctx.Value(IdentityContextKey).(string); ok {
		return identity
	}
	return ""
}

// AuthMiddleware creates an HTTP middleware that validates credentials.
// Bearer tokens are checked against the token store; Basic credentials,
// when a user store is configured, against the user store.
func AuthMiddleware(tokenStore *TokenStore, userStore *UserStore, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip authentication if disabled
			if !enabled {
				next.ServeHTTP(w, r)
				return
			}

			// Skip authentication for health check endpoint
			if r.URL.Path == HealthCheckPath {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Missing Authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 {
				http.Error(w, "Invalid Authorization header format. Expected: Bearer <token>", http.StatusUnauthorized)
				return
			}

			switch parts[0] {
			case "Bearer":
				token := parts[1]

				valid, err := tokenStore.ValidateToken(token)
				if err != nil {
					// Log detail server-side, return a generic error to the client
					logging.Warn("token validation failed", "error", err.Error())
					http.Error(w, "Invalid token", http.StatusUnauthorized)
					return
				}
				if !valid {
					http.Error(w, "Invalid or unknown token", http.StatusUnauthorized)
					return
				}

				// The token hash identifies the caller without exposing the token
				ctx := context.WithValue(r.Context(), IdentityContextKey, HashToken(token))
				next.ServeHTTP(w, r.WithContext(ctx))

			case "Basic":
				if userStore == nil {
					http.Error(w, "Basic authentication is not enabled", http.StatusUnauthorized)
					return
				}

				username, password, ok := r.BasicAuth()
				if !ok {
					http.Error(w, "Invalid Basic credentials", http.StatusUnauthorized)
					return
				}

				if err := userStore.Authenticate(username, password); err != nil {
					logging.Warn("user authentication failed", "username", username)
					http.Error(w, "Invalid username or password", http.StatusUnauthorized)
					return
				}

				ctx := context.WithValue(r.Context(), IdentityContextKey, username)
				next.ServeHTTP(w, r.WithContext(ctx))

			default:
				http.Error(w, "Invalid Authorization header format. Expected: Bearer <token>", http.StatusUnauthorized)
			}
		})
	}
}
