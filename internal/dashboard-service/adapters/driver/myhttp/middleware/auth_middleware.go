package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"delivery-track/internal/dashboard-service/core/ports"
)

type contextKey string

const userIDKey contextKey = "user_id"

// Auth guards a handler with bearer-token authentication. A missing token
// is a 401, a token that fails verification is a 400. On success the
// resolved user id rides the request context.
func Auth(auth ports.IAuthService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "authorization token required")
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next(w, r.WithContext(ctx))
	}
}

// UserID returns the authenticated user id stored by Auth, or "" when the
// request skipped the middleware.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"error": message, "code": status})
}
