package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"gadgetlend-backend/internal/logger"
	"gadgetlend-backend/internal/security"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	adminKey     contextKey = "admin_claims"
)

// AdminFromContext returns the authenticated admin's claims, if any.
func AdminFromContext(ctx context.Context) (*security.AdminClaims, bool) {
	claims, ok := ctx.Value(adminKey).(*security.AdminClaims)
	return claims, ok
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", r.Context().Value(requestIDKey),
			"duration", time.Since(start))
	})
}

// authMiddleware validates the bearer token on every privileged route and
// puts the admin claims on the request context.
func authMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing bearer token")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				code := "INVALID_TOKEN"
				if err == security.ErrExpiredToken {
					code = "TOKEN_EXPIRED"
				}
				writeError(w, http.StatusUnauthorized, code, "Failed to validate token")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
