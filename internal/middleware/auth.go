package middleware

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
)

type contextKey string

const (
	AdminKey     contextKey = "admin"
	RequestIDKey contextKey = "request_id"
)

// AdminKeys names each configured key admin-1, admin-2, ... in order.
func AdminKeys(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for i, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out[fmt.Sprintf("admin-%d", i+1)] = k
		}
	}
	return out
}

// APIKeyAuth validates API key from Authorization or X-API-Key header
func APIKeyAuth(validKeys map[string]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				auth = r.Header.Get("X-API-Key")
			}
			if auth == "" {
				writeError(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}

			// Support both "Bearer <key>" and "<key>" formats
			apiKey := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if apiKey == "" {
				writeError(w, http.StatusUnauthorized, "invalid Authorization header format")
				return
			}

			// constant-time comparison
			var name string
			for n, key := range validKeys {
				if subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					name = n
					break
				}
			}
			if name == "" {
				writeError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			ctx := context.WithValue(r.Context(), AdminKey, name)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminFromContext returns the name of the key that authenticated the request.
func GetAdminFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(AdminKey).(string); ok {
		return name
	}
	return ""
}
