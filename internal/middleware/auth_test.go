package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminKeys(t *testing.T) {
	assert.Equal(t, map[string]string{"admin-1": "a", "admin-3": "c"}, AdminKeys([]string{"a", " ", "c"}))
	assert.Empty(t, AdminKeys(nil))
}

func TestAPIKeyAuth(t *testing.T) {
	var seen string
	h := APIKeyAuth(AdminKeys([]string{"s3cret"}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetAdminFromContext(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		value  string
		status int
	}{
		{"missing", "", "", http.StatusUnauthorized},
		{"bearer", "Authorization", "Bearer s3cret", http.StatusOK},
		{"raw", "Authorization", "s3cret", http.StatusOK},
		{"x-api-key", "X-API-Key", "s3cret", http.StatusOK},
		{"wrong", "Authorization", "Bearer nope", http.StatusUnauthorized},
		{"empty bearer", "Authorization", "Bearer  ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "admin-1", seen)
			} else {
				assert.Empty(t, seen)
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}
