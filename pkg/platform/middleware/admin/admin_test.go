package admin

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdminToken(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name     string
		expected string
		sent     string
		want     int
	}{
		{"matching token", "s3cret", "s3cret", http.StatusNoContent},
		{"wrong token", "s3cret", "guess", http.StatusUnauthorized},
		{"missing token", "s3cret", "", http.StatusUnauthorized},
		{"unconfigured token locks routes", "", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/admin/caregivers/pending", nil)
			if tt.sent != "" {
				r.Header.Set("X-Admin-Token", tt.sent)
			}
			w := httptest.NewRecorder()
			RequireAdminToken(tt.expected, logger)(ok).ServeHTTP(w, r)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
