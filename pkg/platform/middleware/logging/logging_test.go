package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carenest/pkg/requestcontext"
)

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "INFO"},
		{http.StatusNotFound, "WARN"},
		{http.StatusInternalServerError, "ERROR"},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))

			r := httptest.NewRequest(http.MethodGet, "/bookings", nil)
			r = r.WithContext(requestcontext.WithRequestID(r.Context(), "req-1"))
			h.ServeHTTP(httptest.NewRecorder(), r)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, "req-1", line["request_id"])
			assert.Equal(t, "/bookings", line["path"])
			assert.Equal(t, float64(tt.status), line["status"])
		})
	}
}
