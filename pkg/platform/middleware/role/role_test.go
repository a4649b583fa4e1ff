package role

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	id "carenest/pkg/domain"
	"carenest/pkg/requestcontext"
)

func TestRequire(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	guard := Require(logger, id.AccountFamily)(ok)

	t.Run("allowed type passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		r = r.WithContext(requestcontext.WithActor(r.Context(), id.AccountID(uuid.New()), id.AccountFamily))
		w := httptest.NewRecorder()
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other type is forbidden", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		r = r.WithContext(requestcontext.WithActor(r.Context(), id.AccountID(uuid.New()), id.AccountCaregiver))
		w := httptest.NewRecorder()
		guard.ServeHTTP(w, r)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
