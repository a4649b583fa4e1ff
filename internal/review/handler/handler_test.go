package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"carenest/internal/review/handler/mocks"
	"carenest/internal/review/models"
	"carenest/internal/review/service"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/requestcontext"
)

const actorHeader = "X-Test-Actor"

func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind, raw, ok := strings.Cut(r.Header.Get(actorHeader), ":")
		if !ok {
			httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "Not authorized, no token"))
			return
		}
		ctx := requestcontext.WithActor(r.Context(), id.AccountID(uuid.MustParse(raw)), id.AccountType(kind))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newRouter(t *testing.T) (chi.Router, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	h := New(svc, slog.New(slog.NewTextHandler(io.Discard, nil)), fakeAuth)
	r := chi.NewRouter()
	h.Register(r)
	h.RegisterAdmin(r)
	return r, svc
}

func serve(t *testing.T, r chi.Router, method, path, body, actor string) (*httptest.ResponseRecorder, httputil.Envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if actor != "" {
		req.Header.Set(actorHeader, actor)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var env httputil.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func review(t *testing.T, caregiverID id.CaregiverID) *models.Review {
	t.Helper()
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	rv, err := models.New(id.NewReviewID(), caregiverID, id.NewSeniorID(), id.NewBookingID(), 4, "Kind and punctual", now)
	require.NoError(t, err)
	return rv
}

func TestListReviewsIsPublic(t *testing.T) {
	r, svc := newRouter(t)
	caregiverID := id.NewCaregiverID()
	svc.EXPECT().ListForCaregiver(gomock.Any(), caregiverID).Return([]*models.Review{review(t, caregiverID)}, nil)

	w, env := serve(t, r, http.MethodGet, "/caregivers/"+caregiverID.String()+"/reviews", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, 1.0, data["count"])
	first := data["reviews"].([]any)[0].(map[string]any)
	assert.Equal(t, 4.0, first["rating"])
	assert.Equal(t, "Kind and punctual", first["comment"])
}

func TestListReviewsRejectsBadID(t *testing.T) {
	r, _ := newRouter(t)

	w, _ := serve(t, r, http.MethodGet, "/caregivers/not-a-uuid/reviews", "", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespond(t *testing.T) {
	caregiverID := id.NewCaregiverID()
	actor := string(id.AccountCaregiver) + ":" + caregiverID.String()

	t.Run("caregiver responds to own review", func(t *testing.T) {
		r, svc := newRouter(t)
		rv := review(t, caregiverID)
		responded := *rv
		responded.Response = "Thank you"
		svc.EXPECT().Respond(gomock.Any(), caregiverID, rv.ID, "Thank you").Return(&responded, nil)

		w, env := serve(t, r, http.MethodPost, "/reviews/"+rv.ID.String()+"/response", `{"response":"Thank you"}`, actor)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Thank you", env.Data.(map[string]any)["response"])
	})

	t.Run("other caregiver is forbidden", func(t *testing.T) {
		r, svc := newRouter(t)
		rv := review(t, id.NewCaregiverID())
		svc.EXPECT().Respond(gomock.Any(), caregiverID, rv.ID, "Thanks").
			Return(nil, dErrors.New(dErrors.CodeForbidden, "Not authorized to respond to this review"))

		w, env := serve(t, r, http.MethodPost, "/reviews/"+rv.ID.String()+"/response", `{"response":"Thanks"}`, actor)

		assert.Equal(t, http.StatusForbidden, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "Not authorized to respond to this review", env.Error.Message)
	})

	t.Run("families cannot respond", func(t *testing.T) {
		r, _ := newRouter(t)
		family := string(id.AccountFamily) + ":" + uuid.NewString()

		w, _ := serve(t, r, http.MethodPost, "/reviews/"+id.NewReviewID().String()+"/response", `{"response":"x"}`, family)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("empty response is a validation error", func(t *testing.T) {
		r, _ := newRouter(t)

		w, _ := serve(t, r, http.MethodPost, "/reviews/"+id.NewReviewID().String()+"/response", `{}`, actor)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSetVisibility(t *testing.T) {
	t.Run("hides a review", func(t *testing.T) {
		r, svc := newRouter(t)
		rv := review(t, id.NewCaregiverID())
		rv.IsVisible = false
		svc.EXPECT().SetVisibility(gomock.Any(), rv.ID, false).Return(rv, nil)

		w, env := serve(t, r, http.MethodPatch, "/admin/reviews/"+rv.ID.String()+"/visibility", `{"isVisible":false}`, "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, env.Data.(map[string]any)["isVisible"])
	})

	t.Run("flag is required", func(t *testing.T) {
		r, _ := newRouter(t)

		w, _ := serve(t, r, http.MethodPatch, "/admin/reviews/"+id.NewReviewID().String()+"/visibility", `{}`, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown review", func(t *testing.T) {
		r, svc := newRouter(t)
		reviewID := id.NewReviewID()
		svc.EXPECT().SetVisibility(gomock.Any(), reviewID, true).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "Review not found"))

		w, _ := serve(t, r, http.MethodPatch, "/admin/reviews/"+reviewID.String()+"/visibility", `{"isVisible":true}`, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReconcile(t *testing.T) {
	r, svc := newRouter(t)
	svc.EXPECT().RecomputeAll(gomock.Any()).Return(service.ReconcileResult{Checked: 3, Corrected: 1}, nil)

	w, env := serve(t, r, http.MethodPost, "/admin/ratings/reconcile", "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, 3.0, data["checked"])
	assert.Equal(t, 1.0, data["corrected"])
}
