// Package handler serves caregiver reviews and the admin moderation routes.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"carenest/internal/review/models"
	"carenest/internal/review/service"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/platform/middleware/role"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	ListForCaregiver(ctx context.Context, caregiverID id.CaregiverID) ([]*models.Review, error)
	Respond(ctx context.Context, caregiverID id.CaregiverID, reviewID id.ReviewID, response string) (*models.Review, error)
	SetVisibility(ctx context.Context, reviewID id.ReviewID, visible bool) (*models.Review, error)
	RecomputeAll(ctx context.Context) (service.ReconcileResult, error)
}

type Handler struct {
	service     Service
	logger      *slog.Logger
	requireAuth func(http.Handler) http.Handler
}

func New(service Service, logger *slog.Logger, requireAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, logger: logger, requireAuth: requireAuth}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/caregivers/{id}/reviews", h.HandleList)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Use(role.Require(h.logger, id.AccountCaregiver))
		r.Post("/reviews/{id}/response", h.HandleRespond)
	})
}

// RegisterAdmin mounts moderation routes. The caller applies the admin guard.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Patch("/admin/reviews/{id}/visibility", h.HandleSetVisibility)
	r.Post("/admin/ratings/reconcile", h.HandleReconcile)
}

type RespondRequest struct {
	Response string `json:"response"`
}

func (r *RespondRequest) Validate() error {
	if r.Response == "" {
		return dErrors.New(dErrors.CodeValidation, "response is required")
	}
	return nil
}

type VisibilityRequest struct {
	IsVisible *bool `json:"isVisible"`
}

func (r *VisibilityRequest) Validate() error {
	if r.IsVisible == nil {
		return dErrors.New(dErrors.CodeValidation, "isVisible is required")
	}
	return nil
}

type ReviewResponse struct {
	ID           string     `json:"id"`
	CaregiverID  string     `json:"caregiverId"`
	SeniorID     string     `json:"seniorId"`
	BookingID    string     `json:"bookingId"`
	Rating       int        `json:"rating"`
	Comment      string     `json:"comment"`
	Response     string     `json:"response,omitempty"`
	ResponseDate *time.Time `json:"responseDate,omitempty"`
	IsVisible    bool       `json:"isVisible"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func toResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID.String(),
		CaregiverID:  r.CaregiverID.String(),
		SeniorID:     r.SeniorID.String(),
		BookingID:    r.BookingID.String(),
		Rating:       r.Rating,
		Comment:      r.Comment,
		Response:     r.Response,
		ResponseDate: r.ResponseDate,
		IsVisible:    r.IsVisible,
		CreatedAt:    r.CreatedAt,
	}
}

type ListResponse struct {
	Count   int              `json:"count"`
	Reviews []ReviewResponse `json:"reviews"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caregiverID, err := id.ParseCaregiverID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	reviews, err := h.service.ListForCaregiver(ctx, caregiverID)
	if err != nil {
		h.fail(ctx, w, "failed to list reviews", err)
		return
	}
	out := make([]ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		out = append(out, toResponse(rv))
	}
	httputil.WriteSuccess(w, http.StatusOK, "", ListResponse{Count: len(out), Reviews: out})
}

func (h *Handler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	reviewID, ok := h.reviewID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RespondRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	caregiverID := requestcontext.AccountID(ctx).CaregiverID()
	rv, err := h.service.Respond(ctx, caregiverID, reviewID, req.Response)
	if err != nil {
		h.fail(ctx, w, "review response failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Response added", toResponse(rv))
}

func (h *Handler) HandleSetVisibility(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	reviewID, ok := h.reviewID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[VisibilityRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rv, err := h.service.SetVisibility(ctx, reviewID, *req.IsVisible)
	if err != nil {
		h.fail(ctx, w, "review visibility change failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Review visibility updated", toResponse(rv))
}

func (h *Handler) HandleReconcile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.service.RecomputeAll(ctx)
	if err != nil {
		h.fail(ctx, w, "rating reconcile failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Ratings reconciled", res)
}

func (h *Handler) reviewID(w http.ResponseWriter, r *http.Request) (id.ReviewID, bool) {
	reviewID, err := id.ParseReviewID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.ReviewID{}, false
	}
	return reviewID, true
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	level := slog.LevelError
	if de, ok := dErrors.From(err); ok && de.Code.IsClientError() {
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	httputil.WriteError(w, err)
}
