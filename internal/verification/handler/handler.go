// Package handler exposes the admin verification queue over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carenest/internal/identity/models"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	ListPending(ctx context.Context) ([]*models.Caregiver, error)
	GetDetails(ctx context.Context, caregiverID id.CaregiverID) (*models.Caregiver, error)
	Approve(ctx context.Context, caregiverID id.CaregiverID) (*models.Caregiver, error)
	Reject(ctx context.Context, caregiverID id.CaregiverID, reason string) (*models.Caregiver, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the admin routes. The caller is responsible for the admin guard.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/caregivers/pending", h.HandleListPending)
	r.Get("/admin/caregivers/{id}", h.HandleGetDetails)
	r.Patch("/admin/caregivers/{id}/approve", h.HandleApprove)
	r.Patch("/admin/caregivers/{id}/reject", h.HandleReject)
}

type RejectRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	if len([]rune(r.Reason)) > 500 {
		return dErrors.New(dErrors.CodeValidation, "rejection reason cannot exceed 500 characters")
	}
	return nil
}

type PendingResponse struct {
	Count      int                    `json:"count"`
	Caregivers []models.CaregiverView `json:"caregivers"`
}

func (h *Handler) HandleListPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pending, err := h.service.ListPending(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list pending caregivers",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	views := make([]models.CaregiverView, 0, len(pending))
	for _, c := range pending {
		views = append(views, models.NewCaregiverView(c))
	}
	httputil.WriteSuccess(w, http.StatusOK, "", PendingResponse{Count: len(views), Caregivers: views})
}

func (h *Handler) HandleGetDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caregiverID, ok := h.caregiverID(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetDetails(ctx, caregiverID)
	if err != nil {
		h.fail(ctx, w, "failed to load caregiver", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "", models.NewCaregiverView(c))
}

func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caregiverID, ok := h.caregiverID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Approve(ctx, caregiverID)
	if err != nil {
		h.fail(ctx, w, "caregiver approval failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Caregiver approved successfully", models.NewCaregiverView(c))
}

func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	caregiverID, ok := h.caregiverID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[RejectRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c, err := h.service.Reject(ctx, caregiverID, req.Reason)
	if err != nil {
		h.fail(ctx, w, "caregiver rejection failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Caregiver rejected", models.NewCaregiverView(c))
}

func (h *Handler) caregiverID(w http.ResponseWriter, r *http.Request) (id.CaregiverID, bool) {
	caregiverID, err := id.ParseCaregiverID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.CaregiverID{}, false
	}
	return caregiverID, true
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
