// Package handler serves the public caregiver directory.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carenest/internal/directory/models"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	Search(ctx context.Context, q models.Query) (models.Page[models.PublicProfile], error)
	GetPublic(ctx context.Context, caregiverID id.CaregiverID) (models.PublicProfile, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/caregivers", h.HandleSearch)
	r.Get("/caregivers/{id}", h.HandleGet)
}

type SearchResponse struct {
	Caregivers []models.PublicProfile `json:"caregivers"`
	Total      int                    `json:"total"`
	Pages      int                    `json:"pages"`
	Page       int                    `json:"page"`
	Count      int                    `json:"count"`
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, err := models.ParseQuery(r.URL.Query().Get)
	if err != nil {
		h.fail(ctx, w, "invalid directory query", err)
		return
	}
	page, err := h.service.Search(ctx, q)
	if err != nil {
		h.fail(ctx, w, "directory search failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "", SearchResponse{
		Caregivers: page.Items,
		Total:      page.Total,
		Pages:      page.Pages(),
		Page:       page.Page,
		Count:      len(page.Items),
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caregiverID, err := id.ParseCaregiverID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	p, err := h.service.GetPublic(ctx, caregiverID)
	if err != nil {
		h.fail(ctx, w, "failed to load caregiver profile", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "", p)
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
