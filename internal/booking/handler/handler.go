// Package handler exposes the booking lifecycle over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carenest/internal/booking/models"
	"carenest/internal/booking/service"
	reviewmodels "carenest/internal/review/models"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/platform/middleware/role"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type Service interface {
	Create(ctx context.Context, seniorID id.SeniorID, req models.Request) (*models.Booking, error)
	Get(ctx context.Context, actor service.Actor, bookingID id.BookingID) (*models.Booking, error)
	List(ctx context.Context, actor service.Actor) ([]*models.Booking, error)
	UpdateStatus(ctx context.Context, actor service.Actor, bookingID id.BookingID, change service.StatusChange) (*models.Booking, error)
	Cancel(ctx context.Context, actor service.Actor, bookingID id.BookingID, reason string) (*models.Booking, error)
	AddReview(ctx context.Context, actor service.Actor, bookingID id.BookingID, rating int, comment string) (*reviewmodels.Review, error)
	RecordPayment(ctx context.Context, bookingID id.BookingID, status string) (*models.Booking, error)
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
	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/bookings", h.HandleList)
		r.Get("/bookings/{id}", h.HandleGet)
		r.Patch("/bookings/{id}/status", h.HandleUpdateStatus)
		r.Patch("/bookings/{id}/cancel", h.HandleCancel)

		r.Group(func(r chi.Router) {
			r.Use(role.Require(h.logger, id.AccountFamily))
			r.Post("/bookings", h.HandleCreate)
			r.Post("/bookings/{id}/review", h.HandleReview)
		})
	})
}

// RegisterAdmin mounts admin booking routes. The caller applies the admin guard.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Patch("/admin/bookings/{id}/cancel", h.HandleAdminCancel)
	r.Patch("/admin/bookings/{id}/payment", h.HandlePayment)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CreateBookingRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	seniorID := requestcontext.AccountID(ctx).SeniorID()
	b, err := h.service.Create(ctx, seniorID, req.Request())
	if err != nil {
		h.fail(ctx, w, "booking creation failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "Booking request sent", toResponse(b))
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bookings, err := h.service.List(ctx, service.ActorFromContext(ctx))
	if err != nil {
		h.fail(ctx, w, "failed to list bookings", err)
		return
	}
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toResponse(b))
	}
	httputil.WriteSuccess(w, http.StatusOK, "", ListResponse{Count: len(out), Bookings: out})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}

	b, err := h.service.Get(ctx, service.ActorFromContext(ctx), bookingID)
	if err != nil {
		h.fail(ctx, w, "failed to load booking", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "", toResponse(b))
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[UpdateStatusRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	b, err := h.service.UpdateStatus(ctx, service.ActorFromContext(ctx), bookingID, req.Change())
	if err != nil {
		h.fail(ctx, w, "booking status update failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Booking status updated", toResponse(b))
}

func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, service.ActorFromContext(r.Context()))
}

func (h *Handler) HandleAdminCancel(w http.ResponseWriter, r *http.Request) {
	h.cancel(w, r, service.AdminActor())
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request, actor service.Actor) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[CancelRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	b, err := h.service.Cancel(ctx, actor, bookingID, req.Reason)
	if err != nil {
		h.fail(ctx, w, "booking cancellation failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Booking cancelled", toResponse(b))
}

func (h *Handler) HandleReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[ReviewRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	rv, err := h.service.AddReview(ctx, service.ActorFromContext(ctx), bookingID, req.Rating, req.Comment)
	if err != nil {
		h.fail(ctx, w, "booking review failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusCreated, "Review added", ReviewResponse{
		ID:        rv.ID.String(),
		BookingID: rv.BookingID.String(),
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	})
}

func (h *Handler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	bookingID, ok := h.bookingID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[PaymentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	b, err := h.service.RecordPayment(ctx, bookingID, req.PaymentStatus)
	if err != nil {
		h.fail(ctx, w, "booking payment update failed", err)
		return
	}
	httputil.WriteSuccess(w, http.StatusOK, "Payment status updated", toResponse(b))
}

func (h *Handler) bookingID(w http.ResponseWriter, r *http.Request) (id.BookingID, bool) {
	bookingID, err := id.ParseBookingID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return id.BookingID{}, false
	}
	return bookingID, true
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
