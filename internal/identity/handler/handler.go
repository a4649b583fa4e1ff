package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"carenest/internal/identity/models"
	"carenest/internal/identity/service"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/httputil"
	"carenest/pkg/platform/middleware/role"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service is the identity surface the HTTP layer needs.
type Service interface {
	RegisterCaregiver(ctx context.Context, reg models.CaregiverRegistration, password string) (*models.Caregiver, error)
	RegisterSenior(ctx context.Context, reg models.SeniorRegistration, password string) (*models.Senior, error)
	Login(ctx context.Context, req service.LoginRequest) (*service.LoginResult, error)
	Logout(ctx context.Context, tokenString string) error
	Me(ctx context.Context, accountID id.AccountID, accountType id.AccountType) (*service.Account, error)
	UpdateCaregiverProfile(ctx context.Context, caregiverID id.CaregiverID, update models.CaregiverProfileUpdate) (*models.Caregiver, error)
	DeactivateCaregiver(ctx context.Context, caregiverID id.CaregiverID) error
	CaregiverStats(ctx context.Context, caregiverID id.CaregiverID) (*service.CaregiverStats, error)
	GetSeniorProfile(ctx context.Context, seniorID id.SeniorID) (*models.Senior, error)
	UpdateSeniorProfile(ctx context.Context, seniorID id.SeniorID, update models.SeniorProfileUpdate) (*models.Senior, error)
}

type Handler struct {
	service     Service
	logger      *slog.Logger
	requireAuth func(http.Handler) http.Handler
}

// New builds the handler. requireAuth guards every route that needs an actor.
func New(service Service, logger *slog.Logger, requireAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{
		service:     service,
		logger:      logger,
		requireAuth: requireAuth,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/register/caregiver", h.HandleRegisterCaregiver)
	r.Post("/auth/register/senior", h.HandleRegisterSenior)
	r.Post("/auth/login", h.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post("/auth/logout", h.HandleLogout)
		r.Get("/auth/me", h.HandleMe)

		r.Group(func(r chi.Router) {
			r.Use(role.Require(h.logger, id.AccountCaregiver))
			r.Put("/caregivers/profile", h.HandleUpdateCaregiverProfile)
			r.Delete("/caregivers/profile", h.HandleDeactivateCaregiver)
			r.Get("/caregivers/me/stats", h.HandleCaregiverStats)
			r.Get("/caregivers/stats/dashboard", h.HandleCaregiverStats)
		})

		r.Group(func(r chi.Router) {
			r.Use(role.Require(h.logger, id.AccountFamily))
			r.Get("/seniors/profile", h.HandleGetSeniorProfile)
			r.Put("/seniors/profile", h.HandleUpdateSeniorProfile)
		})
	})
}

func (h *Handler) HandleRegisterCaregiver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.RegisterCaregiverRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c, err := h.service.RegisterCaregiver(ctx, req.Registration(), req.Password)
	if err != nil {
		h.logFailure(ctx, "caregiver registration failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated,
		"Registration successful. Your profile is pending verification.",
		caregiverAccount(c))
}

func (h *Handler) HandleRegisterSenior(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.RegisterSeniorRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sn, err := h.service.RegisterSenior(ctx, req.Registration(), req.Password)
	if err != nil {
		h.logFailure(ctx, "senior registration failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusCreated, "Registration successful", seniorAccount(sn))
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	res, err := h.service.Login(ctx, service.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		h.logFailure(ctx, "login failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "Login successful", toLoginResponse(res))
}

// HandleLogout revokes the bearer token the request was authenticated with.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")

	if err := h.service.Logout(ctx, strings.TrimSpace(token)); err != nil {
		h.logFailure(ctx, "logout failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "Logged out", nil)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	acct, err := h.service.Me(ctx, requestcontext.AccountID(ctx), requestcontext.AccountType(ctx))
	if err != nil {
		h.logFailure(ctx, "failed to load account", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "", toMeResponse(acct))
}

func (h *Handler) HandleUpdateCaregiverProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.UpdateCaregiverProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	c, err := h.service.UpdateCaregiverProfile(ctx, requestcontext.AccountID(ctx).CaregiverID(), req.Update())
	if err != nil {
		h.logFailure(ctx, "caregiver profile update failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "Profile updated", models.NewCaregiverView(c))
}

func (h *Handler) HandleDeactivateCaregiver(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.service.DeactivateCaregiver(ctx, requestcontext.AccountID(ctx).CaregiverID()); err != nil {
		h.logFailure(ctx, "caregiver deactivation failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "Account deactivated", nil)
}

func (h *Handler) HandleCaregiverStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st, err := h.service.CaregiverStats(ctx, requestcontext.AccountID(ctx).CaregiverID())
	if err != nil {
		h.logFailure(ctx, "failed to load caregiver stats", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "", toStatsResponse(st))
}

func (h *Handler) HandleGetSeniorProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sn, err := h.service.GetSeniorProfile(ctx, requestcontext.AccountID(ctx).SeniorID())
	if err != nil {
		h.logFailure(ctx, "failed to load senior profile", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "", models.NewSeniorView(sn))
}

func (h *Handler) HandleUpdateSeniorProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.UpdateSeniorProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	sn, err := h.service.UpdateSeniorProfile(ctx, requestcontext.AccountID(ctx).SeniorID(), req.Update())
	if err != nil {
		h.logFailure(ctx, "senior profile update failed", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, http.StatusOK, "Profile updated", models.NewSeniorView(sn))
}

// logFailure logs client errors at warn and everything else at error.
func (h *Handler) logFailure(ctx context.Context, msg string, err error) {
	level := slog.LevelError
	if de, ok := dErrors.From(err); ok && de.Code.IsClientError() {
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}
