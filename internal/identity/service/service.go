// Package service implements account registration, login and self-service
// profile management for caregivers and family accounts.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carenest/internal/auth/token"
	"carenest/internal/identity/models"
	"carenest/internal/notification"
	"carenest/internal/platform/tracing"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CaregiverStore,SeniorStore,PasswordHasher,TokenService,RevocationList

type CaregiverStore interface {
	Create(ctx context.Context, c *models.Caregiver) error
	FindByID(ctx context.Context, caregiverID id.CaregiverID) (*models.Caregiver, error)
	FindByEmail(ctx context.Context, email string) (*models.Caregiver, error)
	Update(ctx context.Context, c *models.Caregiver) error
	RecordLogin(ctx context.Context, caregiverID id.CaregiverID, at time.Time) error
}

type SeniorStore interface {
	Create(ctx context.Context, s *models.Senior) error
	FindByID(ctx context.Context, seniorID id.SeniorID) (*models.Senior, error)
	FindByEmail(ctx context.Context, email string) (*models.Senior, error)
	Update(ctx context.Context, s *models.Senior) error
	RecordLogin(ctx context.Context, seniorID id.SeniorID, at time.Time) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(hash, password string) bool
}

type TokenService interface {
	Issue(accountID id.AccountID, accountType id.AccountType) (token.Issued, error)
	Parse(tokenString string) (*token.Claims, error)
}

type RevocationList interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
}

// Service coordinates identity stores with the credential collaborators.
type Service struct {
	caregivers  CaregiverStore
	seniors     SeniorStore
	hasher      PasswordHasher
	tokens      TokenService
	revocations RevocationList
	tx          txcontext.Transactor
	notifier    notification.Notifier
	logger      *slog.Logger
	metrics     *Metrics
	adminEmail  string
	now         func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithNotifier(n notification.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithTransactor(tx txcontext.Transactor) Option {
	return func(s *Service) { s.tx = tx }
}

// WithAdminEmail sets the inbox told about new caregivers awaiting review.
func WithAdminEmail(email string) Option {
	return func(s *Service) { s.adminEmail = email }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(
	caregivers CaregiverStore,
	seniors SeniorStore,
	hasher PasswordHasher,
	tokens TokenService,
	revocations RevocationList,
	opts ...Option,
) *Service {
	s := &Service{
		caregivers:  caregivers,
		seniors:     seniors,
		hasher:      hasher,
		tokens:      tokens,
		revocations: revocations,
		tx:          txcontext.NewMemory(),
		notifier:    notification.Discard{},
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var tracer = tracing.Tracer("identity")

// clock prefers the request time set by middleware so one request sees one instant.
func (s *Service) clock(ctx context.Context) time.Time {
	if _, ok := ctx.Value(requestcontext.ContextKeyRequestTime).(time.Time); ok {
		return requestcontext.Now(ctx)
	}
	return s.now().UTC()
}

func (s *Service) logAudit(ctx context.Context, event string, attrs ...any) {
	args := append([]any{
		"log_type", "audit",
		"event", event,
		"request_id", requestcontext.RequestID(ctx),
	}, attrs...)
	s.logger.InfoContext(ctx, event, args...)
}

// translate maps store sentinels onto client-facing domain errors.
func translate(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.From(err); ok {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFound)
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		field, _ := sentinel.DuplicateField(err)
		return dErrors.Wrap(err, dErrors.CodeConflict, duplicateMessage(field))
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "identity store failure")
	}
}

func duplicateMessage(field string) string {
	switch field {
	case "aadhaar_number":
		return "an account with this Aadhaar number already exists"
	case "pan_number":
		return "an account with this PAN number already exists"
	default:
		return "an account with this email already exists"
	}
}
