// Package service runs the admin verification workflow for caregivers.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carenest/internal/identity/models"
	"carenest/internal/notification"
	"carenest/internal/platform/tracing"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks CaregiverStore

type CaregiverStore interface {
	FindByID(ctx context.Context, caregiverID id.CaregiverID) (*models.Caregiver, error)
	Update(ctx context.Context, c *models.Caregiver) error
	ListPending(ctx context.Context) ([]*models.Caregiver, error)
}

type Service struct {
	caregivers CaregiverStore
	tx         txcontext.Transactor
	notifier   notification.Notifier
	logger     *slog.Logger
	metrics    *Metrics
	now        func() time.Time
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

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(caregivers CaregiverStore, opts ...Option) *Service {
	s := &Service{
		caregivers: caregivers,
		tx:         txcontext.NewMemory(),
		notifier:   notification.Discard{},
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var tracer = tracing.Tracer("verification")

// ListPending returns caregivers awaiting review, newest registration first.
func (s *Service) ListPending(ctx context.Context) ([]*models.Caregiver, error) {
	pending, err := s.caregivers.ListPending(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list pending caregivers")
	}
	return pending, nil
}

// GetDetails returns the full record, document references included.
func (s *Service) GetDetails(ctx context.Context, caregiverID id.CaregiverID) (*models.Caregiver, error) {
	c, err := s.caregivers.FindByID(ctx, caregiverID)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// Approve verifies a caregiver. Approving an already verified caregiver
// re-stamps the verification time.
func (s *Service) Approve(ctx context.Context, caregiverID id.CaregiverID) (c *models.Caregiver, err error) {
	ctx, span := tracing.Start(ctx, tracer, "verification.Approve")
	defer func() { tracing.End(span, err) }()

	now := s.clock(ctx)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err = s.caregivers.FindByID(ctx, caregiverID)
		if err != nil {
			return translate(err)
		}
		if err := c.Approve(now); err != nil {
			return err
		}
		return translate(s.caregivers.Update(ctx, c))
	})
	if err != nil {
		s.metrics.decision("approve", "failed")
		return nil, err
	}

	s.metrics.decision("approve", "ok")
	s.logAudit(ctx, "caregiver_approved",
		"caregiver_id", caregiverID.String(),
	)
	s.notifier.Notify(ctx, notification.CaregiverApproved(c.Email, c.FullName))
	return c, nil
}

// Reject moves a pending caregiver to rejected. An empty reason records the default.
func (s *Service) Reject(ctx context.Context, caregiverID id.CaregiverID, reason string) (c *models.Caregiver, err error) {
	ctx, span := tracing.Start(ctx, tracer, "verification.Reject")
	defer func() { tracing.End(span, err) }()

	now := s.clock(ctx)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err = s.caregivers.FindByID(ctx, caregiverID)
		if err != nil {
			return translate(err)
		}
		if err := c.Reject(reason, now); err != nil {
			return err
		}
		return translate(s.caregivers.Update(ctx, c))
	})
	if err != nil {
		s.metrics.decision("reject", "failed")
		return nil, err
	}

	recorded := c.Verification.RejectionReason()
	s.metrics.decision("reject", "ok")
	s.logAudit(ctx, "caregiver_rejected",
		"caregiver_id", caregiverID.String(),
		"reason", recorded,
	)
	s.notifier.Notify(ctx, notification.CaregiverRejected(c.Email, c.FullName, recorded))
	return c, nil
}

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
		"actor", "admin",
		"request_id", requestcontext.RequestID(ctx),
	}, attrs...)
	s.logger.InfoContext(ctx, event, args...)
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.From(err); ok {
		return err
	}
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Caregiver not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "verification store failure")
}
