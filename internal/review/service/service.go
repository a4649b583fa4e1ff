// Package service records reviews and keeps each caregiver's rating snapshot
// equal to the aggregate over their visible reviews.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	identity "carenest/internal/identity/models"
	"carenest/internal/platform/tracing"
	"carenest/internal/review/models"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ReviewStore,CaregiverStore

type ReviewStore interface {
	Create(ctx context.Context, r *models.Review) error
	FindByID(ctx context.Context, reviewID id.ReviewID) (*models.Review, error)
	Update(ctx context.Context, r *models.Review) error
	ListByCaregiver(ctx context.Context, caregiverID id.CaregiverID, visibleOnly bool) ([]*models.Review, error)
	Summarize(ctx context.Context, caregiverID id.CaregiverID) (models.Summary, error)
}

type CaregiverStore interface {
	FindByID(ctx context.Context, caregiverID id.CaregiverID) (*identity.Caregiver, error)
	Update(ctx context.Context, c *identity.Caregiver) error
	ListIDs(ctx context.Context) ([]id.CaregiverID, error)
}

type Service struct {
	reviews    ReviewStore
	caregivers CaregiverStore
	tx         txcontext.Transactor
	logger     *slog.Logger
	metrics    *Metrics
	now        func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
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

func New(reviews ReviewStore, caregivers CaregiverStore, opts ...Option) *Service {
	s := &Service{
		reviews:    reviews,
		caregivers: caregivers,
		tx:         txcontext.NewMemory(),
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var tracer = tracing.Tracer("review")

// Record stores a new review and refreshes the caregiver's rating in the same
// unit of work. Callers already inside a transaction join it.
func (s *Service) Record(ctx context.Context, r *models.Review) (err error) {
	ctx, span := tracing.Start(ctx, tracer, "review.Record")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.reviews.Create(ctx, r); err != nil {
			return translate(err)
		}
		_, err := s.recompute(ctx, r.CaregiverID)
		return err
	})
	if err != nil {
		return err
	}
	s.metrics.recorded(r.Rating)
	return nil
}

// Recompute refreshes one caregiver's snapshot and reports whether it changed.
func (s *Service) Recompute(ctx context.Context, caregiverID id.CaregiverID) (bool, error) {
	var changed bool
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		changed, err = s.recompute(ctx, caregiverID)
		return err
	})
	return changed, err
}

func (s *Service) recompute(ctx context.Context, caregiverID id.CaregiverID) (bool, error) {
	sum, err := s.reviews.Summarize(ctx, caregiverID)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to aggregate reviews")
	}
	c, err := s.caregivers.FindByID(ctx, caregiverID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, dErrors.New(dErrors.CodeNotFound, "Caregiver not found")
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load caregiver")
	}
	if c.Rating == sum.Average && c.ReviewCount == sum.Count {
		return false, nil
	}
	c.ApplyRating(sum.Average, sum.Count, s.clock(ctx))
	if err := s.caregivers.Update(ctx, c); err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update caregiver rating")
	}
	return true, nil
}

// SetVisibility hides or restores a review. A real change refreshes the rating.
func (s *Service) SetVisibility(ctx context.Context, reviewID id.ReviewID, visible bool) (r *models.Review, err error) {
	ctx, span := tracing.Start(ctx, tracer, "review.SetVisibility")
	defer func() { tracing.End(span, err) }()

	now := s.clock(ctx)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		r, err = s.reviews.FindByID(ctx, reviewID)
		if err != nil {
			return translate(err)
		}
		if !r.SetVisible(visible, now) {
			return nil
		}
		if err := s.reviews.Update(ctx, r); err != nil {
			return translate(err)
		}
		_, err := s.recompute(ctx, r.CaregiverID)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "review visibility changed",
		"log_type", "audit",
		"event", "review_visibility_changed",
		"request_id", requestcontext.RequestID(ctx),
		"review_id", reviewID.String(),
		"visible", visible,
	)
	return r, nil
}

// Respond stores the reviewed caregiver's reply. It does not touch the rating.
func (s *Service) Respond(ctx context.Context, caregiverID id.CaregiverID, reviewID id.ReviewID, response string) (r *models.Review, err error) {
	now := s.clock(ctx)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		r, err = s.reviews.FindByID(ctx, reviewID)
		if err != nil {
			return translate(err)
		}
		if r.CaregiverID != caregiverID {
			return dErrors.New(dErrors.CodeForbidden, "Not authorized to respond to this review")
		}
		if err := r.Respond(response, now); err != nil {
			return err
		}
		return translate(s.reviews.Update(ctx, r))
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListForCaregiver returns visible reviews, newest first.
func (s *Service) ListForCaregiver(ctx context.Context, caregiverID id.CaregiverID) ([]*models.Review, error) {
	reviews, err := s.reviews.ListByCaregiver(ctx, caregiverID, true)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list reviews")
	}
	return reviews, nil
}

func (s *Service) clock(ctx context.Context) time.Time {
	if _, ok := ctx.Value(requestcontext.ContextKeyRequestTime).(time.Time); ok {
		return requestcontext.Now(ctx)
	}
	return s.now().UTC()
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := dErrors.From(err); ok {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "Review not found")
	case errors.Is(err, sentinel.ErrAlreadyUsed):
		return dErrors.Wrap(err, dErrors.CodeConflict, "Booking already reviewed")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "review store failure")
	}
}
