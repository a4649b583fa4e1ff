// Package service answers directory searches over listed caregivers.
package service

import (
	"context"
	"errors"
	"log/slog"

	"carenest/internal/directory/models"
	identity "carenest/internal/identity/models"
	"carenest/internal/platform/tracing"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Store

// Store applies the listing predicate itself; Search never returns
// unverified or inactive caregivers.
type Store interface {
	Search(ctx context.Context, q models.Query) ([]*identity.Caregiver, int, error)
	FindByID(ctx context.Context, caregiverID id.CaregiverID) (*identity.Caregiver, error)
}

type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(store Store, opts ...Option) *Service {
	s := &Service{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var tracer = tracing.Tracer("directory")

// Search returns one page of listed caregivers in the query's sort order.
func (s *Service) Search(ctx context.Context, q models.Query) (page models.Page[models.PublicProfile], err error) {
	ctx, span := tracing.Start(ctx, tracer, "directory.Search")
	defer func() { tracing.End(span, err) }()

	if err := q.Normalize(); err != nil {
		return page, err
	}
	found, total, err := s.store.Search(ctx, q)
	if err != nil {
		s.logger.ErrorContext(ctx, "directory search failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return page, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search caregivers")
	}

	page = models.Page[models.PublicProfile]{
		Items: make([]models.PublicProfile, 0, len(found)),
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}
	for _, c := range found {
		page.Items = append(page.Items, models.NewPublicProfile(c))
	}
	s.metrics.searched(q.Sort, len(page.Items))
	return page, nil
}

// GetPublic returns a single listed caregiver's public profile.
func (s *Service) GetPublic(ctx context.Context, caregiverID id.CaregiverID) (models.PublicProfile, error) {
	c, err := s.store.FindByID(ctx, caregiverID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.PublicProfile{}, dErrors.New(dErrors.CodeNotFound, "Caregiver not found")
		}
		return models.PublicProfile{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load caregiver")
	}
	if !c.IsListed() {
		return models.PublicProfile{}, dErrors.New(dErrors.CodeForbidden, "caregiver profile is not available")
	}
	return models.NewPublicProfile(c), nil
}
