// Package service runs the booking lifecycle between families and caregivers.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"carenest/internal/booking/models"
	identity "carenest/internal/identity/models"
	"carenest/internal/notification"
	"carenest/internal/platform/tracing"
	reviewmodels "carenest/internal/review/models"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
	"carenest/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks BookingStore,CaregiverStore,SeniorStore,ReviewRecorder

type BookingStore interface {
	Create(ctx context.Context, b *models.Booking) error
	FindByID(ctx context.Context, bookingID id.BookingID) (*models.Booking, error)
	Update(ctx context.Context, b *models.Booking) error
	ListByCaregiver(ctx context.Context, caregiverID id.CaregiverID) ([]*models.Booking, error)
	ListBySenior(ctx context.Context, seniorID id.SeniorID) ([]*models.Booking, error)
}

type CaregiverStore interface {
	FindByID(ctx context.Context, caregiverID id.CaregiverID) (*identity.Caregiver, error)
	Update(ctx context.Context, c *identity.Caregiver) error
}

type SeniorStore interface {
	FindByID(ctx context.Context, seniorID id.SeniorID) (*identity.Senior, error)
}

// ReviewRecorder stores a review and refreshes the caregiver's rating. It
// must join the transaction carried by ctx.
type ReviewRecorder interface {
	Record(ctx context.Context, r *reviewmodels.Review) error
}

// Actor is whoever drives a booking mutation. Admin actors carry no account.
type Actor struct {
	AccountID   id.AccountID
	AccountType id.AccountType
	Admin       bool
}

// ActorFromContext reads the authenticated account set by the auth middleware.
func ActorFromContext(ctx context.Context) Actor {
	return Actor{
		AccountID:   requestcontext.AccountID(ctx),
		AccountType: requestcontext.AccountType(ctx),
	}
}

func AdminActor() Actor {
	return Actor{Admin: true}
}

func (a Actor) role(b *models.Booking) (id.ActorRole, bool) {
	if a.Admin {
		return id.ActorAdmin, true
	}
	return b.RoleOf(a.AccountID, a.AccountType)
}

type Service struct {
	bookings   BookingStore
	caregivers CaregiverStore
	seniors    SeniorStore
	reviews    ReviewRecorder
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

// WithTransactor must receive the same Transactor the ReviewRecorder uses so
// reviews join the booking's unit of work.
func WithTransactor(tx txcontext.Transactor) Option {
	return func(s *Service) { s.tx = tx }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func New(bookings BookingStore, caregivers CaregiverStore, seniors SeniorStore, reviews ReviewRecorder, opts ...Option) *Service {
	s := &Service{
		bookings:   bookings,
		caregivers: caregivers,
		seniors:    seniors,
		reviews:    reviews,
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

var tracer = tracing.Tracer("booking")

// Create books a verified, active caregiver for the senior. The caregiver's
// booking counter moves in the same unit of work.
func (s *Service) Create(ctx context.Context, seniorID id.SeniorID, req models.Request) (b *models.Booking, err error) {
	ctx, span := tracing.Start(ctx, tracer, "booking.Create")
	defer func() { tracing.End(span, err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := s.clock(ctx)
	var (
		caregiver *identity.Caregiver
		senior    *identity.Senior
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		caregiver, err = s.caregivers.FindByID(ctx, req.CaregiverID)
		if err != nil {
			return translate(err, "Caregiver not found")
		}
		if err := caregiver.Bookable(); err != nil {
			return err
		}
		senior, err = s.seniors.FindByID(ctx, seniorID)
		if err != nil {
			return translate(err, "Senior not found")
		}
		b, err = models.New(id.NewBookingID(), seniorID, req, caregiver.HourlyRate, now)
		if err != nil {
			return err
		}
		if err := s.bookings.Create(ctx, b); err != nil {
			return translate(err, "Booking not found")
		}
		caregiver.RecordBooking(now)
		return translate(s.caregivers.Update(ctx, caregiver), "Caregiver not found")
	})
	if err != nil {
		return nil, err
	}

	s.metrics.created()
	s.notifier.Notify(ctx, notification.BookingRequested(
		caregiver.Email, b.ID.String(), senior.SeniorName, b.Window.StartDate.Format(time.DateOnly)))
	return b, nil
}

// Get returns a booking to one of its parties or an admin.
func (s *Service) Get(ctx context.Context, actor Actor, bookingID id.BookingID) (*models.Booking, error) {
	b, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, translate(err, "Booking not found")
	}
	if _, ok := actor.role(b); !ok {
		return nil, dErrors.New(dErrors.CodeForbidden, "Not authorized to view this booking")
	}
	return b, nil
}

// List returns the actor's own bookings, newest first.
func (s *Service) List(ctx context.Context, actor Actor) ([]*models.Booking, error) {
	var (
		out []*models.Booking
		err error
	)
	switch {
	case actor.Admin:
		return nil, dErrors.New(dErrors.CodeForbidden, "admins list bookings per caregiver or senior")
	case actor.AccountType == id.AccountCaregiver:
		out, err = s.bookings.ListByCaregiver(ctx, actor.AccountID.CaregiverID())
	default:
		out, err = s.bookings.ListBySenior(ctx, actor.AccountID.SeniorID())
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list bookings")
	}
	return out, nil
}

// StatusChange moves a booking forward. Notes are only accepted from the caregiver.
type StatusChange struct {
	Status         string
	CaregiverNotes *string
}

// UpdateStatus follows the transition table. Completion credits the
// caregiver's counters in the same unit of work.
func (s *Service) UpdateStatus(ctx context.Context, actor Actor, bookingID id.BookingID, change StatusChange) (b *models.Booking, err error) {
	ctx, span := tracing.Start(ctx, tracer, "booking.UpdateStatus")
	defer func() { tracing.End(span, err) }()

	next, err := models.ParseStatus(change.Status)
	if err != nil {
		return nil, err
	}
	now := s.clock(ctx)
	var role id.ActorRole
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err = s.bookings.FindByID(ctx, bookingID)
		if err != nil {
			return translate(err, "Booking not found")
		}
		var ok bool
		role, ok = b.RoleOf(actor.AccountID, actor.AccountType)
		if actor.Admin || !ok {
			return dErrors.New(dErrors.CodeForbidden, "Not authorized to update this booking")
		}
		if err := b.TransitionTo(next, now); err != nil {
			return err
		}
		if change.CaregiverNotes != nil {
			if role != id.ActorCaregiver {
				return dErrors.New(dErrors.CodeForbidden, "Only the caregiver can add notes")
			}
			if err := b.SetCaregiverNotes(*change.CaregiverNotes, now); err != nil {
				return err
			}
		}
		if err := s.bookings.Update(ctx, b); err != nil {
			return translate(err, "Booking not found")
		}
		if next != models.StatusCompleted {
			return nil
		}
		caregiver, err := s.caregivers.FindByID(ctx, b.CaregiverID)
		if err != nil {
			return translate(err, "Caregiver not found")
		}
		caregiver.RecordCompletion(b.TotalHours, now)
		return translate(s.caregivers.Update(ctx, caregiver), "Caregiver not found")
	})
	if err != nil {
		return nil, err
	}

	s.metrics.transitioned(next)
	s.logger.InfoContext(ctx, "booking status changed",
		"request_id", requestcontext.RequestID(ctx),
		"booking_id", b.ID.String(),
		"status", string(next),
		"actor", string(role),
	)
	for _, recipient := range s.counterparties(ctx, b, role) {
		s.notifier.Notify(ctx, notification.BookingStatusChanged(recipient, b.ID.String(), string(next)))
	}
	return b, nil
}

// Cancel stops a non-terminal booking. Parties and admins may cancel.
func (s *Service) Cancel(ctx context.Context, actor Actor, bookingID id.BookingID, reason string) (b *models.Booking, err error) {
	ctx, span := tracing.Start(ctx, tracer, "booking.Cancel")
	defer func() { tracing.End(span, err) }()

	now := s.clock(ctx)
	var role id.ActorRole
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err = s.bookings.FindByID(ctx, bookingID)
		if err != nil {
			return translate(err, "Booking not found")
		}
		var ok bool
		if role, ok = actor.role(b); !ok {
			return dErrors.New(dErrors.CodeForbidden, "Not authorized to cancel this booking")
		}
		if err := b.Cancel(role, reason, now); err != nil {
			return err
		}
		return translate(s.bookings.Update(ctx, b), "Booking not found")
	})
	if err != nil {
		return nil, err
	}

	s.metrics.cancelled(role)
	if role == id.ActorAdmin {
		s.logger.InfoContext(ctx, "booking cancelled by admin",
			"log_type", "audit",
			"event", "booking_cancelled",
			"actor", "admin",
			"request_id", requestcontext.RequestID(ctx),
			"booking_id", b.ID.String(),
			"reason", b.Cancellation.Reason,
		)
	}
	for _, recipient := range s.counterparties(ctx, b, role) {
		s.notifier.Notify(ctx, notification.BookingCancelled(recipient, b.ID.String(), string(role), b.Cancellation.Reason))
	}
	return b, nil
}

// AddReview lets the booking's senior review a completed booking once. The
// review, the reviewed flag and the caregiver's rating commit together.
func (s *Service) AddReview(ctx context.Context, actor Actor, bookingID id.BookingID, rating int, comment string) (r *reviewmodels.Review, err error) {
	ctx, span := tracing.Start(ctx, tracer, "booking.AddReview")
	defer func() { tracing.End(span, err) }()

	now := s.clock(ctx)
	var b *models.Booking
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err = s.bookings.FindByID(ctx, bookingID)
		if err != nil {
			return translate(err, "Booking not found")
		}
		if role, ok := actor.role(b); !ok || role != id.ActorSenior {
			return dErrors.New(dErrors.CodeForbidden, "Not authorized to review this booking")
		}
		if err := b.MarkReviewed(now); err != nil {
			return err
		}
		r, err = reviewmodels.New(id.NewReviewID(), b.CaregiverID, b.SeniorID, b.ID, rating, comment, now)
		if err != nil {
			return err
		}
		if err := s.reviews.Record(ctx, r); err != nil {
			return err
		}
		return translate(s.bookings.Update(ctx, b), "Booking not found")
	})
	if err != nil {
		return nil, err
	}

	if caregiver, err := s.caregivers.FindByID(ctx, b.CaregiverID); err == nil {
		s.notifier.Notify(ctx, notification.ReviewReceived(caregiver.Email, b.ID.String(), r.Rating))
	}
	return r, nil
}

// RecordPayment is admin bookkeeping: pending to paid, paid to refunded.
func (s *Service) RecordPayment(ctx context.Context, bookingID id.BookingID, status string) (b *models.Booking, err error) {
	next, err := models.ParsePaymentStatus(status)
	if err != nil {
		return nil, err
	}
	now := s.clock(ctx)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		b, err = s.bookings.FindByID(ctx, bookingID)
		if err != nil {
			return translate(err, "Booking not found")
		}
		if err := b.RecordPayment(next, now); err != nil {
			return err
		}
		return translate(s.bookings.Update(ctx, b), "Booking not found")
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "booking payment recorded",
		"log_type", "audit",
		"event", "booking_payment_recorded",
		"actor", "admin",
		"request_id", requestcontext.RequestID(ctx),
		"booking_id", b.ID.String(),
		"payment_status", string(next),
	)
	return b, nil
}

// counterparties resolves the emails of everyone except the acting party.
// Lookup failures are logged and skipped.
func (s *Service) counterparties(ctx context.Context, b *models.Booking, actor id.ActorRole) []string {
	var out []string
	if actor != id.ActorCaregiver {
		if c, err := s.caregivers.FindByID(ctx, b.CaregiverID); err == nil {
			out = append(out, c.Email)
		} else {
			s.logger.WarnContext(ctx, "booking notification skipped", "booking_id", b.ID.String(), "error", err)
		}
	}
	if actor != id.ActorSenior {
		if sn, err := s.seniors.FindByID(ctx, b.SeniorID); err == nil {
			out = append(out, sn.Email)
		} else {
			s.logger.WarnContext(ctx, "booking notification skipped", "booking_id", b.ID.String(), "error", err)
		}
	}
	return out
}

func (s *Service) clock(ctx context.Context) time.Time {
	if _, ok := ctx.Value(requestcontext.ContextKeyRequestTime).(time.Time); ok {
		return requestcontext.Now(ctx)
	}
	return s.now().UTC()
}

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
		return dErrors.Wrap(err, dErrors.CodeConflict, "booking already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "booking store failure")
	}
}
