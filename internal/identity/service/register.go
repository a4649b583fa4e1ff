package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"carenest/internal/identity/models"
	"carenest/internal/notification"
	"carenest/internal/platform/tracing"
	id "carenest/pkg/domain"
)

// RegisterCaregiver validates the registration, hashes the password and stores
// a pending caregiver. The caregiver and the admin inbox are notified.
func (s *Service) RegisterCaregiver(ctx context.Context, reg models.CaregiverRegistration, password string) (c *models.Caregiver, err error) {
	ctx, span := tracing.Start(ctx, tracer, "identity.RegisterCaregiver")
	defer func() { tracing.End(span, err) }()

	reg.Normalize()
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	c, err = models.NewCaregiver(id.NewCaregiverID(), reg, hash, s.clock(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.caregivers.Create(ctx, c); err != nil {
		return nil, translate(err, "caregiver not found")
	}
	span.SetAttributes(attribute.String("caregiver_id", c.ID.String()))

	s.metrics.registered(id.AccountCaregiver)
	s.logAudit(ctx, "caregiver_registered",
		"caregiver_id", c.ID.String(),
		"email", c.Email,
	)
	s.notifier.Notify(ctx, notification.CaregiverRegistered(c.Email, c.FullName))
	if s.adminEmail != "" {
		s.notifier.Notify(ctx, notification.AdminCaregiverPending(s.adminEmail, c.ID.String(), c.FullName, c.Email, c.Address.City))
	}
	return c, nil
}

// RegisterSenior stores a family account. Family accounts are usable immediately.
func (s *Service) RegisterSenior(ctx context.Context, reg models.SeniorRegistration, password string) (sn *models.Senior, err error) {
	ctx, span := tracing.Start(ctx, tracer, "identity.RegisterSenior")
	defer func() { tracing.End(span, err) }()

	reg.Normalize()
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	if err := models.ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	sn, err = models.NewSenior(id.NewSeniorID(), reg, hash, s.clock(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.seniors.Create(ctx, sn); err != nil {
		return nil, translate(err, "account not found")
	}

	s.metrics.registered(id.AccountFamily)
	s.logAudit(ctx, "senior_registered",
		"senior_id", sn.ID.String(),
		"email", sn.Email,
	)
	s.notifier.Notify(ctx, notification.SeniorRegistered(sn.Email, sn.GuardianName, sn.SeniorName))
	return sn, nil
}
