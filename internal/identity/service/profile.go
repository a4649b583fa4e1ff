package service

import (
	"context"

	"carenest/internal/identity/models"
	"carenest/internal/platform/tracing"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

// Account is the authenticated actor's own record. Exactly one side is set.
type Account struct {
	Type      id.AccountType
	Caregiver *models.Caregiver
	Senior    *models.Senior
}

// CaregiverStats summarises a caregiver's activity for their dashboard.
type CaregiverStats struct {
	TotalBookings      int
	CompletedBookings  int
	TotalHoursWorked   float64
	Rating             float64
	ReviewCount        int
	Earnings           float64
	VerificationStatus models.VerificationStatus
}

func (s *Service) Me(ctx context.Context, accountID id.AccountID, accountType id.AccountType) (*Account, error) {
	switch accountType {
	case id.AccountCaregiver:
		c, err := s.caregivers.FindByID(ctx, accountID.CaregiverID())
		if err != nil {
			return nil, translate(err, "User not found")
		}
		return &Account{Type: accountType, Caregiver: c}, nil
	case id.AccountFamily:
		sn, err := s.seniors.FindByID(ctx, accountID.SeniorID())
		if err != nil {
			return nil, translate(err, "User not found")
		}
		return &Account{Type: accountType, Senior: sn}, nil
	default:
		return nil, dErrors.New(dErrors.CodeUnauthorized, "unknown account type")
	}
}

func (s *Service) UpdateCaregiverProfile(ctx context.Context, caregiverID id.CaregiverID, update models.CaregiverProfileUpdate) (c *models.Caregiver, err error) {
	ctx, span := tracing.Start(ctx, tracer, "identity.UpdateCaregiverProfile")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		found, err := s.caregivers.FindByID(ctx, caregiverID)
		if err != nil {
			return translate(err, "caregiver not found")
		}
		if err := found.ApplyProfileUpdate(update, s.clock(ctx)); err != nil {
			return err
		}
		if err := s.caregivers.Update(ctx, found); err != nil {
			return translate(err, "caregiver not found")
		}
		c = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeactivateCaregiver removes the caregiver from the directory and blocks new bookings.
func (s *Service) DeactivateCaregiver(ctx context.Context, caregiverID id.CaregiverID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.caregivers.FindByID(ctx, caregiverID)
		if err != nil {
			return translate(err, "caregiver not found")
		}
		if err := c.Deactivate(s.clock(ctx)); err != nil {
			return err
		}
		return translate(s.caregivers.Update(ctx, c), "caregiver not found")
	})
	if err != nil {
		return err
	}
	s.logAudit(ctx, "caregiver_deactivated", "caregiver_id", caregiverID.String())
	return nil
}

func (s *Service) CaregiverStats(ctx context.Context, caregiverID id.CaregiverID) (*CaregiverStats, error) {
	c, err := s.caregivers.FindByID(ctx, caregiverID)
	if err != nil {
		return nil, translate(err, "caregiver not found")
	}
	return &CaregiverStats{
		TotalBookings:      c.TotalBookings,
		CompletedBookings:  c.CompletedBookings,
		TotalHoursWorked:   c.TotalHoursWorked,
		Rating:             c.Rating,
		ReviewCount:        c.ReviewCount,
		Earnings:           c.Earnings(),
		VerificationStatus: c.Verification.Status(),
	}, nil
}

func (s *Service) GetSeniorProfile(ctx context.Context, seniorID id.SeniorID) (*models.Senior, error) {
	sn, err := s.seniors.FindByID(ctx, seniorID)
	if err != nil {
		return nil, translate(err, "Senior not found")
	}
	return sn, nil
}

func (s *Service) UpdateSeniorProfile(ctx context.Context, seniorID id.SeniorID, update models.SeniorProfileUpdate) (sn *models.Senior, err error) {
	ctx, span := tracing.Start(ctx, tracer, "identity.UpdateSeniorProfile")
	defer func() { tracing.End(span, err) }()

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		found, err := s.seniors.FindByID(ctx, seniorID)
		if err != nil {
			return translate(err, "Senior not found")
		}
		if err := found.ApplyProfileUpdate(update, s.clock(ctx)); err != nil {
			return err
		}
		if err := s.seniors.Update(ctx, found); err != nil {
			return translate(err, "Senior not found")
		}
		sn = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sn, nil
}
