package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"carenest/internal/auth/device"
	"carenest/internal/identity/models"
	"carenest/internal/platform/tracing"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
	"carenest/pkg/requestcontext"
)

const invalidCredentials = "Invalid email or password"

type LoginRequest struct {
	Email    string
	Password string
	UserType string
}

// AccountSummary is the identity echoed back after login.
type AccountSummary struct {
	ID                 id.AccountID
	Type               id.AccountType
	Email              string
	FullName           string
	Phone              string
	VerificationStatus models.VerificationStatus
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Account   AccountSummary
}

// Login checks credentials for the requested account kind and issues a token.
// Failed attempts never mutate the stored account.
func (s *Service) Login(ctx context.Context, req LoginRequest) (result *LoginResult, err error) {
	ctx, span := tracing.Start(ctx, tracer, "identity.Login")
	defer func() { tracing.End(span, err) }()

	email := models.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" || strings.TrimSpace(req.UserType) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "Please provide email, password, and user type")
	}
	accountType, err := id.ParseAccountType(req.UserType)
	if err != nil {
		return nil, err
	}

	var summary AccountSummary
	switch accountType {
	case id.AccountCaregiver:
		summary, err = s.loginCaregiver(ctx, email, req.Password)
	default:
		summary, err = s.loginSenior(ctx, email, req.Password)
	}
	if err != nil {
		s.metrics.login(accountType, "failure")
		s.logger.WarnContext(ctx, "login failed",
			"account_type", accountType,
			"request_id", requestcontext.RequestID(ctx),
			"client_ip", requestcontext.ClientIP(ctx),
		)
		return nil, err
	}

	issued, err := s.tokens.Issue(summary.ID, accountType)
	if err != nil {
		return nil, err
	}
	s.metrics.login(accountType, "success")
	s.logAudit(ctx, "login_succeeded",
		"account_id", summary.ID.String(),
		"account_type", accountType,
		"device", device.ParseUserAgent(requestcontext.UserAgent(ctx)),
		"client_ip", requestcontext.ClientIP(ctx),
	)
	return &LoginResult{Token: issued.Token, ExpiresAt: issued.ExpiresAt, Account: summary}, nil
}

func (s *Service) loginCaregiver(ctx context.Context, email, password string) (AccountSummary, error) {
	c, err := s.caregivers.FindByEmail(ctx, email)
	if err != nil {
		return AccountSummary{}, credentialLookupError(err)
	}
	if !s.hasher.Matches(c.PasswordHash, password) {
		return AccountSummary{}, dErrors.New(dErrors.CodeUnauthorized, invalidCredentials)
	}
	if !c.IsActive {
		return AccountSummary{}, dErrors.New(dErrors.CodeUnauthorized, "account is deactivated")
	}
	now := s.clock(ctx)
	if err := s.caregivers.RecordLogin(ctx, c.ID, now); err != nil {
		return AccountSummary{}, translate(err, "caregiver not found")
	}
	c.RecordLogin(now)
	return AccountSummary{
		ID:                 id.AccountID(c.ID),
		Type:               id.AccountCaregiver,
		Email:              c.Email,
		FullName:           c.FullName,
		Phone:              c.Phone,
		VerificationStatus: c.Verification.Status(),
	}, nil
}

func (s *Service) loginSenior(ctx context.Context, email, password string) (AccountSummary, error) {
	sn, err := s.seniors.FindByEmail(ctx, email)
	if err != nil {
		return AccountSummary{}, credentialLookupError(err)
	}
	if !s.hasher.Matches(sn.PasswordHash, password) {
		return AccountSummary{}, dErrors.New(dErrors.CodeUnauthorized, invalidCredentials)
	}
	if !sn.IsActive {
		return AccountSummary{}, dErrors.New(dErrors.CodeUnauthorized, "account is deactivated")
	}
	now := s.clock(ctx)
	if err := s.seniors.RecordLogin(ctx, sn.ID, now); err != nil {
		return AccountSummary{}, translate(err, "account not found")
	}
	sn.RecordLogin(now)
	return AccountSummary{
		ID:       id.AccountID(sn.ID),
		Type:     id.AccountFamily,
		Email:    sn.Email,
		FullName: sn.GuardianName,
		Phone:    sn.Phone,
	}, nil
}

// credentialLookupError hides whether the email exists.
func credentialLookupError(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeUnauthorized, invalidCredentials)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up account")
}

// Logout revokes the presented token until it would have expired.
func (s *Service) Logout(ctx context.Context, tokenString string) (err error) {
	ctx, span := tracing.Start(ctx, tracer, "identity.Logout")
	defer func() { tracing.End(span, err) }()

	claims, err := s.tokens.Parse(tokenString)
	if err != nil {
		return err
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	remaining := claims.ExpiresAt.Sub(s.clock(ctx))
	if remaining <= 0 {
		return nil
	}
	if err := s.revocations.RevokeToken(ctx, claims.ID, remaining); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to revoke token")
	}
	s.logAudit(ctx, "logout",
		"account_id", claims.AccountID,
		"jti", claims.ID,
	)
	return nil
}
