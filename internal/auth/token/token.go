// Package token issues and verifies the bearer tokens handed out at login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	authmw "carenest/pkg/platform/middleware/auth"
)

// Claims represents the JWT claims for access tokens.
type Claims struct {
	AccountID   string `json:"account_id"`
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}

// Issued is a freshly signed token with its id and expiry.
type Issued struct {
	Token     string
	JTI       string
	ExpiresAt time.Time
}

// Service handles token creation and validation.
type Service struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(signingKey, issuer string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL is the lifetime of issued tokens.
func (s *Service) TTL() time.Duration { return s.ttl }

// Issue signs an HS256 token for the account.
func (s *Service) Issue(accountID id.AccountID, accountType id.AccountType) (Issued, error) {
	now := s.now()
	jti := uuid.NewString()
	expiresAt := now.Add(s.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AccountID:   accountID.String(),
		AccountType: string(accountType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			ID:        jti,
		},
	})
	signed, err := tok.SignedString(s.signingKey)
	if err != nil {
		return Issued{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return Issued{Token: signed, JTI: jti, ExpiresAt: expiresAt}, nil
}

// Parse verifies signature, issuer and expiry and returns the raw claims.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}

// ValidateToken adapts Parse to the auth middleware's claim shape.
func (s *Service) ValidateToken(tokenString string) (*authmw.Claims, error) {
	claims, err := s.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	accountID, err := id.ParseAccountID(claims.AccountID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token subject")
	}
	accountType, err := id.ParseAccountType(claims.AccountType)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token account type")
	}
	return &authmw.Claims{
		AccountID:   accountID,
		AccountType: accountType,
		JTI:         claims.ID,
	}, nil
}
