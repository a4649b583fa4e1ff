package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"carenest/internal/auth/token"
	"carenest/internal/identity/identitytest"
	"carenest/internal/identity/models"
	"carenest/internal/identity/service/mocks"
	"carenest/internal/notification"
	"carenest/internal/notification/notificationtest"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
	"carenest/pkg/platform/sentinel"
)

var fixedNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockCaregivers *mocks.MockCaregiverStore
	mockSeniors    *mocks.MockSeniorStore
	mockHasher     *mocks.MockPasswordHasher
	mockTokens     *mocks.MockTokenService
	mockRevoke     *mocks.MockRevocationList
	notes          *notificationtest.Recorder
	service        *Service
	ctx            context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCaregivers = mocks.NewMockCaregiverStore(s.ctrl)
	s.mockSeniors = mocks.NewMockSeniorStore(s.ctrl)
	s.mockHasher = mocks.NewMockPasswordHasher(s.ctrl)
	s.mockTokens = mocks.NewMockTokenService(s.ctrl)
	s.mockRevoke = mocks.NewMockRevocationList(s.ctrl)
	s.notes = &notificationtest.Recorder{}
	s.ctx = context.Background()
	s.service = New(s.mockCaregivers, s.mockSeniors, s.mockHasher, s.mockTokens, s.mockRevoke,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithNotifier(s.notes),
		WithAdminEmail("admin@carenest.test"),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) TestRegisterCaregiver() {
	s.Run("stores a pending caregiver and notifies", func() {
		s.notes.Reset()
		reg := identitytest.CaregiverRegistration()
		reg.Email = "  Asha@Example.COM "
		s.mockHasher.EXPECT().Hash("secret1").Return("hashed", nil)
		s.mockCaregivers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *models.Caregiver) error {
				s.Equal("asha@example.com", c.Email)
				s.Equal("hashed", c.PasswordHash)
				s.True(c.Verification.IsPending())
				return nil
			})

		c, err := s.service.RegisterCaregiver(s.ctx, reg, "secret1")
		s.Require().NoError(err)
		s.Equal(fixedNow, c.RegisteredAt)
		s.Equal([]notification.Kind{notification.KindCaregiverRegistered, notification.KindAdminCaregiverPending}, s.notes.Kinds())
		s.Equal("admin@carenest.test", s.notes.Events()[1].Recipient)
	})

	s.Run("short password never reaches the hasher", func() {
		_, err := s.service.RegisterCaregiver(s.ctx, identitytest.CaregiverRegistration(), "abc")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("invalid registration never reaches the hasher", func() {
		reg := identitytest.CaregiverRegistration()
		reg.AadhaarNumber = "12345"
		_, err := s.service.RegisterCaregiver(s.ctx, reg, "secret1")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("duplicate PAN is a conflict", func() {
		s.notes.Reset()
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		s.mockCaregivers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.Duplicate("pan_number"))

		_, err := s.service.RegisterCaregiver(s.ctx, identitytest.CaregiverRegistration(), "secret1")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
		s.Contains(err.Error(), "PAN")
		s.Empty(s.notes.Events())
	})
}

func (s *ServiceSuite) TestRegisterSenior() {
	s.Run("defaults preferred gender", func() {
		s.notes.Reset()
		reg := identitytest.SeniorRegistration()
		reg.PreferredGender = ""
		s.mockHasher.EXPECT().Hash("secret1").Return("hashed", nil)
		s.mockSeniors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		sn, err := s.service.RegisterSenior(s.ctx, reg, "secret1")
		s.Require().NoError(err)
		s.Equal(models.PreferNoPreference, sn.PreferredGender)
		s.Equal([]notification.Kind{notification.KindSeniorRegistered}, s.notes.Kinds())
	})

	s.Run("senior younger than 50 is rejected", func() {
		reg := identitytest.SeniorRegistration()
		reg.SeniorAge = 49
		_, err := s.service.RegisterSenior(s.ctx, reg, "secret1")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("duplicate email", func() {
		s.mockHasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
		s.mockSeniors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sentinel.Duplicate("email"))
		_, err := s.service.RegisterSenior(s.ctx, identitytest.SeniorRegistration(), "secret1")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *ServiceSuite) TestLogin() {
	caregiver := identitytest.Caregiver()

	s.Run("missing fields", func() {
		_, err := s.service.Login(s.ctx, LoginRequest{Email: "a@b.com", Password: "x"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown user type", func() {
		_, err := s.service.Login(s.ctx, LoginRequest{Email: "a@b.com", Password: "x", UserType: "admin"})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown email is unauthorized", func() {
		s.mockCaregivers.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").Return(nil, sentinel.ErrNotFound)
		_, err := s.service.Login(s.ctx, LoginRequest{Email: "Ghost@example.com", Password: "secret1", UserType: "caregiver"})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})

	s.Run("wrong password does not touch the store", func() {
		s.mockCaregivers.EXPECT().FindByEmail(gomock.Any(), caregiver.Email).Return(caregiver, nil)
		s.mockHasher.EXPECT().Matches(caregiver.PasswordHash, "wrong").Return(false)

		_, err := s.service.Login(s.ctx, LoginRequest{Email: caregiver.Email, Password: "wrong", UserType: "caregiver"})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.Nil(caregiver.LastLoginAt)
	})

	s.Run("store outage is internal", func() {
		s.mockSeniors.EXPECT().FindByEmail(gomock.Any(), "f@example.com").Return(nil, errors.New("db down"))
		_, err := s.service.Login(s.ctx, LoginRequest{Email: "f@example.com", Password: "secret1", UserType: "family"})
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})

	s.Run("success stamps last login and issues a token", func() {
		found := *caregiver
		s.mockCaregivers.EXPECT().FindByEmail(gomock.Any(), caregiver.Email).Return(&found, nil)
		s.mockHasher.EXPECT().Matches(caregiver.PasswordHash, "secret1").Return(true)
		s.mockCaregivers.EXPECT().RecordLogin(gomock.Any(), caregiver.ID, fixedNow).Return(nil)
		s.mockTokens.EXPECT().Issue(id.AccountID(caregiver.ID), id.AccountCaregiver).
			Return(token.Issued{Token: "tok", JTI: "jti-1", ExpiresAt: fixedNow.Add(time.Hour)}, nil)

		res, err := s.service.Login(s.ctx, LoginRequest{Email: caregiver.Email, Password: "secret1", UserType: "caregiver"})
		s.Require().NoError(err)
		s.Equal("tok", res.Token)
		s.Equal(caregiver.FullName, res.Account.FullName)
		s.Equal(models.VerificationPending, res.Account.VerificationStatus)
	})

	s.Run("deactivated account cannot log in", func() {
		inactive := identitytest.Caregiver(identitytest.Inactive())
		s.mockCaregivers.EXPECT().FindByEmail(gomock.Any(), inactive.Email).Return(inactive, nil)
		s.mockHasher.EXPECT().Matches(gomock.Any(), "secret1").Return(true)
		_, err := s.service.Login(s.ctx, LoginRequest{Email: inactive.Email, Password: "secret1", UserType: "caregiver"})
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func (s *ServiceSuite) TestLogout() {
	claims := &token.Claims{RegisteredClaims: jwt.RegisteredClaims{
		ID:        "jti-9",
		ExpiresAt: jwt.NewNumericDate(fixedNow.Add(2 * time.Hour)),
	}}

	s.Run("revokes for the remaining lifetime", func() {
		s.mockTokens.EXPECT().Parse("tok").Return(claims, nil)
		s.mockRevoke.EXPECT().RevokeToken(gomock.Any(), "jti-9", 2*time.Hour).Return(nil)
		s.NoError(s.service.Logout(s.ctx, "tok"))
	})

	s.Run("invalid token", func() {
		s.mockTokens.EXPECT().Parse("junk").Return(nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token"))
		s.True(dErrors.HasCode(s.service.Logout(s.ctx, "junk"), dErrors.CodeUnauthorized))
	})

	s.Run("revocation backend failure", func() {
		s.mockTokens.EXPECT().Parse("tok").Return(claims, nil)
		s.mockRevoke.EXPECT().RevokeToken(gomock.Any(), "jti-9", gomock.Any()).Return(errors.New("redis down"))
		s.True(dErrors.HasCode(s.service.Logout(s.ctx, "tok"), dErrors.CodeInternal))
	})
}
