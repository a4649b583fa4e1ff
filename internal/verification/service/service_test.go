package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"carenest/internal/identity/identitytest"
	"carenest/internal/identity/models"
	caregiverstore "carenest/internal/identity/store/caregiver"
	"carenest/internal/notification"
	"carenest/internal/notification/notificationtest"
	"carenest/internal/verification/service/mocks"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

type VerificationSuite struct {
	suite.Suite
	ctx      context.Context
	store    *caregiverstore.InMemory
	recorder *notificationtest.Recorder
	service  *Service
	now      time.Time
}

func TestVerificationSuite(t *testing.T) {
	suite.Run(t, new(VerificationSuite))
}

func (s *VerificationSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = caregiverstore.NewInMemory()
	s.recorder = &notificationtest.Recorder{}
	s.now = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	s.service = New(s.store,
		WithNotifier(s.recorder),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return s.now }),
	)
}

func (s *VerificationSuite) seed(opts ...identitytest.CaregiverOption) *models.Caregiver {
	c := identitytest.Caregiver(opts...)
	s.Require().NoError(s.store.Create(s.ctx, c))
	return c
}

func (s *VerificationSuite) TestListPendingNewestFirst() {
	older := s.seed(identitytest.RegisteredAt(s.now.Add(-48 * time.Hour)))
	newer := s.seed(identitytest.RegisteredAt(s.now.Add(-time.Hour)))
	s.seed(identitytest.Verified(s.now))
	s.seed(identitytest.Rejected("blurry scan"))

	pending, err := s.service.ListPending(s.ctx)

	s.Require().NoError(err)
	s.Require().Len(pending, 2)
	s.Equal(newer.ID, pending[0].ID)
	s.Equal(older.ID, pending[1].ID)
	s.Empty(s.recorder.Events())
}

func (s *VerificationSuite) TestApprove() {
	s.Run("pending caregiver becomes verified with both documents", func() {
		c := s.seed()

		got, err := s.service.Approve(s.ctx, c.ID)

		s.Require().NoError(err)
		s.True(got.IsVerified())
		at, ok := got.Verification.VerifiedAt()
		s.True(ok)
		s.Equal(s.now, at)

		stored, err := s.store.FindByID(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.VerificationVerified, stored.Verification.Status())
		s.True(stored.Documents.AadhaarCard.Verified)
		s.True(stored.Documents.PanCard.Verified)

		events := s.recorder.Events()
		s.Require().Len(events, 1)
		s.Equal(notification.KindCaregiverApproved, events[0].Kind)
		s.Equal(c.Email, events[0].Recipient)
	})

	s.Run("re-approval re-stamps the verification time", func() {
		c := s.seed(identitytest.Verified(s.now.Add(-24 * time.Hour)))

		got, err := s.service.Approve(s.ctx, c.ID)

		s.Require().NoError(err)
		at, _ := got.Verification.VerifiedAt()
		s.Equal(s.now, at)
	})

	s.Run("rejected caregiver cannot be approved", func() {
		c := s.seed(identitytest.Rejected("mismatch"))
		s.recorder.Reset()

		_, err := s.service.Approve(s.ctx, c.ID)

		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		stored, _ := s.store.FindByID(s.ctx, c.ID)
		s.Equal(models.VerificationRejected, stored.Verification.Status())
		s.Empty(s.recorder.Events())
	})

	s.Run("unknown caregiver", func() {
		_, err := s.service.Approve(s.ctx, id.NewCaregiverID())
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *VerificationSuite) TestReject() {
	s.Run("records the default reason when none is given", func() {
		c := s.seed()
		s.recorder.Reset()

		got, err := s.service.Reject(s.ctx, c.ID, "  ")

		s.Require().NoError(err)
		s.Equal(models.VerificationRejected, got.Verification.Status())
		s.Equal("Documents verification failed", got.Verification.RejectionReason())
		s.False(got.IsVerified())

		events := s.recorder.Events()
		s.Require().Len(events, 1)
		s.Equal(notification.KindCaregiverRejected, events[0].Kind)
		s.Equal("Documents verification failed", events[0].Data["reason"])
	})

	s.Run("keeps an explicit reason", func() {
		c := s.seed()

		got, err := s.service.Reject(s.ctx, c.ID, "PAN card unreadable")

		s.Require().NoError(err)
		s.Equal("PAN card unreadable", got.Verification.RejectionReason())
	})

	s.Run("only pending caregivers can be rejected", func() {
		c := s.seed(identitytest.Verified(s.now))

		_, err := s.service.Reject(s.ctx, c.ID, "late")

		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("unknown caregiver", func() {
		_, err := s.service.Reject(s.ctx, id.NewCaregiverID(), "")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *VerificationSuite) TestGetDetailsIncludesDocuments() {
	c := s.seed(identitytest.With(func(c *models.Caregiver) {
		c.Documents.AadhaarCard.Ref = "uploads/aadhaar.pdf"
	}))

	got, err := s.service.GetDetails(s.ctx, c.ID)

	s.Require().NoError(err)
	s.Equal("uploads/aadhaar.pdf", got.Documents.AadhaarCard.Ref)
	s.Equal(c.AadhaarNumber, got.AadhaarNumber)

	_, err = s.service.GetDetails(s.ctx, id.NewCaregiverID())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestApproveStoreFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCaregiverStore(ctrl)
	recorder := &notificationtest.Recorder{}
	c := identitytest.Caregiver()

	store.EXPECT().FindByID(gomock.Any(), c.ID).Return(c, nil)
	store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	svc := New(store, WithNotifier(recorder), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	_, err := svc.Approve(context.Background(), c.ID)

	if !dErrors.HasCode(err, dErrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if len(recorder.Events()) != 0 {
		t.Fatalf("expected no notification on failed approval")
	}
}
