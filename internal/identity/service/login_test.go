package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"carenest/internal/auth/token"
	"carenest/internal/identity/identitytest"
	"carenest/internal/identity/models"
	"carenest/internal/identity/service/mocks"
	caregiverstore "carenest/internal/identity/store/caregiver"
	seniorstore "carenest/internal/identity/store/senior"
)

// interleavedCaregivers runs a concurrent write right after login has read the row.
type interleavedCaregivers struct {
	*caregiverstore.InMemory
	between func(ctx context.Context, c *models.Caregiver)
}

func (s *interleavedCaregivers) FindByEmail(ctx context.Context, email string) (*models.Caregiver, error) {
	c, err := s.InMemory.FindByEmail(ctx, email)
	if err == nil && s.between != nil {
		s.between(ctx, c)
	}
	return c, err
}

type interleavedSeniors struct {
	*seniorstore.InMemory
	between func(ctx context.Context, sn *models.Senior)
}

func (s *interleavedSeniors) FindByEmail(ctx context.Context, email string) (*models.Senior, error) {
	sn, err := s.InMemory.FindByEmail(ctx, email)
	if err == nil && s.between != nil {
		s.between(ctx, sn)
	}
	return sn, err
}

func newLoginService(t *testing.T, caregivers CaregiverStore, seniors SeniorStore) *Service {
	t.Helper()
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockPasswordHasher(ctrl)
	hasher.EXPECT().Matches(gomock.Any(), "secret1").Return(true)
	tokens := mocks.NewMockTokenService(ctrl)
	tokens.EXPECT().Issue(gomock.Any(), gomock.Any()).
		Return(token.Issued{Token: "tok", JTI: "jti-1", ExpiresAt: fixedNow.Add(time.Hour)}, nil)
	return New(caregivers, seniors, hasher, tokens, mocks.NewMockRevocationList(ctrl),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func TestLoginKeepsConcurrentCaregiverWrites(t *testing.T) {
	ctx := context.Background()
	store := &interleavedCaregivers{InMemory: caregiverstore.NewInMemory()}
	caregiver := identitytest.Caregiver()
	require.NoError(t, store.Create(ctx, caregiver))

	approvedAt := fixedNow.Add(-time.Minute)
	store.between = func(ctx context.Context, stale *models.Caregiver) {
		fresh, err := store.FindByID(ctx, stale.ID)
		require.NoError(t, err)
		fresh.ApplyApproval(approvedAt)
		fresh.ApplyRating(4, 1, approvedAt)
		require.NoError(t, store.Update(ctx, fresh))
	}

	svc := newLoginService(t, store, seniorstore.NewInMemory())
	_, err := svc.Login(ctx, LoginRequest{Email: caregiver.Email, Password: "secret1", UserType: "caregiver"})
	require.NoError(t, err)

	got, err := store.FindByID(ctx, caregiver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VerificationVerified, got.Verification.Status())
	assert.Equal(t, 4.0, got.Rating)
	assert.Equal(t, 1, got.ReviewCount)
	require.NotNil(t, got.LastLoginAt)
	assert.Equal(t, fixedNow, *got.LastLoginAt)
}

func TestLoginKeepsConcurrentSeniorWrites(t *testing.T) {
	ctx := context.Background()
	store := &interleavedSeniors{InMemory: seniorstore.NewInMemory()}
	senior := identitytest.Senior()
	require.NoError(t, store.Create(ctx, senior))

	store.between = func(ctx context.Context, stale *models.Senior) {
		fresh, err := store.FindByID(ctx, stale.ID)
		require.NoError(t, err)
		fresh.Phone = "9123456780"
		require.NoError(t, store.Update(ctx, fresh))
	}

	svc := newLoginService(t, caregiverstore.NewInMemory(), store)
	_, err := svc.Login(ctx, LoginRequest{Email: senior.Email, Password: "secret1", UserType: "family"})
	require.NoError(t, err)

	got, err := store.FindByID(ctx, senior.ID)
	require.NoError(t, err)
	assert.Equal(t, "9123456780", got.Phone)
	require.NotNil(t, got.LastLoginAt)
	assert.Equal(t, fixedNow, *got.LastLoginAt)
}
