package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carenest/internal/auth/hasher"
	"carenest/internal/auth/revocation"
	"carenest/internal/auth/token"
	"carenest/internal/identity/identitytest"
	"carenest/internal/identity/models"
	caregiverStore "carenest/internal/identity/store/caregiver"
	seniorStore "carenest/internal/identity/store/senior"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

type memoryStack struct {
	svc        *Service
	caregivers *caregiverStore.InMemory
	seniors    *seniorStore.InMemory
	trl        *revocation.MemoryTRL
}

func newMemoryStack(t *testing.T) memoryStack {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	st := memoryStack{
		caregivers: caregiverStore.NewInMemory(),
		seniors:    seniorStore.NewInMemory(),
		trl:        revocation.NewMemoryTRL(revocation.WithClock(clock)),
	}
	st.svc = New(st.caregivers, st.seniors, hasher.New(4),
		token.NewService("test-key", "carenest", time.Hour, token.WithClock(clock)), st.trl,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(clock),
	)
	return st
}

func TestLoginRoundTripWithMemoryStores(t *testing.T) {
	ctx := context.Background()
	st := newMemoryStack(t)

	reg := identitytest.SeniorRegistration()
	sn, err := st.svc.RegisterSenior(ctx, reg, "family-pass")
	require.NoError(t, err)

	t.Run("wrong password leaves the account untouched", func(t *testing.T) {
		before, err := st.seniors.FindByID(ctx, sn.ID)
		require.NoError(t, err)

		_, err = st.svc.Login(ctx, LoginRequest{Email: reg.Email, Password: "not-it", UserType: "family"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

		after, err := st.seniors.FindByID(ctx, sn.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("login then logout revokes the token", func(t *testing.T) {
		res, err := st.svc.Login(ctx, LoginRequest{Email: reg.Email, Password: "family-pass", UserType: "senior"})
		require.NoError(t, err)
		assert.Equal(t, id.AccountFamily, res.Account.Type)

		stored, err := st.seniors.FindByID(ctx, sn.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.LastLoginAt)

		require.NoError(t, st.svc.Logout(ctx, res.Token))

		claims, err := token.NewService("test-key", "carenest", time.Hour, token.WithClock(func() time.Time { return fixedNow })).Parse(res.Token)
		require.NoError(t, err)
		revoked, err := st.trl.IsTokenRevoked(ctx, claims.ID)
		require.NoError(t, err)
		assert.True(t, revoked)
	})
}

func TestCaregiverSelfService(t *testing.T) {
	ctx := context.Background()
	st := newMemoryStack(t)
	c, err := st.svc.RegisterCaregiver(ctx, identitytest.CaregiverRegistration(), "care-pass")
	require.NoError(t, err)

	t.Run("me returns own record", func(t *testing.T) {
		acct, err := st.svc.Me(ctx, id.AccountID(c.ID), id.AccountCaregiver)
		require.NoError(t, err)
		require.NotNil(t, acct.Caregiver)
		assert.Nil(t, acct.Senior)
		assert.Equal(t, c.Email, acct.Caregiver.Email)
	})

	t.Run("me for a missing account", func(t *testing.T) {
		_, err := st.svc.Me(ctx, id.AccountID(id.NewSeniorID()), id.AccountFamily)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("profile update is all or nothing", func(t *testing.T) {
		rate := 650.0
		badPhone := "12"
		_, err := st.svc.UpdateCaregiverProfile(ctx, c.ID, models.CaregiverProfileUpdate{HourlyRate: &rate, Phone: &badPhone})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

		stored, _ := st.caregivers.FindByID(ctx, c.ID)
		assert.InDelta(t, c.HourlyRate, stored.HourlyRate, 1e-9)

		updated, err := st.svc.UpdateCaregiverProfile(ctx, c.ID, models.CaregiverProfileUpdate{HourlyRate: &rate})
		require.NoError(t, err)
		assert.InDelta(t, 650, updated.HourlyRate, 1e-9)
	})

	t.Run("stats report earnings at the current rate", func(t *testing.T) {
		stored, _ := st.caregivers.FindByID(ctx, c.ID)
		stored.RecordCompletion(3, fixedNow)
		require.NoError(t, st.caregivers.Update(ctx, stored))

		stats, err := st.svc.CaregiverStats(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.CompletedBookings)
		assert.InDelta(t, 1950, stats.Earnings, 1e-9)
	})

	t.Run("deactivate twice", func(t *testing.T) {
		require.NoError(t, st.svc.DeactivateCaregiver(ctx, c.ID))
		err := st.svc.DeactivateCaregiver(ctx, c.ID)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidState))

		_, err = st.svc.Login(ctx, LoginRequest{Email: c.Email, Password: "care-pass", UserType: "caregiver"})
		assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	})
}

func TestSeniorProfile(t *testing.T) {
	ctx := context.Background()
	st := newMemoryStack(t)
	sn, err := st.svc.RegisterSenior(ctx, identitytest.SeniorRegistration(), "family-pass")
	require.NoError(t, err)

	budget := 42000.0
	care := models.CareLiveIn
	updated, err := st.svc.UpdateSeniorProfile(ctx, sn.ID, models.SeniorProfileUpdate{Budget: &budget, CareType: &care})
	require.NoError(t, err)
	assert.Equal(t, models.CareLiveIn, updated.CareType)

	got, err := st.svc.GetSeniorProfile(ctx, sn.ID)
	require.NoError(t, err)
	assert.InDelta(t, 42000, got.Budget, 1e-9)

	_, err = st.svc.GetSeniorProfile(ctx, id.NewSeniorID())
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
