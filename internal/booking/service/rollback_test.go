package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carenest/internal/booking/bookingtest"
	"carenest/internal/booking/models"
	bookingstore "carenest/internal/booking/store"
	"carenest/internal/identity/identitytest"
	identity "carenest/internal/identity/models"
	caregiverstore "carenest/internal/identity/store/caregiver"
	seniorstore "carenest/internal/identity/store/senior"
	reviewservice "carenest/internal/review/service"
	reviewstore "carenest/internal/review/store"
	id "carenest/pkg/domain"
	txcontext "carenest/pkg/platform/tx"
)

var errStoreDown = errors.New("store down")

type flakyCaregivers struct {
	*caregiverstore.InMemory
	failUpdate bool
}

func (s *flakyCaregivers) Update(ctx context.Context, c *identity.Caregiver) error {
	if s.failUpdate {
		return errStoreDown
	}
	return s.InMemory.Update(ctx, c)
}

type flakyBookings struct {
	*bookingstore.InMemory
	failUpdate bool
}

func (s *flakyBookings) Update(ctx context.Context, b *models.Booking) error {
	if s.failUpdate {
		return errStoreDown
	}
	return s.InMemory.Update(ctx, b)
}

type rollbackFixture struct {
	ctx        context.Context
	bookings   *flakyBookings
	caregivers *flakyCaregivers
	reviews    *reviewstore.InMemory
	service    *Service
	caregiver  *identity.Caregiver
	senior     *identity.Senior
}

func newRollbackFixture(t *testing.T) *rollbackFixture {
	t.Helper()
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tx := txcontext.NewMemory()

	f := &rollbackFixture{
		ctx:        context.Background(),
		bookings:   &flakyBookings{InMemory: bookingstore.NewInMemory()},
		caregivers: &flakyCaregivers{InMemory: caregiverstore.NewInMemory()},
		reviews:    reviewstore.NewInMemory(),
	}
	seniors := seniorstore.NewInMemory()
	reviews := reviewservice.New(f.reviews, f.caregivers,
		reviewservice.WithTransactor(tx),
		reviewservice.WithLogger(logger),
		reviewservice.WithClock(clock),
	)
	f.service = New(f.bookings, f.caregivers, seniors, reviews,
		WithTransactor(tx),
		WithLogger(logger),
		WithClock(clock),
	)

	f.caregiver = identitytest.Caregiver(identitytest.Verified(now.Add(-24*time.Hour)), identitytest.WithRate(500))
	require.NoError(t, f.caregivers.Create(f.ctx, f.caregiver))
	f.senior = identitytest.Senior()
	require.NoError(t, seniors.Create(f.ctx, f.senior))
	return f
}

func TestCreateRollsBackBookingWhenCounterUpdateFails(t *testing.T) {
	f := newRollbackFixture(t)
	f.caregivers.failUpdate = true

	_, err := f.service.Create(f.ctx, f.senior.ID, bookingtest.Request(f.caregiver.ID))
	require.ErrorIs(t, err, errStoreDown)

	stored, err := f.bookings.ListBySenior(f.ctx, f.senior.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	c, err := f.caregivers.FindByID(f.ctx, f.caregiver.ID)
	require.NoError(t, err)
	assert.Zero(t, c.TotalBookings)
}

func TestAddReviewRollsBackReviewAndRating(t *testing.T) {
	f := newRollbackFixture(t)
	b, err := f.service.Create(f.ctx, f.senior.ID, bookingtest.Request(f.caregiver.ID))
	require.NoError(t, err)
	caregiverActor := Actor{AccountID: id.AccountID(f.caregiver.ID), AccountType: id.AccountCaregiver}
	for _, st := range []models.Status{models.StatusConfirmed, models.StatusInProgress, models.StatusCompleted} {
		_, err := f.service.UpdateStatus(f.ctx, caregiverActor, b.ID, StatusChange{Status: string(st)})
		require.NoError(t, err)
	}

	f.bookings.failUpdate = true
	seniorActor := Actor{AccountID: id.AccountID(f.senior.ID), AccountType: id.AccountFamily}
	_, err = f.service.AddReview(f.ctx, seniorActor, b.ID, 5, "Very kind and punctual")
	require.ErrorIs(t, err, errStoreDown)

	reviews, err := f.reviews.ListByCaregiver(f.ctx, f.caregiver.ID, false)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	c, err := f.caregivers.FindByID(f.ctx, f.caregiver.ID)
	require.NoError(t, err)
	assert.Zero(t, c.Rating)
	assert.Zero(t, c.ReviewCount)
	assert.Equal(t, 1, c.CompletedBookings)

	stored, err := f.bookings.FindByID(f.ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, stored.Reviewed)

	f.bookings.failUpdate = false
	_, err = f.service.AddReview(f.ctx, seniorActor, b.ID, 5, "Very kind and punctual")
	require.NoError(t, err)
}
