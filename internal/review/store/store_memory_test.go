package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"carenest/internal/review/models"
	id "carenest/pkg/domain"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
)

type InMemoryReviewStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemory
	t0    time.Time
}

func TestInMemoryReviewStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryReviewStoreSuite))
}

func (s *InMemoryReviewStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemory()
	s.t0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
}

func (s *InMemoryReviewStoreSuite) add(caregiverID id.CaregiverID, rating int, at time.Time) *models.Review {
	r, err := models.New(id.NewReviewID(), caregiverID, id.NewSeniorID(), id.NewBookingID(), rating, "Kind and punctual", at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, r))
	return r
}

func (s *InMemoryReviewStoreSuite) TestOneReviewPerBooking() {
	first := s.add(id.NewCaregiverID(), 4, s.t0)
	dup, err := models.New(id.NewReviewID(), first.CaregiverID, first.SeniorID, first.BookingID, 5, "again", s.t0)
	s.Require().NoError(err)

	err = s.store.Create(s.ctx, dup)

	s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	field, _ := sentinel.DuplicateField(err)
	s.Equal("booking_id", field)
}

func (s *InMemoryReviewStoreSuite) TestListAndSummarizeVisibleOnly() {
	caregiverID := id.NewCaregiverID()
	older := s.add(caregiverID, 5, s.t0)
	newer := s.add(caregiverID, 4, s.t0.Add(time.Hour))
	hidden := s.add(caregiverID, 1, s.t0.Add(2*time.Hour))
	s.add(id.NewCaregiverID(), 2, s.t0)

	hidden.SetVisible(false, s.t0)
	s.Require().NoError(s.store.Update(s.ctx, hidden))

	visible, err := s.store.ListByCaregiver(s.ctx, caregiverID, true)
	s.Require().NoError(err)
	s.Require().Len(visible, 2)
	s.Equal(newer.ID, visible[0].ID)
	s.Equal(older.ID, visible[1].ID)

	all, err := s.store.ListByCaregiver(s.ctx, caregiverID, false)
	s.Require().NoError(err)
	s.Len(all, 3)

	sum, err := s.store.Summarize(s.ctx, caregiverID)
	s.Require().NoError(err)
	s.Equal(models.Summary{Average: 4.5, Count: 2}, sum)
}

func (s *InMemoryReviewStoreSuite) TestFindAndUpdate() {
	r := s.add(id.NewCaregiverID(), 3, s.t0)

	got, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Require().NoError(got.Respond("Thanks", s.t0))
	s.Require().NoError(s.store.Update(s.ctx, got))

	again, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("Thanks", again.Response)

	_, err = s.store.FindByID(s.ctx, id.NewReviewID())
	s.ErrorIs(err, sentinel.ErrNotFound)
	s.ErrorIs(s.store.Update(s.ctx, &models.Review{ID: id.NewReviewID()}), sentinel.ErrNotFound)
}

func (s *InMemoryReviewStoreSuite) TestFailedUnitOfWorkUndoesWrites() {
	kept := s.add(id.NewCaregiverID(), 4, s.t0)
	fresh, err := models.New(id.NewReviewID(), kept.CaregiverID, id.NewSeniorID(), id.NewBookingID(), 2, "Arrived late twice", s.t0)
	s.Require().NoError(err)

	boom := errors.New("boom")
	err = txcontext.NewMemory().RunInTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.store.Create(ctx, fresh))
		hidden := *kept
		hidden.IsVisible = false
		s.Require().NoError(s.store.Update(ctx, &hidden))
		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.store.FindByID(s.ctx, fresh.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	restored, err := s.store.FindByID(s.ctx, kept.ID)
	s.Require().NoError(err)
	s.True(restored.IsVisible)

	// the booking slot is free again
	s.NoError(s.store.Create(s.ctx, fresh))
}
