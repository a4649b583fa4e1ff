// Package store persists reviews with one review per booking.
package store

import (
	"context"
	"sort"
	"sync"

	"carenest/internal/review/models"
	id "carenest/pkg/domain"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
)

type InMemory struct {
	mu        sync.RWMutex
	byID      map[id.ReviewID]*models.Review
	byBooking map[id.BookingID]id.ReviewID
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:      make(map[id.ReviewID]*models.Review),
		byBooking: make(map[id.BookingID]id.ReviewID),
	}
}

func clone(r *models.Review) *models.Review {
	cp := *r
	if r.ResponseDate != nil {
		t := *r.ResponseDate
		cp.ResponseDate = &t
	}
	return &cp
}

func (s *InMemory) Create(ctx context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.byBooking[r.BookingID]; taken {
		return sentinel.Duplicate("booking_id")
	}
	s.byID[r.ID] = clone(r)
	s.byBooking[r.BookingID] = r.ID

	reviewID, bookingID := r.ID, r.BookingID
	txcontext.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.byID, reviewID)
		delete(s.byBooking, bookingID)
	})
	return nil
}

func (s *InMemory) FindByID(_ context.Context, reviewID id.ReviewID) (*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[reviewID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(r), nil
}

func (s *InMemory) Update(ctx context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.byID[r.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	s.byID[r.ID] = clone(r)
	txcontext.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.byID[prev.ID] = prev
	})
	return nil
}

// ListByCaregiver returns the caregiver's reviews newest first.
func (s *InMemory) ListByCaregiver(_ context.Context, caregiverID id.CaregiverID, visibleOnly bool) ([]*models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Review, 0)
	for _, r := range s.byID {
		if r.CaregiverID != caregiverID || (visibleOnly && !r.IsVisible) {
			continue
		}
		out = append(out, clone(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *InMemory) Summarize(ctx context.Context, caregiverID id.CaregiverID) (models.Summary, error) {
	reviews, err := s.ListByCaregiver(ctx, caregiverID, true)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(reviews), nil
}
