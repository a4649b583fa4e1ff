// Package store persists bookings in memory or Postgres.
package store

import (
	"context"
	"sort"
	"sync"

	"carenest/internal/booking/models"
	id "carenest/pkg/domain"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
)

// InMemory keeps bookings keyed by id. Every write re-derives the total amount.
type InMemory struct {
	mu   sync.RWMutex
	byID map[id.BookingID]*models.Booking
}

func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[id.BookingID]*models.Booking)}
}

func clone(b *models.Booking) *models.Booking {
	cp := *b
	if b.PaymentDate != nil {
		t := *b.PaymentDate
		cp.PaymentDate = &t
	}
	if b.Cancellation != nil {
		c := *b.Cancellation
		cp.Cancellation = &c
	}
	return &cp
}

func (s *InMemory) Create(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[b.ID]; exists {
		return sentinel.Duplicate("id")
	}
	b.Recompute()
	s.byID[b.ID] = clone(b)

	bookingID := b.ID
	txcontext.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.byID, bookingID)
	})
	return nil
}

func (s *InMemory) FindByID(_ context.Context, bookingID id.BookingID) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byID[bookingID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(b), nil
}

func (s *InMemory) Update(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.byID[b.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	b.Recompute()
	s.byID[b.ID] = clone(b)
	txcontext.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.byID[prev.ID] = prev
	})
	return nil
}

func (s *InMemory) ListByCaregiver(_ context.Context, caregiverID id.CaregiverID) ([]*models.Booking, error) {
	return s.list(func(b *models.Booking) bool { return b.CaregiverID == caregiverID }), nil
}

func (s *InMemory) ListBySenior(_ context.Context, seniorID id.SeniorID) ([]*models.Booking, error) {
	return s.list(func(b *models.Booking) bool { return b.SeniorID == seniorID }), nil
}

// list returns matches newest first.
func (s *InMemory) list(match func(*models.Booking) bool) []*models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Booking, 0)
	for _, b := range s.byID {
		if match(b) {
			out = append(out, clone(b))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
