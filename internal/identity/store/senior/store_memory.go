package senior

import (
	"context"
	"sync"
	"time"

	"carenest/internal/identity/models"
	id "carenest/pkg/domain"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
)

// InMemory keeps family accounts keyed by id with a unique email index.
type InMemory struct {
	mu      sync.RWMutex
	byID    map[id.SeniorID]*models.Senior
	byEmail map[string]id.SeniorID
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:    make(map[id.SeniorID]*models.Senior),
		byEmail: make(map[string]id.SeniorID),
	}
}

func clone(s *models.Senior) *models.Senior {
	cp := *s
	if s.LastLoginAt != nil {
		t := *s.LastLoginAt
		cp.LastLoginAt = &t
	}
	return &cp
}

func (m *InMemory) Create(ctx context.Context, s *models.Senior) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byEmail[s.Email]; ok {
		return sentinel.Duplicate("email")
	}
	m.byID[s.ID] = clone(s)
	m.byEmail[s.Email] = s.ID

	sid, email := s.ID, s.Email
	txcontext.OnRollback(ctx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.byID, sid)
		delete(m.byEmail, email)
	})
	return nil
}

func (m *InMemory) FindByID(_ context.Context, seniorID id.SeniorID) (*models.Senior, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.byID[seniorID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(s), nil
}

func (m *InMemory) FindByEmail(_ context.Context, email string) (*models.Senior, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sid, ok := m.byEmail[email]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(m.byID[sid]), nil
}

func (m *InMemory) Update(ctx context.Context, s *models.Senior) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.byID[s.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	m.byID[s.ID] = clone(s)
	txcontext.OnRollback(ctx, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.byID[prev.ID] = prev
	})
	return nil
}

func (m *InMemory) RecordLogin(_ context.Context, seniorID id.SeniorID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[seniorID]
	if !ok {
		return sentinel.ErrNotFound
	}
	s.RecordLogin(at)
	return nil
}
