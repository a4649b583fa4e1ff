package caregiver

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	dirmodels "carenest/internal/directory/models"
	"carenest/internal/identity/models"
	id "carenest/pkg/domain"
	"carenest/pkg/platform/sentinel"
	txcontext "carenest/pkg/platform/tx"
)

// InMemory keeps caregivers in maps with unique indexes on email, Aadhaar and PAN.
// Returned records are copies, so callers persist changes through Update.
type InMemory struct {
	mu        sync.RWMutex
	byID      map[id.CaregiverID]*models.Caregiver
	byEmail   map[string]id.CaregiverID
	byAadhaar map[string]id.CaregiverID
	byPAN     map[string]id.CaregiverID
}

func NewInMemory() *InMemory {
	return &InMemory{
		byID:      make(map[id.CaregiverID]*models.Caregiver),
		byEmail:   make(map[string]id.CaregiverID),
		byAadhaar: make(map[string]id.CaregiverID),
		byPAN:     make(map[string]id.CaregiverID),
	}
}

func clone(c *models.Caregiver) *models.Caregiver {
	cp := *c
	cp.Specializations = slices.Clone(c.Specializations)
	cp.Languages = slices.Clone(c.Languages)
	cp.Certifications = slices.Clone(c.Certifications)
	if c.LastLoginAt != nil {
		t := *c.LastLoginAt
		cp.LastLoginAt = &t
	}
	return &cp
}

func (s *InMemory) Create(ctx context.Context, c *models.Caregiver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[c.Email]; ok {
		return sentinel.Duplicate("email")
	}
	if _, ok := s.byAadhaar[c.AadhaarNumber]; ok {
		return sentinel.Duplicate("aadhaar_number")
	}
	if _, ok := s.byPAN[c.PANNumber]; ok {
		return sentinel.Duplicate("pan_number")
	}
	s.byID[c.ID] = clone(c)
	s.byEmail[c.Email] = c.ID
	s.byAadhaar[c.AadhaarNumber] = c.ID
	s.byPAN[c.PANNumber] = c.ID

	cid, email, aadhaar, pan := c.ID, c.Email, c.AadhaarNumber, c.PANNumber
	txcontext.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.byID, cid)
		delete(s.byEmail, email)
		delete(s.byAadhaar, aadhaar)
		delete(s.byPAN, pan)
	})
	return nil
}

func (s *InMemory) FindByID(_ context.Context, caregiverID id.CaregiverID) (*models.Caregiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[caregiverID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(c), nil
}

func (s *InMemory) FindByEmail(_ context.Context, email string) (*models.Caregiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cid, ok := s.byEmail[email]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return clone(s.byID[cid]), nil
}

// Update replaces the stored record. Identity numbers and email are immutable.
func (s *InMemory) Update(ctx context.Context, c *models.Caregiver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.byID[c.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	s.byID[c.ID] = clone(c)
	txcontext.OnRollback(ctx, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.byID[prev.ID] = prev
	})
	return nil
}

// RecordLogin stamps the last login without rewriting the rest of the record.
func (s *InMemory) RecordLogin(_ context.Context, caregiverID id.CaregiverID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[caregiverID]
	if !ok {
		return sentinel.ErrNotFound
	}
	c.RecordLogin(at)
	return nil
}

// ListPending returns caregivers awaiting verification, newest registration first.
func (s *InMemory) ListPending(_ context.Context) ([]*models.Caregiver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Caregiver, 0)
	for _, c := range s.byID {
		if c.Verification.IsPending() {
			out = append(out, clone(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RegisteredAt.After(out[j].RegisteredAt) })
	return out, nil
}

func (s *InMemory) ListIDs(_ context.Context) ([]id.CaregiverID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]id.CaregiverID, 0, len(s.byID))
	for cid := range s.byID {
		out = append(out, cid)
	}
	return out, nil
}

// Search applies the directory predicate. Only verified, active caregivers are considered.
func (s *InMemory) Search(_ context.Context, q dirmodels.Query) ([]*models.Caregiver, int, error) {
	s.mu.RLock()
	matched := make([]*models.Caregiver, 0)
	for _, c := range s.byID {
		if matches(c, q) {
			matched = append(matched, clone(c))
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool { return less(matched[i], matched[j], q.Sort) })

	total := len(matched)
	start := min(max(q.Offset(), 0), total)
	end := min(start+q.Limit, total)
	return matched[start:end], total, nil
}

func matches(c *models.Caregiver, q dirmodels.Query) bool {
	if !c.IsListed() {
		return false
	}
	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		if !strings.Contains(strings.ToLower(c.FullName), needle) && !strings.Contains(strings.ToLower(c.Bio), needle) {
			return false
		}
	}
	if q.City != "" && !strings.Contains(strings.ToLower(c.Address.City), strings.ToLower(q.City)) {
		return false
	}
	if q.Specialization != "" && !slices.Contains(c.Specializations, q.Specialization) {
		return false
	}
	if q.MinRate != nil && c.HourlyRate < *q.MinRate {
		return false
	}
	if q.MaxRate != nil && c.HourlyRate > *q.MaxRate {
		return false
	}
	if q.Available != nil && c.IsAvailable != *q.Available {
		return false
	}
	return true
}

func less(a, b *models.Caregiver, key dirmodels.SortKey) bool {
	switch key {
	case dirmodels.SortExperience:
		if a.Experience != b.Experience {
			return a.Experience > b.Experience
		}
	case dirmodels.SortPriceLow:
		if a.HourlyRate != b.HourlyRate {
			return a.HourlyRate < b.HourlyRate
		}
	case dirmodels.SortPriceHigh:
		if a.HourlyRate != b.HourlyRate {
			return a.HourlyRate > b.HourlyRate
		}
	default:
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
	}
	return a.RegisteredAt.After(b.RegisteredAt)
}
