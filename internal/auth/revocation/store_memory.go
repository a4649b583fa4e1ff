package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryTRL is the single-instance fallback when Redis is not configured.
type MemoryTRL struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// MemoryOption configures a MemoryTRL.
type MemoryOption func(*MemoryTRL)

// WithClock sets the clock function for testability.
func WithClock(now func() time.Time) MemoryOption {
	return func(t *MemoryTRL) { t.now = now }
}

func NewMemoryTRL(opts ...MemoryOption) *MemoryTRL {
	t := &MemoryTRL{revoked: make(map[string]time.Time), now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *MemoryTRL) RevokeToken(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	if err := validateTTL(ttl); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	for k, exp := range t.revoked {
		if !now.Before(exp) {
			delete(t.revoked, k)
		}
	}
	t.revoked[jti] = now.Add(ttl)
	return nil
}

func (t *MemoryTRL) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	exp, ok := t.revoked[jti]
	return ok && t.now().Before(exp), nil
}
