package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outcome bool

const (
	fail outcome = false
	ok   outcome = true
)

func record(b *Breaker, outcomes ...outcome) {
	for _, o := range outcomes {
		if o {
			b.RecordSuccess()
		} else {
			b.RecordFailure()
		}
	}
}

func TestNewBreakerStartsClosed(t *testing.T) {
	b := New("notifications")
	assert.Equal(t, "notifications", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.Equal(t, "closed", b.State().String())
	assert.True(t, b.Allow())
}

func TestBreakerStateAfterOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		failures int
		recovers int
		outcomes []outcome
		wantOpen bool
	}{
		{name: "below failure threshold", failures: 3, outcomes: []outcome{fail, fail}},
		{name: "reaches failure threshold", failures: 3, outcomes: []outcome{fail, fail, fail}, wantOpen: true},
		{name: "success clears failure streak", failures: 3, outcomes: []outcome{fail, fail, ok, fail, fail}},
		{name: "streak after reset opens", failures: 3, outcomes: []outcome{fail, fail, ok, fail, fail, fail}, wantOpen: true},
		{name: "open until recovery streak", failures: 1, recovers: 2, outcomes: []outcome{fail, ok}, wantOpen: true},
		{name: "recovery streak closes", failures: 1, recovers: 2, outcomes: []outcome{fail, ok, ok}},
		{name: "failure restarts recovery streak", failures: 1, recovers: 3, outcomes: []outcome{fail, ok, ok, fail, ok, ok}, wantOpen: true},
		{name: "full recovery after restart", failures: 1, recovers: 3, outcomes: []outcome{fail, ok, ok, fail, ok, ok, ok}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("notifications", WithFailureThreshold(tt.failures), WithSuccessThreshold(tt.recovers))
			record(b, tt.outcomes...)
			assert.Equal(t, tt.wantOpen, b.IsOpen())
		})
	}
}

func TestBreakerReportsTransitionsOnce(t *testing.T) {
	b := New("notifications", WithFailureThreshold(2))

	useFallback, change := b.RecordFailure()
	assert.False(t, useFallback)
	assert.Equal(t, StateChange{}, change)

	useFallback, change = b.RecordFailure()
	assert.True(t, useFallback)
	assert.True(t, change.Opened)
	assert.Equal(t, "open", b.State().String())

	useFallback, change = b.RecordFailure()
	assert.True(t, useFallback)
	assert.False(t, change.Opened, "already open")

	usePrimary, change := b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)

	_, change = b.RecordSuccess()
	assert.False(t, change.Closed, "already closed")
}

func TestBreakerAllowsOneTrialPerCooldown(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	b := New("kafka", WithFailureThreshold(1), WithCooldown(time.Minute), WithClock(func() time.Time { return now }))

	require.True(t, b.Allow())
	b.RecordFailure()
	assert.False(t, b.Allow())

	now = now.Add(59 * time.Second)
	assert.False(t, b.Allow())

	now = now.Add(time.Second)
	assert.True(t, b.Allow())
	assert.False(t, b.Allow(), "second call in the same window")
}

func TestBreakerReset(t *testing.T) {
	b := New("notifications", WithFailureThreshold(1))
	b.RecordFailure()
	require.True(t, b.IsOpen())

	b.Reset()
	assert.Equal(t, StateClosed, b.State())
	assert.True(t, b.Allow())
}
