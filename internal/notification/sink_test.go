package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carenest/pkg/platform/circuit"
)

type fakePublisher struct {
	key     string
	value   []byte
	headers map[string]string
	err     error
	calls   int
}

func (p *fakePublisher) Publish(_ context.Context, key string, value []byte, headers map[string]string) error {
	p.calls++
	p.key, p.value, p.headers = key, value, headers
	return p.err
}

func TestKafkaSinkEncodesEvent(t *testing.T) {
	pub := &fakePublisher{}
	event := BookingCancelled("family@example.com", "b-9", "caregiver", "unwell")
	event.RequestID = "req-7"

	require.NoError(t, NewKafkaSink(pub).Send(context.Background(), event))

	assert.Equal(t, "family@example.com", pub.key)
	assert.Equal(t, "booking.cancelled", pub.headers["kind"])
	assert.Equal(t, "req-7", pub.headers["request_id"])

	var decoded Event
	require.NoError(t, json.Unmarshal(pub.value, &decoded))
	assert.Equal(t, "unwell", decoded.Data["reason"])
}

func TestFallbackSink(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker unreachable")}
	backup := &recordingSink{}
	breaker := circuit.New("kafka", circuit.WithFailureThreshold(2))
	sink := NewFallbackSink(NewKafkaSink(pub), backup, breaker, discardLogger())
	ctx := context.Background()

	for range 3 {
		require.NoError(t, sink.Send(ctx, CaregiverApproved("c@example.com", "Asha")))
	}

	assert.Len(t, backup.sent(), 3, "every failed send reaches the fallback")
	assert.Equal(t, 2, pub.calls, "open breaker skips the primary")
	assert.True(t, breaker.IsOpen())
}

func TestFallbackSinkRecoversAfterCooldown(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	pub := &fakePublisher{err: errors.New("broker unreachable")}
	backup := &recordingSink{}
	breaker := circuit.New("notifications",
		circuit.WithFailureThreshold(1),
		circuit.WithCooldown(30*time.Second),
		circuit.WithClock(func() time.Time { return now }),
	)
	sink := NewFallbackSink(NewKafkaSink(pub), backup, breaker, discardLogger())
	ctx := context.Background()
	event := ReviewReceived("c@example.com", "b-1", 5)

	require.NoError(t, sink.Send(ctx, event))
	require.True(t, breaker.IsOpen())

	// Broker is back, but the breaker keeps routing to the fallback until the cooldown elapses.
	pub.err = nil
	require.NoError(t, sink.Send(ctx, event))
	assert.Equal(t, 1, pub.calls)
	assert.Len(t, backup.sent(), 2)

	now = now.Add(30 * time.Second)
	require.NoError(t, sink.Send(ctx, event))
	assert.Equal(t, 2, pub.calls)
	assert.False(t, breaker.IsOpen())

	require.NoError(t, sink.Send(ctx, event))
	assert.Equal(t, 3, pub.calls)
	assert.Len(t, backup.sent(), 2, "closed breaker sends through the primary only")
}

func TestFallbackSinkFailedTrialStaysOpen(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	pub := &fakePublisher{err: errors.New("broker unreachable")}
	backup := &recordingSink{}
	breaker := circuit.New("notifications",
		circuit.WithFailureThreshold(1),
		circuit.WithCooldown(time.Minute),
		circuit.WithClock(func() time.Time { return now }),
	)
	sink := NewFallbackSink(NewKafkaSink(pub), backup, breaker, discardLogger())
	ctx := context.Background()
	event := CaregiverApproved("c@example.com", "Asha")

	require.NoError(t, sink.Send(ctx, event))
	now = now.Add(time.Minute)
	require.NoError(t, sink.Send(ctx, event))

	assert.Equal(t, 2, pub.calls)
	assert.True(t, breaker.IsOpen())
	assert.Len(t, backup.sent(), 2)

	require.NoError(t, sink.Send(ctx, event))
	assert.Equal(t, 2, pub.calls, "no second trial within the window")
}
