//go:build integration

package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"carenest/pkg/testutil/containers"
)

func TestProducerRoundTrip(t *testing.T) {
	broker := containers.NewKafkaContainer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	p, err := NewProducer(broker.Brokers, "carenest.test")
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.EnsureTopic(ctx))
	require.NoError(t, p.EnsureTopic(ctx), "second ensure must tolerate existing topic")
	require.NoError(t, p.Publish(ctx, "caregiver-1", []byte(`{"type":"caregiver.approved"}`), map[string]string{"event_type": "caregiver.approved"}))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker.Brokers...),
		kgo.ConsumeTopics("carenest.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.Empty(t, fetches.Errors())
	records := fetches.Records()
	require.NotEmpty(t, records)
	assert.Equal(t, "caregiver-1", string(records[0].Key))
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer(nil, "topic")
	assert.Error(t, err)
}
