// Package kafka builds the franz-go client used to publish notifications.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	defaultPartitions        int32 = 3
	defaultReplicationFactor int16 = 1
)

// Producer publishes keyed records to a single topic.
type Producer struct {
	client *kgo.Client
	topic  string
}

// NewProducer connects to brokers with the topic as the default produce target.
func NewProducer(brokers []string, topic string, opts ...kgo.Opt) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka: no brokers configured")
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchMaxBytes(1 << 20),
		kgo.RecordDeliveryTimeout(10 * time.Second),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}
	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("kafka: new client: %w", err)
	}
	return &Producer{client: client, topic: topic}, nil
}

// EnsureTopic creates the topic when missing. An existing topic is not an error.
func (p *Producer) EnsureTopic(ctx context.Context) error {
	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopics(ctx, defaultPartitions, defaultReplicationFactor, nil, p.topic)
	if err != nil {
		return fmt.Errorf("kafka: create topic: %w", err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("kafka: create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

// Publish writes one record synchronously.
func (p *Producer) Publish(ctx context.Context, key string, value []byte, headers map[string]string) error {
	rec := &kgo.Record{Topic: p.topic, Key: []byte(key), Value: value}
	for k, v := range headers {
		rec.Headers = append(rec.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("kafka: produce: %w", err)
	}
	return nil
}

// Health pings the cluster.
func (p *Producer) Health(ctx context.Context) error {
	return p.client.Ping(ctx)
}

// Topic returns the target topic.
func (p *Producer) Topic() string { return p.topic }

// Close flushes buffered records and closes the client.
func (p *Producer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}
