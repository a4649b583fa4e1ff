package notification

import (
	"context"
	"encoding/json"
	"fmt"
)

// Publisher is the slice of the Kafka producer the sink needs.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte, headers map[string]string) error
}

// KafkaSink publishes events as JSON, keyed by recipient so one person's
// notifications stay ordered within a partition.
type KafkaSink struct {
	publisher Publisher
}

func NewKafkaSink(publisher Publisher) *KafkaSink {
	return &KafkaSink{publisher: publisher}
}

func (s *KafkaSink) Send(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	headers := map[string]string{"kind": string(event.Kind)}
	if event.RequestID != "" {
		headers["request_id"] = event.RequestID
	}
	if err := s.publisher.Publish(ctx, event.Recipient, payload, headers); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
