package notification

import (
	"context"
	"log/slog"
)

// LogSink writes each event as a structured log line. It is the delivery path
// when no broker is configured and the fallback when the broker is down.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Send(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "notification",
		"log_type", "notification",
		"kind", event.Kind,
		"recipient", event.Recipient,
		"subject", event.Subject,
		"request_id", event.RequestID,
	)
	return nil
}
