package notification

import (
	"context"
	"log/slog"

	"carenest/pkg/platform/circuit"
)

// FallbackSink sends through primary while its breaker allows and falls back
// to secondary on failure or while the breaker is open.
type FallbackSink struct {
	primary   Sink
	secondary Sink
	breaker   *circuit.Breaker
	logger    *slog.Logger
}

func NewFallbackSink(primary, secondary Sink, breaker *circuit.Breaker, logger *slog.Logger) *FallbackSink {
	return &FallbackSink{primary: primary, secondary: secondary, breaker: breaker, logger: logger}
}

func (s *FallbackSink) Send(ctx context.Context, event Event) error {
	if !s.breaker.Allow() {
		return s.secondary.Send(ctx, event)
	}
	err := s.primary.Send(ctx, event)
	if err == nil {
		if _, change := s.breaker.RecordSuccess(); change.Closed {
			s.logger.InfoContext(ctx, "notification primary sink recovered", "breaker", s.breaker.Name())
		}
		return nil
	}
	if _, change := s.breaker.RecordFailure(); change.Opened {
		s.logger.WarnContext(ctx, "notification primary sink unhealthy, using fallback",
			"breaker", s.breaker.Name(),
			"error", err,
		)
	}
	return s.secondary.Send(ctx, event)
}
