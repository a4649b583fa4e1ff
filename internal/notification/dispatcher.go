package notification

import (
	"context"
	"log/slog"
	"time"

	"carenest/pkg/requestcontext"
)

const (
	outcomeSent    = "sent"
	outcomeFailed  = "failed"
	outcomeDropped = "dropped"

	defaultSendTimeout = 10 * time.Second
)

// Dispatcher queues events on a bounded channel drained by a single worker.
// A full queue drops the event with a warning instead of blocking the caller.
type Dispatcher struct {
	sink        Sink
	logger      *slog.Logger
	metrics     *Metrics
	queue       chan Event
	sendTimeout time.Duration
	now         func() time.Time
}

type Option func(*Dispatcher)

func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) { d.metrics = m }
}

func WithSendTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(sink Sink, logger *slog.Logger, queueSize int, opts ...Option) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	d := &Dispatcher{
		sink:        sink,
		logger:      logger,
		queue:       make(chan Event, queueSize),
		sendTimeout: defaultSendTimeout,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Notify stamps the event with request metadata and enqueues it.
func (d *Dispatcher) Notify(ctx context.Context, event Event) {
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = d.now().UTC()
	}
	select {
	case d.queue <- event:
		d.metrics.depth(len(d.queue))
	default:
		d.metrics.observe(event.Kind, outcomeDropped)
		d.logger.WarnContext(ctx, "notification queue full, dropping event",
			"kind", event.Kind,
			"recipient", event.Recipient,
			"request_id", event.RequestID,
		)
	}
}

// Run delivers queued events until ctx is cancelled, then flushes what is
// already buffered using a fresh deadline per event.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.drain()
			return nil
		case event := <-d.queue:
			d.deliver(ctx, event)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case event := <-d.queue:
			d.deliver(context.Background(), event)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event Event) {
	d.metrics.depth(len(d.queue))
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.sendTimeout)
	defer cancel()

	if err := d.sink.Send(sendCtx, event); err != nil {
		d.metrics.observe(event.Kind, outcomeFailed)
		d.logger.Error("notification delivery failed",
			"kind", event.Kind,
			"recipient", event.Recipient,
			"request_id", event.RequestID,
			"error", err,
		)
		return
	}
	d.metrics.observe(event.Kind, outcomeSent)
}
