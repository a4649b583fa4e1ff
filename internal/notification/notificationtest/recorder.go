// Package notificationtest records notifications synchronously for assertions.
package notificationtest

import (
	"context"
	"sync"

	"carenest/internal/notification"
)

type Recorder struct {
	mu     sync.Mutex
	events []notification.Event
}

func (r *Recorder) Notify(_ context.Context, e notification.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) Events() []notification.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notification.Event(nil), r.events...)
}

// Kinds lists recorded kinds in order.
func (r *Recorder) Kinds() []notification.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notification.Kind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
