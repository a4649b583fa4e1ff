// Package notification delivers account and booking events to people outside the
// request path. Delivery is asynchronous and best effort: a failed or dropped
// notification never fails the operation that produced it.
package notification

import (
	"context"
	"time"
)

type Kind string

const (
	KindCaregiverRegistered   Kind = "caregiver.registered"
	KindAdminCaregiverPending Kind = "admin.caregiver_pending"
	KindSeniorRegistered      Kind = "senior.registered"
	KindCaregiverApproved     Kind = "caregiver.approved"
	KindCaregiverRejected     Kind = "caregiver.rejected"
	KindBookingRequested      Kind = "booking.requested"
	KindBookingStatusChanged  Kind = "booking.status_changed"
	KindBookingCancelled      Kind = "booking.cancelled"
	KindReviewReceived        Kind = "review.received"
)

// Event is one message for one recipient. Data carries template fields.
type Event struct {
	Kind       Kind              `json:"kind"`
	Recipient  string            `json:"recipient"`
	Subject    string            `json:"subject"`
	Data       map[string]string `json:"data,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Notifier accepts events without blocking the caller.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Sink performs the actual delivery.
type Sink interface {
	Send(ctx context.Context, event Event) error
}

// Discard drops every event. Useful where notifications are irrelevant.
type Discard struct{}

func (Discard) Notify(context.Context, Event) {}
