package models

import (
	"fmt"
	"slices"
	"strings"

	dErrors "carenest/pkg/domain-errors"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// transitions lists the forward moves updateStatus may make. Cancellation is
// a separate operation and terminal states have no entry.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed},
	StatusConfirmed:  {StatusInProgress},
	StatusInProgress: {StatusCompleted},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

func ParseStatus(v string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(v)))
	if !s.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation,
			fmt.Sprintf("invalid booking status %q", v))
	}
	return s, nil
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

var paymentTransitions = map[PaymentStatus]PaymentStatus{
	PaymentPending: PaymentPaid,
	PaymentPaid:    PaymentRefunded,
}

func ParsePaymentStatus(v string) (PaymentStatus, error) {
	p := PaymentStatus(strings.ToLower(strings.TrimSpace(v)))
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return p, nil
	}
	return "", dErrors.New(dErrors.CodeValidation,
		fmt.Sprintf("invalid payment status %q", v))
}
