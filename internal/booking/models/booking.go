// Package models holds the booking aggregate and its lifecycle rules.
package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	identity "carenest/internal/identity/models"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

const maxTextLen = 500

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Window is the engagement's date range and daily hours.
type Window struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime string
	EndTime   string
}

func (w Window) Validate() error {
	if w.StartDate.IsZero() || w.EndDate.IsZero() {
		return dErrors.New(dErrors.CodeValidation, "start and end dates are required")
	}
	if w.EndDate.Before(w.StartDate) {
		return dErrors.New(dErrors.CodeValidation, "end date cannot be before start date")
	}
	if !clockPattern.MatchString(w.StartTime) || !clockPattern.MatchString(w.EndTime) {
		return dErrors.New(dErrors.CodeValidation, "start and end times must be HH:MM")
	}
	return nil
}

type Cancellation struct {
	By     id.ActorRole
	Reason string
	At     time.Time
}

// Booking is a scheduled engagement between one caregiver and one senior.
//
// TotalAmount is derived from HourlyRate and TotalHours and is recomputed by
// the store on every write. Reviewed moves false to true once, from completed.
type Booking struct {
	ID                  id.BookingID
	CaregiverID         id.CaregiverID
	SeniorID            id.SeniorID
	Window              Window
	Location            identity.Address
	Status              Status
	HourlyRate          float64
	TotalHours          float64
	TotalAmount         float64
	PaymentStatus       PaymentStatus
	PaymentDate         *time.Time
	SpecialInstructions string
	CaregiverNotes      string
	Reviewed            bool
	Cancellation        *Cancellation
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Request is a family's booking input. A nil HourlyRate takes the caregiver's rate.
type Request struct {
	CaregiverID         id.CaregiverID
	Window              Window
	Location            identity.Address
	HourlyRate          *float64
	TotalHours          float64
	SpecialInstructions string
}

func (r Request) Validate() error {
	if r.CaregiverID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "caregiver is required")
	}
	if err := r.Window.Validate(); err != nil {
		return err
	}
	if err := r.Location.Normalized().Validate(); err != nil {
		return err
	}
	if r.HourlyRate != nil && *r.HourlyRate < 0 {
		return dErrors.New(dErrors.CodeValidation, "hourly rate cannot be negative")
	}
	if r.TotalHours <= 0 {
		return dErrors.New(dErrors.CodeValidation, "total hours must be greater than zero")
	}
	if len([]rune(strings.TrimSpace(r.SpecialInstructions))) > maxTextLen {
		return dErrors.New(dErrors.CodeValidation, "special instructions cannot exceed 500 characters")
	}
	return nil
}

// New builds a pending booking. defaultRate applies when the request omits a rate.
func New(bookingID id.BookingID, seniorID id.SeniorID, req Request, defaultRate float64, now time.Time) (*Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if seniorID.IsNil() {
		return nil, dErrors.New(dErrors.CodeValidation, "senior is required")
	}
	rate := defaultRate
	if req.HourlyRate != nil {
		rate = *req.HourlyRate
	}
	b := &Booking{
		ID:                  bookingID,
		CaregiverID:         req.CaregiverID,
		SeniorID:            seniorID,
		Window:              req.Window,
		Location:            req.Location.Normalized(),
		Status:              StatusPending,
		HourlyRate:          rate,
		TotalHours:          req.TotalHours,
		PaymentStatus:       PaymentPending,
		SpecialInstructions: strings.TrimSpace(req.SpecialInstructions),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	b.Recompute()
	return b, nil
}

// Recompute derives TotalAmount from the current rate and hours.
func (b *Booking) Recompute() {
	b.TotalAmount = b.HourlyRate * b.TotalHours
}

// RoleOf reports the actor's relationship to the booking; ok is false for strangers.
func (b *Booking) RoleOf(accountID id.AccountID, accountType id.AccountType) (id.ActorRole, bool) {
	switch accountType {
	case id.AccountCaregiver:
		return id.ActorCaregiver, accountID.CaregiverID() == b.CaregiverID
	case id.AccountFamily:
		return id.ActorSenior, accountID.SeniorID() == b.SeniorID
	}
	return "", false
}

// TransitionTo follows the transition table. Cancelling goes through Cancel.
func (b *Booking) TransitionTo(next Status, now time.Time) error {
	if next == StatusCancelled {
		return dErrors.New(dErrors.CodeInvalidState, "use cancel to cancel a booking")
	}
	if !b.Status.CanTransitionTo(next) {
		return dErrors.New(dErrors.CodeInvalidState,
			fmt.Sprintf("cannot move booking from %s to %s", b.Status, next))
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}

// SetCaregiverNotes replaces the caregiver's notes on the engagement.
func (b *Booking) SetCaregiverNotes(notes string, now time.Time) error {
	notes = strings.TrimSpace(notes)
	if len([]rune(notes)) > maxTextLen {
		return dErrors.New(dErrors.CodeValidation, "caregiver notes cannot exceed 500 characters")
	}
	b.CaregiverNotes = notes
	b.UpdatedAt = now
	return nil
}

// Cancel is allowed from any non-terminal state.
func (b *Booking) Cancel(by id.ActorRole, reason string, now time.Time) error {
	if !by.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid cancelling party")
	}
	if b.Status.IsTerminal() {
		return dErrors.New(dErrors.CodeInvalidState,
			fmt.Sprintf("cannot cancel a %s booking", b.Status))
	}
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) > maxTextLen {
		return dErrors.New(dErrors.CodeValidation, "cancellation reason cannot exceed 500 characters")
	}
	b.Status = StatusCancelled
	b.Cancellation = &Cancellation{By: by, Reason: reason, At: now}
	b.UpdatedAt = now
	return nil
}

// MarkReviewed flips the review flag exactly once, only after completion.
func (b *Booking) MarkReviewed(now time.Time) error {
	if b.Status != StatusCompleted {
		return dErrors.New(dErrors.CodeInvalidState, "Can only review completed bookings")
	}
	if b.Reviewed {
		return dErrors.New(dErrors.CodeInvalidState, "Booking already reviewed")
	}
	b.Reviewed = true
	b.UpdatedAt = now
	return nil
}

// RecordPayment moves pending to paid or paid to refunded.
func (b *Booking) RecordPayment(next PaymentStatus, now time.Time) error {
	if paymentTransitions[b.PaymentStatus] != next {
		return dErrors.New(dErrors.CodeInvalidState,
			fmt.Sprintf("cannot move payment from %s to %s", b.PaymentStatus, next))
	}
	if next == PaymentPaid && b.Status == StatusCancelled {
		return dErrors.New(dErrors.CodeInvalidState, "cannot take payment for a cancelled booking")
	}
	b.PaymentStatus = next
	if next == PaymentPaid {
		b.PaymentDate = &now
	}
	b.UpdatedAt = now
	return nil
}
