package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "carenest/pkg/domain-errors"
)

// Typed identifiers keep caregiver, senior, booking and review ids from being
// swapped at call sites. All are UUIDs underneath.
type (
	AccountID   uuid.UUID
	CaregiverID uuid.UUID
	SeniorID    uuid.UUID
	BookingID   uuid.UUID
	ReviewID    uuid.UUID
)

func (id AccountID) String() string   { return uuid.UUID(id).String() }
func (id CaregiverID) String() string { return uuid.UUID(id).String() }
func (id SeniorID) String() string    { return uuid.UUID(id).String() }
func (id BookingID) String() string   { return uuid.UUID(id).String() }
func (id ReviewID) String() string    { return uuid.UUID(id).String() }

func (id AccountID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id CaregiverID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id SeniorID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id BookingID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id ReviewID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// MarshalText lets typed ids serialize as plain UUID strings in JSON.
func (id AccountID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id CaregiverID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id SeniorID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id BookingID) MarshalText() ([]byte, error)   { return []byte(id.String()), nil }
func (id ReviewID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }

func (id *AccountID) UnmarshalText(b []byte) error   { return unmarshalID((*uuid.UUID)(id), b, "account ID") }
func (id *CaregiverID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(id), b, "caregiver ID") }
func (id *SeniorID) UnmarshalText(b []byte) error    { return unmarshalID((*uuid.UUID)(id), b, "senior ID") }
func (id *BookingID) UnmarshalText(b []byte) error   { return unmarshalID((*uuid.UUID)(id), b, "booking ID") }
func (id *ReviewID) UnmarshalText(b []byte) error    { return unmarshalID((*uuid.UUID)(id), b, "review ID") }

func unmarshalID(dst *uuid.UUID, b []byte, label string) error {
	u, err := parseUUID(string(b), label)
	if err != nil {
		return err
	}
	*dst = u
	return nil
}

// CaregiverID and SeniorID convert a token subject into the kind-specific id.
func (id AccountID) CaregiverID() CaregiverID { return CaregiverID(id) }
func (id AccountID) SeniorID() SeniorID       { return SeniorID(id) }

func NewCaregiverID() CaregiverID { return CaregiverID(uuid.New()) }
func NewSeniorID() SeniorID       { return SeniorID(uuid.New()) }
func NewBookingID() BookingID     { return BookingID(uuid.New()) }
func NewReviewID() ReviewID       { return ReviewID(uuid.New()) }

func ParseAccountID(s string) (AccountID, error) {
	u, err := parseUUID(s, "account ID")
	return AccountID(u), err
}

func ParseCaregiverID(s string) (CaregiverID, error) {
	u, err := parseUUID(s, "caregiver ID")
	return CaregiverID(u), err
}

func ParseSeniorID(s string) (SeniorID, error) {
	u, err := parseUUID(s, "senior ID")
	return SeniorID(u), err
}

func ParseBookingID(s string) (BookingID, error) {
	u, err := parseUUID(s, "booking ID")
	return BookingID(u), err
}

func ParseReviewID(s string) (ReviewID, error) {
	u, err := parseUUID(s, "review ID")
	return ReviewID(u), err
}

func parseUUID(s, label string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label)
	}
	return u, nil
}
