package domain

import (
	"strings"

	dErrors "carenest/pkg/domain-errors"
)

// AccountType distinguishes the two credential-holding account kinds.
// The wire value for seniors is "family", matching the login payload.
type AccountType string

const (
	AccountCaregiver AccountType = "caregiver"
	AccountFamily    AccountType = "family"
)

func (t AccountType) IsValid() bool {
	return t == AccountCaregiver || t == AccountFamily
}

func (t AccountType) String() string { return string(t) }

// ParseAccountType accepts "senior" as an alias for family accounts.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "caregiver":
		return AccountCaregiver, nil
	case "family", "senior":
		return AccountFamily, nil
	case "":
		return "", dErrors.New(dErrors.CodeValidation, "userType is required")
	default:
		return "", dErrors.New(dErrors.CodeValidation, "invalid user type")
	}
}

// ActorRole identifies who performed a booking mutation.
type ActorRole string

const (
	ActorCaregiver ActorRole = "caregiver"
	ActorSenior    ActorRole = "senior"
	ActorAdmin     ActorRole = "admin"
)

func (r ActorRole) IsValid() bool {
	switch r {
	case ActorCaregiver, ActorSenior, ActorAdmin:
		return true
	}
	return false
}

// RoleFor maps an authenticated account kind to its booking actor role.
func RoleFor(t AccountType) ActorRole {
	if t == AccountCaregiver {
		return ActorCaregiver
	}
	return ActorSenior
}
