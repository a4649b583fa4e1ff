package models

import (
	"strings"
	"time"

	dErrors "carenest/pkg/domain-errors"
)

// VerificationStatus names the variant a VerificationState holds.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationVerified, VerificationRejected:
		return true
	}
	return false
}

// DefaultRejectionReason is recorded when an admin rejects without a reason.
const DefaultRejectionReason = "Documents verification failed"

// VerificationState is exactly one of Pending, Verified{at} or Rejected{reason}.
// The fields are unexported so the variant can only change through Approve and Reject.
type VerificationState struct {
	status     VerificationStatus
	verifiedAt time.Time
	reason     string
}

func PendingVerification() VerificationState {
	return VerificationState{status: VerificationPending}
}

// RestoreVerification rebuilds a state from persisted columns.
func RestoreVerification(status VerificationStatus, verifiedAt *time.Time, reason string) (VerificationState, error) {
	switch status {
	case VerificationPending:
		return PendingVerification(), nil
	case VerificationVerified:
		if verifiedAt == nil {
			return VerificationState{}, dErrors.New(dErrors.CodeInvariantViolation, "verified caregiver without verification time")
		}
		return VerificationState{status: VerificationVerified, verifiedAt: *verifiedAt}, nil
	case VerificationRejected:
		return VerificationState{status: VerificationRejected, reason: reason}, nil
	default:
		return VerificationState{}, dErrors.New(dErrors.CodeInvariantViolation, "unknown verification status "+string(status))
	}
}

func (s VerificationState) Status() VerificationStatus {
	if s.status == "" {
		return VerificationPending
	}
	return s.status
}

func (s VerificationState) IsVerified() bool { return s.status == VerificationVerified }
func (s VerificationState) IsPending() bool  { return s.Status() == VerificationPending }

// VerifiedAt is set only for the Verified variant.
func (s VerificationState) VerifiedAt() (time.Time, bool) {
	return s.verifiedAt, s.status == VerificationVerified
}

// RejectionReason is set only for the Rejected variant.
func (s VerificationState) RejectionReason() string {
	if s.status != VerificationRejected {
		return ""
	}
	return s.reason
}

// Approve moves Pending to Verified. Approving an already verified caregiver
// re-stamps the time. Rejected caregivers cannot be approved.
func (s VerificationState) Approve(now time.Time) (VerificationState, error) {
	if s.Status() == VerificationRejected {
		return s, dErrors.New(dErrors.CodeInvalidState, "cannot approve a rejected caregiver")
	}
	return VerificationState{status: VerificationVerified, verifiedAt: now}, nil
}

// Reject moves Pending to Rejected with a reason.
func (s VerificationState) Reject(reason string) (VerificationState, error) {
	if s.Status() != VerificationPending {
		return s, dErrors.New(dErrors.CodeInvalidState, "only pending caregivers can be rejected")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}
	return VerificationState{status: VerificationRejected, reason: reason}, nil
}
