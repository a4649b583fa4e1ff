package sentinel

import (
	"errors"
	"fmt"
)

// Sentinel errors for infrastructure facts. Stores return these (optionally wrapped)
// so services can translate them into domain errors.
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)

// UniqueViolation reports which unique field rejected a write.
// It matches ErrAlreadyUsed under errors.Is.
type UniqueViolation struct {
	Field string
}

func (e *UniqueViolation) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, ErrAlreadyUsed)
}

func (e *UniqueViolation) Is(target error) bool {
	return target == ErrAlreadyUsed
}

// Duplicate builds a UniqueViolation for field.
func Duplicate(field string) error {
	return &UniqueViolation{Field: field}
}

// DuplicateField returns the offending field when err is a UniqueViolation.
func DuplicateField(err error) (string, bool) {
	var uv *UniqueViolation
	if errors.As(err, &uv) {
		return uv.Field, true
	}
	return "", false
}
