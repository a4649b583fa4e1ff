package models

import (
	"regexp"
	"strings"
	"unicode/utf8"

	dErrors "carenest/pkg/domain-errors"
	strs "carenest/pkg/platform/strings"
)

var (
	emailPattern   = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)
	phonePattern   = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
	aadhaarPattern = regexp.MustCompile(`^[0-9]{12}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
)

const (
	MinPasswordLength = 6
	MaxBioLength      = 1000
	MaxReferences     = 500
	MinSeniorAge      = 50
)

func invalid(msg string) error {
	return dErrors.New(dErrors.CodeValidation, msg)
}

// NormalizeEmail lowercases and trims.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePAN uppercases and trims.
func NormalizePAN(pan string) string {
	return strings.ToUpper(strings.TrimSpace(pan))
}

func ValidateEmail(email string) error {
	if email == "" {
		return invalid("Please provide email")
	}
	if !emailPattern.MatchString(email) {
		return invalid("Please provide a valid email")
	}
	return nil
}

func ValidatePhone(phone string) error {
	if phone == "" {
		return invalid("Please provide phone number")
	}
	if !phonePattern.MatchString(phone) {
		return invalid("Please provide a valid 10-digit phone number")
	}
	return nil
}

func ValidateAadhaar(n string) error {
	if n == "" {
		return invalid("Aadhaar number is required for verification")
	}
	if !aadhaarPattern.MatchString(n) {
		return invalid("Please provide a valid 12-digit Aadhaar number")
	}
	return nil
}

func ValidatePAN(n string) error {
	if n == "" {
		return invalid("PAN number is required for verification")
	}
	if !panPattern.MatchString(n) {
		return invalid("Please provide a valid PAN number")
	}
	return nil
}

// ValidatePassword checks the plaintext before hashing.
func ValidatePassword(pw string) error {
	if pw == "" {
		return invalid("Please provide a password")
	}
	if utf8.RuneCountInString(pw) < MinPasswordLength {
		return invalid("password must be at least 6 characters")
	}
	return nil
}

func requireText(v, msg string) error {
	if strings.TrimSpace(v) == "" {
		return invalid(msg)
	}
	return nil
}

func maxRunes(v string, limit int, msg string) error {
	if utf8.RuneCountInString(v) > limit {
		return invalid(msg)
	}
	return nil
}

func cleanList(in []string) []string {
	return strs.DedupeAndTrim(in)
}
