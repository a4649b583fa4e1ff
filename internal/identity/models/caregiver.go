package models

import (
	"slices"
	"strings"
	"time"

	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

type Availability string

const (
	AvailabilityFullTime Availability = "full-time"
	AvailabilityPartTime Availability = "part-time"
	AvailabilityLiveIn   Availability = "live-in"
	AvailabilityFlexible Availability = "flexible"
)

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityFullTime, AvailabilityPartTime, AvailabilityLiveIn, AvailabilityFlexible:
		return true
	}
	return false
}

// Specializations is the closed set of care tags a caregiver may advertise.
var Specializations = []string{
	"Elderly Care",
	"Dementia Care",
	"Post-Surgery Care",
	"Mobility Assistance",
	"Medication Management",
	"Companionship",
	"Personal Care",
	"Meal Preparation",
}

func IsSpecialization(s string) bool {
	return slices.Contains(Specializations, s)
}

// PendingDocument is the placeholder reference for a document not yet supplied.
const PendingDocument = "pending"

// DocumentRef points at an uploaded identity document held elsewhere.
type DocumentRef struct {
	Ref      string
	Verified bool
}

type Documents struct {
	AadhaarCard DocumentRef
	PanCard     DocumentRef
}

// Caregiver is the aggregate root for a care professional.
//
// Invariants:
//   - Email is lowercased, AadhaarNumber is 12 digits, PANNumber is uppercased
//   - IsVerified is derived from Verification, never stored separately
//   - Rating and ReviewCount mirror the caregiver's visible reviews
type Caregiver struct {
	ID           id.CaregiverID
	FullName     string
	Email        string
	Phone        string
	DateOfBirth  time.Time
	Gender       Gender
	ProfilePhoto string
	Address      Address

	AadhaarNumber string
	PANNumber     string
	Documents     Documents
	Verification  VerificationState

	Experience      int
	Education       string
	Specializations []string
	Languages       []string
	Availability    Availability
	HourlyRate      float64
	Bio             string
	Certifications  []string
	References      string

	Rating      float64
	ReviewCount int

	IsActive          bool
	IsAvailable       bool
	TotalBookings     int
	CompletedBookings int
	TotalHoursWorked  float64

	PasswordHash string
	RegisteredAt time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// CaregiverRegistration carries the validated-at-construction registration input.
type CaregiverRegistration struct {
	FullName        string
	Email           string
	Phone           string
	DateOfBirth     time.Time
	Gender          Gender
	ProfilePhoto    string
	Address         Address
	AadhaarNumber   string
	PANNumber       string
	AadhaarCard     string
	PanCard         string
	Experience      int
	Education       string
	Specializations []string
	Languages       []string
	Availability    Availability
	HourlyRate      float64
	Bio             string
	Certifications  []string
	References      string
}

// Normalize trims and canonicalizes case-insensitive identifiers.
func (r *CaregiverRegistration) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Gender = Gender(strings.ToLower(strings.TrimSpace(string(r.Gender))))
	r.Address = r.Address.Normalized()
	r.AadhaarNumber = strings.TrimSpace(r.AadhaarNumber)
	r.PANNumber = NormalizePAN(r.PANNumber)
	r.AadhaarCard = strings.TrimSpace(r.AadhaarCard)
	r.PanCard = strings.TrimSpace(r.PanCard)
	r.Education = strings.TrimSpace(r.Education)
	r.Specializations = cleanList(r.Specializations)
	r.Languages = cleanList(r.Languages)
	r.Certifications = cleanList(r.Certifications)
	r.Availability = Availability(strings.TrimSpace(string(r.Availability)))
	r.Bio = strings.TrimSpace(r.Bio)
	r.References = strings.TrimSpace(r.References)
}

func (r CaregiverRegistration) Validate() error {
	if err := requireText(r.FullName, "Please provide full name"); err != nil {
		return err
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := ValidatePhone(r.Phone); err != nil {
		return err
	}
	if r.DateOfBirth.IsZero() {
		return invalid("date of birth is required")
	}
	if !r.Gender.IsValid() {
		return invalid("gender must be one of male, female, other")
	}
	if err := r.Address.Validate(); err != nil {
		return err
	}
	if err := ValidateAadhaar(r.AadhaarNumber); err != nil {
		return err
	}
	if err := ValidatePAN(r.PANNumber); err != nil {
		return err
	}
	return validateProfessional(r.Experience, r.Education, r.Specializations, r.Availability, r.HourlyRate, r.Bio, r.References)
}

func validateProfessional(experience int, education string, specs []string, availability Availability, rate float64, bio, references string) error {
	if experience < 0 {
		return invalid("experience cannot be negative")
	}
	if err := requireText(education, "education is required"); err != nil {
		return err
	}
	for _, s := range specs {
		if !IsSpecialization(s) {
			return invalid("unknown specialization: " + s)
		}
	}
	if !availability.IsValid() {
		return invalid("availability must be one of full-time, part-time, live-in, flexible")
	}
	if rate < 0 {
		return invalid("hourly rate cannot be negative")
	}
	if err := requireText(bio, "bio is required"); err != nil {
		return err
	}
	if err := maxRunes(bio, MaxBioLength, "bio cannot exceed 1000 characters"); err != nil {
		return err
	}
	return maxRunes(references, MaxReferences, "references cannot exceed 500 characters")
}

func orPending(ref string) string {
	if ref == "" {
		return PendingDocument
	}
	return ref
}

// NewCaregiver validates a registration and builds a pending, active caregiver.
func NewCaregiver(caregiverID id.CaregiverID, reg CaregiverRegistration, passwordHash string, now time.Time) (*Caregiver, error) {
	reg.Normalize()
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash is required")
	}
	return &Caregiver{
		ID:           caregiverID,
		FullName:     reg.FullName,
		Email:        reg.Email,
		Phone:        reg.Phone,
		DateOfBirth:  reg.DateOfBirth,
		Gender:       reg.Gender,
		ProfilePhoto: reg.ProfilePhoto,
		Address:      reg.Address,

		AadhaarNumber: reg.AadhaarNumber,
		PANNumber:     reg.PANNumber,
		Documents: Documents{
			AadhaarCard: DocumentRef{Ref: orPending(reg.AadhaarCard)},
			PanCard:     DocumentRef{Ref: orPending(reg.PanCard)},
		},
		Verification: PendingVerification(),

		Experience:      reg.Experience,
		Education:       reg.Education,
		Specializations: reg.Specializations,
		Languages:       reg.Languages,
		Availability:    reg.Availability,
		HourlyRate:      reg.HourlyRate,
		Bio:             reg.Bio,
		Certifications:  reg.Certifications,
		References:      reg.References,

		IsActive:     true,
		IsAvailable:  true,
		PasswordHash: passwordHash,
		RegisteredAt: now,
		UpdatedAt:    now,
	}, nil
}

func (c *Caregiver) IsVerified() bool { return c.Verification.IsVerified() }

// IsListed reports whether the caregiver may appear in the public directory.
func (c *Caregiver) IsListed() bool { return c.IsVerified() && c.IsActive }

// Bookable reports whether families may book this caregiver.
func (c *Caregiver) Bookable() error {
	if !c.IsVerified() {
		return dErrors.New(dErrors.CodeInvalidState, "caregiver is not verified")
	}
	if !c.IsActive {
		return dErrors.New(dErrors.CodeInvalidState, "caregiver is not active")
	}
	return nil
}

// CanApprove checks if the caregiver can transition to verified.
// Use with ApplyApproval in Execute callbacks.
func (c *Caregiver) CanApprove() error {
	_, err := c.Verification.Approve(time.Time{})
	return err
}

// ApplyApproval stamps verification and marks both documents verified.
func (c *Caregiver) ApplyApproval(now time.Time) {
	c.Verification, _ = c.Verification.Approve(now)
	c.Documents.AadhaarCard.Verified = true
	c.Documents.PanCard.Verified = true
	c.UpdatedAt = now
}

// Approve validates and applies approval in one call.
func (c *Caregiver) Approve(now time.Time) error {
	if err := c.CanApprove(); err != nil {
		return err
	}
	c.ApplyApproval(now)
	return nil
}

func (c *Caregiver) CanReject() error {
	_, err := c.Verification.Reject("")
	return err
}

func (c *Caregiver) ApplyRejection(reason string, now time.Time) {
	c.Verification, _ = c.Verification.Reject(reason)
	c.UpdatedAt = now
}

// Reject validates and applies rejection in one call.
func (c *Caregiver) Reject(reason string, now time.Time) error {
	if err := c.CanReject(); err != nil {
		return err
	}
	c.ApplyRejection(reason, now)
	return nil
}

// RecordBooking counts a newly created booking.
func (c *Caregiver) RecordBooking(now time.Time) {
	c.TotalBookings++
	c.UpdatedAt = now
}

// RecordCompletion credits a completed booking and its hours.
func (c *Caregiver) RecordCompletion(hours float64, now time.Time) {
	c.CompletedBookings++
	c.TotalHoursWorked += hours
	c.UpdatedAt = now
}

// ApplyRating replaces the derived rating snapshot.
func (c *Caregiver) ApplyRating(average float64, count int, now time.Time) {
	c.Rating = average
	c.ReviewCount = count
	c.UpdatedAt = now
}

// Deactivate hides the caregiver from the directory and blocks new bookings.
func (c *Caregiver) Deactivate(now time.Time) error {
	if !c.IsActive {
		return dErrors.New(dErrors.CodeInvalidState, "caregiver account is already deactivated")
	}
	c.IsActive = false
	c.UpdatedAt = now
	return nil
}

// RecordLogin stamps the last successful login.
func (c *Caregiver) RecordLogin(now time.Time) {
	c.LastLoginAt = &now
}

// Earnings is hours worked at the current hourly rate.
func (c *Caregiver) Earnings() float64 {
	return c.TotalHoursWorked * c.HourlyRate
}

// CaregiverProfileUpdate lists the fields a caregiver may change on their own
// profile. Nil fields are left untouched.
type CaregiverProfileUpdate struct {
	Phone           *string
	Address         *Address
	Experience      *int
	Education       *string
	Specializations []string
	Languages       []string
	Availability    *Availability
	HourlyRate      *float64
	Bio             *string
	Certifications  []string
	IsAvailable     *bool
}

// ApplyProfileUpdate validates the merged result before committing it.
func (c *Caregiver) ApplyProfileUpdate(u CaregiverProfileUpdate, now time.Time) error {
	next := *c
	if u.Phone != nil {
		next.Phone = strings.TrimSpace(*u.Phone)
		if err := ValidatePhone(next.Phone); err != nil {
			return err
		}
	}
	if u.Address != nil {
		next.Address = u.Address.Normalized()
		if err := next.Address.Validate(); err != nil {
			return err
		}
	}
	if u.Experience != nil {
		next.Experience = *u.Experience
	}
	if u.Education != nil {
		next.Education = strings.TrimSpace(*u.Education)
	}
	if u.Specializations != nil {
		next.Specializations = cleanList(u.Specializations)
	}
	if u.Languages != nil {
		next.Languages = cleanList(u.Languages)
	}
	if u.Availability != nil {
		next.Availability = *u.Availability
	}
	if u.HourlyRate != nil {
		next.HourlyRate = *u.HourlyRate
	}
	if u.Bio != nil {
		next.Bio = strings.TrimSpace(*u.Bio)
	}
	if u.Certifications != nil {
		next.Certifications = cleanList(u.Certifications)
	}
	if u.IsAvailable != nil {
		next.IsAvailable = *u.IsAvailable
	}
	if err := validateProfessional(next.Experience, next.Education, next.Specializations, next.Availability, next.HourlyRate, next.Bio, next.References); err != nil {
		return err
	}
	next.UpdatedAt = now
	*c = next
	return nil
}
