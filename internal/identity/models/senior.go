package models

import (
	"strings"
	"time"

	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

type Relationship string

const (
	RelationshipSon      Relationship = "son"
	RelationshipDaughter Relationship = "daughter"
	RelationshipSpouse   Relationship = "spouse"
	RelationshipSibling  Relationship = "sibling"
	RelationshipRelative Relationship = "relative"
	RelationshipSelf     Relationship = "self"
)

func (r Relationship) IsValid() bool {
	switch r {
	case RelationshipSon, RelationshipDaughter, RelationshipSpouse, RelationshipSibling, RelationshipRelative, RelationshipSelf:
		return true
	}
	return false
}

type CareType string

const (
	CareFullTime  CareType = "full-time"
	CarePartTime  CareType = "part-time"
	CareLiveIn    CareType = "live-in"
	CareRespite   CareType = "respite"
	CareOvernight CareType = "overnight"
)

func (c CareType) IsValid() bool {
	switch c {
	case CareFullTime, CarePartTime, CareLiveIn, CareRespite, CareOvernight:
		return true
	}
	return false
}

type PreferredGender string

const (
	PreferMale         PreferredGender = "male"
	PreferFemale       PreferredGender = "female"
	PreferNoPreference PreferredGender = "no-preference"
)

func (p PreferredGender) IsValid() bool {
	return p == PreferMale || p == PreferFemale || p == PreferNoPreference
}

// Senior is a family account seeking care for an elderly relative.
type Senior struct {
	ID                id.SeniorID
	GuardianName      string
	Email             string
	Phone             string
	Relationship      Relationship
	SeniorName        string
	SeniorAge         int
	Address           Address
	CareType          CareType
	MedicalConditions string
	SpecialNeeds      string
	PreferredGender   PreferredGender
	StartDate         time.Time
	Budget            float64
	AdditionalInfo    string
	IsActive          bool
	PasswordHash      string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	LastLoginAt       *time.Time
}

type SeniorRegistration struct {
	GuardianName      string
	Email             string
	Phone             string
	Relationship      Relationship
	SeniorName        string
	SeniorAge         int
	Address           Address
	CareType          CareType
	MedicalConditions string
	SpecialNeeds      string
	PreferredGender   PreferredGender
	StartDate         time.Time
	Budget            float64
	AdditionalInfo    string
}

func (r *SeniorRegistration) Normalize() {
	r.GuardianName = strings.TrimSpace(r.GuardianName)
	r.Email = NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Relationship = Relationship(strings.ToLower(strings.TrimSpace(string(r.Relationship))))
	r.SeniorName = strings.TrimSpace(r.SeniorName)
	r.Address = r.Address.Normalized()
	r.CareType = CareType(strings.TrimSpace(string(r.CareType)))
	r.MedicalConditions = strings.TrimSpace(r.MedicalConditions)
	r.SpecialNeeds = strings.TrimSpace(r.SpecialNeeds)
	if strings.TrimSpace(string(r.PreferredGender)) == "" {
		r.PreferredGender = PreferNoPreference
	}
	r.AdditionalInfo = strings.TrimSpace(r.AdditionalInfo)
}

func (r SeniorRegistration) Validate() error {
	if err := requireText(r.GuardianName, "Please provide guardian name"); err != nil {
		return err
	}
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if err := ValidatePhone(r.Phone); err != nil {
		return err
	}
	if !r.Relationship.IsValid() {
		return invalid("relationship must be one of son, daughter, spouse, sibling, relative, self")
	}
	if err := requireText(r.SeniorName, "Please provide senior name"); err != nil {
		return err
	}
	if r.SeniorAge < MinSeniorAge {
		return invalid("senior age must be at least 50")
	}
	if err := r.Address.Validate(); err != nil {
		return err
	}
	return validateCarePreferences(r.CareType, r.MedicalConditions, r.PreferredGender, r.Budget, r.StartDate)
}

func validateCarePreferences(careType CareType, medical string, pref PreferredGender, budget float64, start time.Time) error {
	if !careType.IsValid() {
		return invalid("care type must be one of full-time, part-time, live-in, respite, overnight")
	}
	if err := requireText(medical, "medical conditions are required"); err != nil {
		return err
	}
	if !pref.IsValid() {
		return invalid("preferred gender must be one of male, female, no-preference")
	}
	if budget < 0 {
		return invalid("budget cannot be negative")
	}
	if start.IsZero() {
		return invalid("start date is required")
	}
	return nil
}

func NewSenior(seniorID id.SeniorID, reg SeniorRegistration, passwordHash string, now time.Time) (*Senior, error) {
	reg.Normalize()
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "password hash is required")
	}
	return &Senior{
		ID:                seniorID,
		GuardianName:      reg.GuardianName,
		Email:             reg.Email,
		Phone:             reg.Phone,
		Relationship:      reg.Relationship,
		SeniorName:        reg.SeniorName,
		SeniorAge:         reg.SeniorAge,
		Address:           reg.Address,
		CareType:          reg.CareType,
		MedicalConditions: reg.MedicalConditions,
		SpecialNeeds:      reg.SpecialNeeds,
		PreferredGender:   reg.PreferredGender,
		StartDate:         reg.StartDate,
		Budget:            reg.Budget,
		AdditionalInfo:    reg.AdditionalInfo,
		IsActive:          true,
		PasswordHash:      passwordHash,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// SeniorProfileUpdate lists the fields a family may change. Nil fields are left untouched.
type SeniorProfileUpdate struct {
	Phone             *string
	Address           *Address
	CareType          *CareType
	MedicalConditions *string
	SpecialNeeds      *string
	PreferredGender   *PreferredGender
	Budget            *float64
	AdditionalInfo    *string
}

func (s *Senior) ApplyProfileUpdate(u SeniorProfileUpdate, now time.Time) error {
	next := *s
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
	if u.CareType != nil {
		next.CareType = *u.CareType
	}
	if u.MedicalConditions != nil {
		next.MedicalConditions = strings.TrimSpace(*u.MedicalConditions)
	}
	if u.SpecialNeeds != nil {
		next.SpecialNeeds = strings.TrimSpace(*u.SpecialNeeds)
	}
	if u.PreferredGender != nil {
		next.PreferredGender = *u.PreferredGender
	}
	if u.Budget != nil {
		next.Budget = *u.Budget
	}
	if u.AdditionalInfo != nil {
		next.AdditionalInfo = strings.TrimSpace(*u.AdditionalInfo)
	}
	if err := validateCarePreferences(next.CareType, next.MedicalConditions, next.PreferredGender, next.Budget, next.StartDate); err != nil {
		return err
	}
	next.UpdatedAt = now
	*s = next
	return nil
}

// RecordLogin stamps the last successful login.
func (s *Senior) RecordLogin(now time.Time) {
	s.LastLoginAt = &now
}
