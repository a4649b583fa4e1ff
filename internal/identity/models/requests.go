package models

import (
	"strings"
	"time"

	dErrors "carenest/pkg/domain-errors"
)

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, invalid(field + " is required")
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, invalid(field + " must be a date (YYYY-MM-DD)")
}

type RegisterCaregiverRequest struct {
	FullName        string   `json:"fullName"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	Phone           string   `json:"phone"`
	DateOfBirth     string   `json:"dateOfBirth"`
	Gender          string   `json:"gender"`
	ProfilePhoto    string   `json:"profilePhoto"`
	Address         Address  `json:"address"`
	AadhaarNumber   string   `json:"aadhaarNumber"`
	PANNumber       string   `json:"panNumber"`
	AadhaarCard     string   `json:"aadhaarCard"`
	PanCard         string   `json:"panCard"`
	Experience      int      `json:"experience"`
	Education       string   `json:"education"`
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	Availability    string   `json:"availability"`
	HourlyRate      float64  `json:"hourlyRate"`
	Bio             string   `json:"bio"`
	Certifications  []string `json:"certifications"`
	References      string   `json:"references"`

	dob time.Time
}

// Validate checks the transport-level shape. Domain rules run at construction.
func (r *RegisterCaregiverRequest) Validate() error {
	if err := ValidatePassword(r.Password); err != nil {
		return err
	}
	dob, err := ParseDate(r.DateOfBirth, "date of birth")
	if err != nil {
		return err
	}
	r.dob = dob
	return nil
}

func (r *RegisterCaregiverRequest) Registration() CaregiverRegistration {
	return CaregiverRegistration{
		FullName:        r.FullName,
		Email:           r.Email,
		Phone:           r.Phone,
		DateOfBirth:     r.dob,
		Gender:          Gender(r.Gender),
		ProfilePhoto:    r.ProfilePhoto,
		Address:         r.Address,
		AadhaarNumber:   r.AadhaarNumber,
		PANNumber:       r.PANNumber,
		AadhaarCard:     r.AadhaarCard,
		PanCard:         r.PanCard,
		Experience:      r.Experience,
		Education:       r.Education,
		Specializations: r.Specializations,
		Languages:       r.Languages,
		Availability:    Availability(r.Availability),
		HourlyRate:      r.HourlyRate,
		Bio:             r.Bio,
		Certifications:  r.Certifications,
		References:      r.References,
	}
}

type RegisterSeniorRequest struct {
	GuardianName      string  `json:"guardianName"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	Phone             string  `json:"phone"`
	Relationship      string  `json:"relationship"`
	SeniorName        string  `json:"seniorName"`
	SeniorAge         int     `json:"seniorAge"`
	Address           Address `json:"address"`
	CareType          string  `json:"careType"`
	MedicalConditions string  `json:"medicalConditions"`
	SpecialNeeds      string  `json:"specialNeeds"`
	PreferredGender   string  `json:"preferredGender"`
	StartDate         string  `json:"startDate"`
	Budget            float64 `json:"budget"`
	AdditionalInfo    string  `json:"additionalInfo"`

	start time.Time
}

func (r *RegisterSeniorRequest) Validate() error {
	if err := ValidatePassword(r.Password); err != nil {
		return err
	}
	start, err := ParseDate(r.StartDate, "start date")
	if err != nil {
		return err
	}
	r.start = start
	return nil
}

func (r *RegisterSeniorRequest) Registration() SeniorRegistration {
	return SeniorRegistration{
		GuardianName:      r.GuardianName,
		Email:             r.Email,
		Phone:             r.Phone,
		Relationship:      Relationship(r.Relationship),
		SeniorName:        r.SeniorName,
		SeniorAge:         r.SeniorAge,
		Address:           r.Address,
		CareType:          CareType(r.CareType),
		MedicalConditions: r.MedicalConditions,
		SpecialNeeds:      r.SpecialNeeds,
		PreferredGender:   PreferredGender(r.PreferredGender),
		StartDate:         r.start,
		Budget:            r.Budget,
		AdditionalInfo:    r.AdditionalInfo,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || r.Password == "" || strings.TrimSpace(r.UserType) == "" {
		return dErrors.New(dErrors.CodeValidation, "Please provide email, password, and user type")
	}
	return nil
}

// UpdateCaregiverProfileRequest accepts only the allow-listed profile fields;
// anything else in the body is ignored.
type UpdateCaregiverProfileRequest struct {
	Phone           *string  `json:"phone"`
	Address         *Address `json:"address"`
	Experience      *int     `json:"experience"`
	Education       *string  `json:"education"`
	Specializations []string `json:"specializations"`
	Languages       []string `json:"languages"`
	Availability    *string  `json:"availability"`
	HourlyRate      *float64 `json:"hourlyRate"`
	Bio             *string  `json:"bio"`
	Certifications  []string `json:"certifications"`
	IsAvailable     *bool    `json:"isAvailable"`
}

func (r *UpdateCaregiverProfileRequest) Validate() error { return nil }

func (r *UpdateCaregiverProfileRequest) Update() CaregiverProfileUpdate {
	u := CaregiverProfileUpdate{
		Phone:           r.Phone,
		Address:         r.Address,
		Experience:      r.Experience,
		Education:       r.Education,
		Specializations: r.Specializations,
		Languages:       r.Languages,
		HourlyRate:      r.HourlyRate,
		Bio:             r.Bio,
		Certifications:  r.Certifications,
		IsAvailable:     r.IsAvailable,
	}
	if r.Availability != nil {
		a := Availability(*r.Availability)
		u.Availability = &a
	}
	return u
}

type UpdateSeniorProfileRequest struct {
	Phone             *string  `json:"phone"`
	Address           *Address `json:"address"`
	CareType          *string  `json:"careType"`
	MedicalConditions *string  `json:"medicalConditions"`
	SpecialNeeds      *string  `json:"specialNeeds"`
	PreferredGender   *string  `json:"preferredGender"`
	Budget            *float64 `json:"budget"`
	AdditionalInfo    *string  `json:"additionalInfo"`
}

func (r *UpdateSeniorProfileRequest) Validate() error { return nil }

func (r *UpdateSeniorProfileRequest) Update() SeniorProfileUpdate {
	u := SeniorProfileUpdate{
		Phone:             r.Phone,
		Address:           r.Address,
		MedicalConditions: r.MedicalConditions,
		SpecialNeeds:      r.SpecialNeeds,
		Budget:            r.Budget,
		AdditionalInfo:    r.AdditionalInfo,
	}
	if r.CareType != nil {
		c := CareType(*r.CareType)
		u.CareType = &c
	}
	if r.PreferredGender != nil {
		p := PreferredGender(*r.PreferredGender)
		u.PreferredGender = &p
	}
	return u
}
