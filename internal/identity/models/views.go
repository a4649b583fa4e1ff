package models

import "time"

// CaregiverView is the owner/admin projection of a caregiver. It never carries
// the password hash.
type CaregiverView struct {
	ID                 string     `json:"id"`
	FullName           string     `json:"fullName"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	DateOfBirth        string     `json:"dateOfBirth"`
	Gender             Gender     `json:"gender"`
	ProfilePhoto       string     `json:"profilePhoto,omitempty"`
	Address            Address    `json:"address"`
	AadhaarNumber      string     `json:"aadhaarNumber"`
	PANNumber          string     `json:"panNumber"`
	Documents          DocsView   `json:"documents"`
	VerificationStatus string     `json:"verificationStatus"`
	IsVerified         bool       `json:"isVerified"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
	RejectionReason    string     `json:"rejectionReason,omitempty"`
	Experience         int        `json:"experience"`
	Education          string     `json:"education"`
	Specializations    []string   `json:"specializations"`
	Languages          []string   `json:"languages"`
	Availability       string     `json:"availability"`
	HourlyRate         float64    `json:"hourlyRate"`
	Bio                string     `json:"bio"`
	Certifications     []string   `json:"certifications"`
	References         string     `json:"references,omitempty"`
	Rating             float64    `json:"rating"`
	ReviewCount        int        `json:"reviewCount"`
	IsActive           bool       `json:"isActive"`
	IsAvailable        bool       `json:"isAvailable"`
	TotalBookings      int        `json:"totalBookings"`
	CompletedBookings  int        `json:"completedBookings"`
	TotalHoursWorked   float64    `json:"totalHoursWorked"`
	RegisteredAt       time.Time  `json:"registeredAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
	LastLoginAt        *time.Time `json:"lastLoginAt,omitempty"`
}

type DocsView struct {
	AadhaarCard         string `json:"aadhaarCard"`
	AadhaarCardVerified bool   `json:"aadhaarCardVerified"`
	PanCard             string `json:"panCard"`
	PanCardVerified     bool   `json:"panCardVerified"`
}

func NewCaregiverView(c *Caregiver) CaregiverView {
	v := CaregiverView{
		ID:           c.ID.String(),
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		DateOfBirth:  c.DateOfBirth.Format(time.DateOnly),
		Gender:       c.Gender,
		ProfilePhoto: c.ProfilePhoto,
		Address:      c.Address,

		AadhaarNumber: c.AadhaarNumber,
		PANNumber:     c.PANNumber,
		Documents: DocsView{
			AadhaarCard:         c.Documents.AadhaarCard.Ref,
			AadhaarCardVerified: c.Documents.AadhaarCard.Verified,
			PanCard:             c.Documents.PanCard.Ref,
			PanCardVerified:     c.Documents.PanCard.Verified,
		},
		VerificationStatus: string(c.Verification.Status()),
		IsVerified:         c.IsVerified(),
		RejectionReason:    c.Verification.RejectionReason(),
		Experience:         c.Experience,
		Education:          c.Education,
		Specializations:    nonNil(c.Specializations),
		Languages:          nonNil(c.Languages),
		Availability:       string(c.Availability),
		HourlyRate:         c.HourlyRate,
		Bio:                c.Bio,
		Certifications:     nonNil(c.Certifications),
		References:         c.References,
		Rating:             c.Rating,
		ReviewCount:        c.ReviewCount,
		IsActive:           c.IsActive,
		IsAvailable:        c.IsAvailable,
		TotalBookings:      c.TotalBookings,
		CompletedBookings:  c.CompletedBookings,
		TotalHoursWorked:   c.TotalHoursWorked,
		RegisteredAt:       c.RegisteredAt,
		UpdatedAt:          c.UpdatedAt,
		LastLoginAt:        c.LastLoginAt,
	}
	if at, ok := c.Verification.VerifiedAt(); ok {
		v.VerifiedAt = &at
	}
	return v
}

// SeniorView is the family's own view of their account.
type SeniorView struct {
	ID                string     `json:"id"`
	GuardianName      string     `json:"guardianName"`
	Email             string     `json:"email"`
	Phone             string     `json:"phone"`
	Relationship      string     `json:"relationship"`
	SeniorName        string     `json:"seniorName"`
	SeniorAge         int        `json:"seniorAge"`
	Address           Address    `json:"address"`
	CareType          string     `json:"careType"`
	MedicalConditions string     `json:"medicalConditions"`
	SpecialNeeds      string     `json:"specialNeeds,omitempty"`
	PreferredGender   string     `json:"preferredGender"`
	StartDate         string     `json:"startDate"`
	Budget            float64    `json:"budget"`
	AdditionalInfo    string     `json:"additionalInfo,omitempty"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	LastLoginAt       *time.Time `json:"lastLoginAt,omitempty"`
}

func NewSeniorView(s *Senior) SeniorView {
	return SeniorView{
		ID:                s.ID.String(),
		GuardianName:      s.GuardianName,
		Email:             s.Email,
		Phone:             s.Phone,
		Relationship:      string(s.Relationship),
		SeniorName:        s.SeniorName,
		SeniorAge:         s.SeniorAge,
		Address:           s.Address,
		CareType:          string(s.CareType),
		MedicalConditions: s.MedicalConditions,
		SpecialNeeds:      s.SpecialNeeds,
		PreferredGender:   string(s.PreferredGender),
		StartDate:         s.StartDate.Format(time.DateOnly),
		Budget:            s.Budget,
		AdditionalInfo:    s.AdditionalInfo,
		IsActive:          s.IsActive,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		LastLoginAt:       s.LastLoginAt,
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
