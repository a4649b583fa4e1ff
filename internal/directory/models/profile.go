package models

import (
	"time"

	identity "carenest/internal/identity/models"
)

// PublicProfile is what families see in the directory. Identity numbers,
// document references and credentials never leave the service.
type PublicProfile struct {
	ID                string           `json:"id"`
	FullName          string           `json:"fullName"`
	Email             string           `json:"email"`
	Phone             string           `json:"phone"`
	Gender            identity.Gender  `json:"gender"`
	ProfilePhoto      string           `json:"profilePhoto,omitempty"`
	Address           identity.Address `json:"address"`
	IsVerified        bool             `json:"isVerified"`
	VerifiedAt        *time.Time       `json:"verifiedAt,omitempty"`
	Experience        int              `json:"experience"`
	Education         string           `json:"education"`
	Specializations   []string         `json:"specializations"`
	Languages         []string         `json:"languages"`
	Availability      string           `json:"availability"`
	HourlyRate        float64          `json:"hourlyRate"`
	Bio               string           `json:"bio"`
	Certifications    []string         `json:"certifications"`
	Rating            float64          `json:"rating"`
	ReviewCount       int              `json:"reviewCount"`
	IsAvailable       bool             `json:"isAvailable"`
	CompletedBookings int              `json:"completedBookings"`
	RegisteredAt      time.Time        `json:"registeredAt"`
}

func NewPublicProfile(c *identity.Caregiver) PublicProfile {
	p := PublicProfile{
		ID:                c.ID.String(),
		FullName:          c.FullName,
		Email:             c.Email,
		Phone:             c.Phone,
		Gender:            c.Gender,
		ProfilePhoto:      c.ProfilePhoto,
		Address:           c.Address,
		IsVerified:        c.IsVerified(),
		Experience:        c.Experience,
		Education:         c.Education,
		Specializations:   orEmpty(c.Specializations),
		Languages:         orEmpty(c.Languages),
		Availability:      string(c.Availability),
		HourlyRate:        c.HourlyRate,
		Bio:               c.Bio,
		Certifications:    orEmpty(c.Certifications),
		Rating:            c.Rating,
		ReviewCount:       c.ReviewCount,
		IsAvailable:       c.IsAvailable,
		CompletedBookings: c.CompletedBookings,
		RegisteredAt:      c.RegisteredAt,
	}
	if at, ok := c.Verification.VerifiedAt(); ok {
		p.VerifiedAt = &at
	}
	return p
}

func orEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
