// Package identitytest builds valid caregivers and seniors for tests.
package identitytest

import (
	"fmt"
	"sync/atomic"
	"time"

	"carenest/internal/identity/models"
	id "carenest/pkg/domain"
)

var seq atomic.Int64

// Epoch is the registration time used when a test does not care.
var Epoch = time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)

// CaregiverRegistration returns a valid registration with unique identity numbers.
func CaregiverRegistration() models.CaregiverRegistration {
	n := seq.Add(1)
	return models.CaregiverRegistration{
		FullName:        fmt.Sprintf("Caregiver %d", n),
		Email:           fmt.Sprintf("caregiver%d@example.com", n),
		Phone:           "9876543210",
		DateOfBirth:     time.Date(1988, 3, 4, 0, 0, 0, 0, time.UTC),
		Gender:          models.GenderFemale,
		Address:         models.Address{Street: "12 MG Road", City: "Pune", State: "Maharashtra", Pincode: "411001"},
		AadhaarNumber:   fmt.Sprintf("%012d", 100000000000+n),
		PANNumber:       fmt.Sprintf("ABCDE%04dF", n%10000),
		Experience:      4,
		Education:       "BSc Nursing",
		Specializations: []string{"Elderly Care"},
		Languages:       []string{"Hindi", "English"},
		Availability:    models.AvailabilityFullTime,
		HourlyRate:      500,
		Bio:             "Compassionate caregiver with hospital experience.",
	}
}

// CaregiverOption adjusts a fixture after construction.
type CaregiverOption func(*models.Caregiver)

func Verified(at time.Time) CaregiverOption {
	return func(c *models.Caregiver) { c.ApplyApproval(at) }
}

func Rejected(reason string) CaregiverOption {
	return func(c *models.Caregiver) { c.ApplyRejection(reason, c.RegisteredAt) }
}

func Inactive() CaregiverOption {
	return func(c *models.Caregiver) { c.IsActive = false }
}

func WithRate(rate float64) CaregiverOption {
	return func(c *models.Caregiver) { c.HourlyRate = rate }
}

func WithRating(rating float64, count int) CaregiverOption {
	return func(c *models.Caregiver) { c.Rating, c.ReviewCount = rating, count }
}

func RegisteredAt(t time.Time) CaregiverOption {
	return func(c *models.Caregiver) { c.RegisteredAt, c.UpdatedAt = t, t }
}

func With(fn func(*models.Caregiver)) CaregiverOption {
	return fn
}

// Caregiver builds a pending caregiver and applies opts in order.
func Caregiver(opts ...CaregiverOption) *models.Caregiver {
	c, err := models.NewCaregiver(id.NewCaregiverID(), CaregiverRegistration(), "$2a$04$fixturehash", Epoch)
	if err != nil {
		panic(err)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SeniorRegistration returns a valid family registration with a unique email.
func SeniorRegistration() models.SeniorRegistration {
	n := seq.Add(1)
	return models.SeniorRegistration{
		GuardianName:      fmt.Sprintf("Guardian %d", n),
		Email:             fmt.Sprintf("family%d@example.com", n),
		Phone:             "9123456780",
		Relationship:      models.RelationshipDaughter,
		SeniorName:        fmt.Sprintf("Senior %d", n),
		SeniorAge:         76,
		Address:           models.Address{City: "Pune", State: "Maharashtra", Pincode: "411002"},
		CareType:          models.CarePartTime,
		MedicalConditions: "Hypertension",
		StartDate:         time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Budget:            20000,
	}
}

func Senior() *models.Senior {
	s, err := models.NewSenior(id.NewSeniorID(), SeniorRegistration(), "$2a$04$fixturehash", Epoch)
	if err != nil {
		panic(err)
	}
	return s
}
