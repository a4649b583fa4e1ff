package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

type CaregiverModelSuite struct {
	suite.Suite
	now time.Time
}

func TestCaregiverModelSuite(t *testing.T) {
	suite.Run(t, new(CaregiverModelSuite))
}

func (s *CaregiverModelSuite) SetupTest() {
	s.now = time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
}

func validCaregiverRegistration() CaregiverRegistration {
	return CaregiverRegistration{
		FullName:        "Asha Nair",
		Email:           "Asha@Example.com ",
		Phone:           "9876543210",
		DateOfBirth:     time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:          GenderFemale,
		Address:         Address{City: "Kochi", State: "Kerala", Pincode: "682001"},
		AadhaarNumber:   "123412341234",
		PANNumber:       "abcde1234f",
		Experience:      5,
		Education:       "GNM Nursing",
		Specializations: []string{"Elderly Care", "Dementia Care"},
		Languages:       []string{"Malayalam", " English "},
		Availability:    AvailabilityFullTime,
		HourlyRate:      500,
		Bio:             "Experienced home nurse.",
	}
}

func (s *CaregiverModelSuite) TestNewCaregiverNormalizes() {
	cg, err := NewCaregiver(id.NewCaregiverID(), validCaregiverRegistration(), "hash", s.now)
	s.Require().NoError(err)

	s.Equal("asha@example.com", cg.Email)
	s.Equal("ABCDE1234F", cg.PANNumber)
	s.Equal([]string{"Malayalam", "English"}, cg.Languages)
	s.Equal(PendingDocument, cg.Documents.AadhaarCard.Ref)
	s.Equal(PendingDocument, cg.Documents.PanCard.Ref)
	s.Equal(VerificationPending, cg.Verification.Status())
	s.False(cg.IsVerified())
	s.True(cg.IsActive)
	s.True(cg.IsAvailable)
	s.Zero(cg.Rating)
}

func (s *CaregiverModelSuite) TestRegistrationValidation() {
	cases := []struct {
		name   string
		mutate func(r *CaregiverRegistration)
	}{
		{"phone not 10 digits", func(r *CaregiverRegistration) { r.Phone = "12345" }},
		{"bad email", func(r *CaregiverRegistration) { r.Email = "not-an-email" }},
		{"bad pincode", func(r *CaregiverRegistration) { r.Address.Pincode = "12" }},
		{"missing city", func(r *CaregiverRegistration) { r.Address.City = "" }},
		{"aadhaar 11 digits", func(r *CaregiverRegistration) { r.AadhaarNumber = "12341234123" }},
		{"bad pan", func(r *CaregiverRegistration) { r.PANNumber = "1234567890" }},
		{"unknown gender", func(r *CaregiverRegistration) { r.Gender = "robot" }},
		{"negative experience", func(r *CaregiverRegistration) { r.Experience = -1 }},
		{"unknown specialization", func(r *CaregiverRegistration) { r.Specializations = []string{"Astrology"} }},
		{"unknown availability", func(r *CaregiverRegistration) { r.Availability = "weekends" }},
		{"negative rate", func(r *CaregiverRegistration) { r.HourlyRate = -5 }},
		{"missing bio", func(r *CaregiverRegistration) { r.Bio = "" }},
		{"bio too long", func(r *CaregiverRegistration) { r.Bio = strings.Repeat("a", 1001) }},
		{"references too long", func(r *CaregiverRegistration) { r.References = strings.Repeat("a", 501) }},
		{"missing dob", func(r *CaregiverRegistration) { r.DateOfBirth = time.Time{} }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			reg := validCaregiverRegistration()
			tc.mutate(&reg)
			_, err := NewCaregiver(id.NewCaregiverID(), reg, "hash", s.now)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation), "got %v", err)
		})
	}
}

func (s *CaregiverModelSuite) TestApprovalMarksDocuments() {
	cg, _ := NewCaregiver(id.NewCaregiverID(), validCaregiverRegistration(), "hash", s.now)
	s.Require().NoError(cg.Approve(s.now))

	s.True(cg.IsVerified())
	s.True(cg.Documents.AadhaarCard.Verified)
	s.True(cg.Documents.PanCard.Verified)
	s.True(cg.IsListed())
	s.NoError(cg.Bookable())
}

func (s *CaregiverModelSuite) TestRejectedIsNotBookable() {
	cg, _ := NewCaregiver(id.NewCaregiverID(), validCaregiverRegistration(), "hash", s.now)
	s.Require().NoError(cg.Reject("", s.now))
	s.Equal(DefaultRejectionReason, cg.Verification.RejectionReason())
	s.True(dErrors.HasCode(cg.Bookable(), dErrors.CodeInvalidState))
	s.True(dErrors.HasCode(cg.Approve(s.now), dErrors.CodeInvalidState))
}

func (s *CaregiverModelSuite) TestDeactivatedIsNotListed() {
	cg, _ := NewCaregiver(id.NewCaregiverID(), validCaregiverRegistration(), "hash", s.now)
	s.Require().NoError(cg.Approve(s.now))
	s.Require().NoError(cg.Deactivate(s.now))
	s.False(cg.IsListed())
	s.True(dErrors.HasCode(cg.Deactivate(s.now), dErrors.CodeInvalidState))
}

func (s *CaregiverModelSuite) TestProfileUpdateIsAtomic() {
	cg, _ := NewCaregiver(id.NewCaregiverID(), validCaregiverRegistration(), "hash", s.now)
	rate := 650.0
	badPhone := "12"
	err := cg.ApplyProfileUpdate(CaregiverProfileUpdate{HourlyRate: &rate, Phone: &badPhone}, s.now)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Equal(500.0, cg.HourlyRate, "failed update must not partially apply")

	avail := false
	s.Require().NoError(cg.ApplyProfileUpdate(CaregiverProfileUpdate{HourlyRate: &rate, IsAvailable: &avail}, s.now.Add(time.Minute)))
	s.Equal(650.0, cg.HourlyRate)
	s.False(cg.IsAvailable)
	s.Equal(s.now.Add(time.Minute), cg.UpdatedAt)
}

func (s *CaregiverModelSuite) TestStatsAndEarnings() {
	cg, _ := NewCaregiver(id.NewCaregiverID(), validCaregiverRegistration(), "hash", s.now)
	cg.RecordBooking(s.now)
	cg.RecordCompletion(3, s.now)
	cg.ApplyRating(4, 1, s.now)

	s.Equal(1, cg.TotalBookings)
	s.Equal(1, cg.CompletedBookings)
	s.Equal(3.0, cg.TotalHoursWorked)
	s.Equal(1500.0, cg.Earnings())
	s.Equal(4.0, cg.Rating)
	s.Equal(1, cg.ReviewCount)
}
