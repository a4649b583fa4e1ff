// Package bookingtest builds valid bookings for tests.
package bookingtest

import (
	"time"

	"carenest/internal/booking/models"
	identity "carenest/internal/identity/models"
	id "carenest/pkg/domain"
)

// Request is a one-day, three-hour booking request for caregiverID.
func Request(caregiverID id.CaregiverID) models.Request {
	day := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	return models.Request{
		CaregiverID: caregiverID,
		Window: models.Window{
			StartDate: day,
			EndDate:   day,
			StartTime: "09:00",
			EndTime:   "12:00",
		},
		Location:   identity.Address{Street: "4 Lake View", City: "Pune", State: "Maharashtra", Pincode: "411001"},
		TotalHours: 3,
	}
}

// Booking builds a pending booking at rate 500 created at createdAt.
func Booking(caregiverID id.CaregiverID, seniorID id.SeniorID, createdAt time.Time) *models.Booking {
	b, err := models.New(id.NewBookingID(), seniorID, Request(caregiverID), 500, createdAt)
	if err != nil {
		panic(err)
	}
	return b
}
