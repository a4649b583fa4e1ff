package handler

import (
	"strings"
	"time"

	"carenest/internal/booking/models"
	"carenest/internal/booking/service"
	identity "carenest/internal/identity/models"
	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

type CreateBookingRequest struct {
	CaregiverID         string           `json:"caregiverId"`
	StartDate           string           `json:"startDate"`
	EndDate             string           `json:"endDate"`
	StartTime           string           `json:"startTime"`
	EndTime             string           `json:"endTime"`
	Location            identity.Address `json:"location"`
	HourlyRate          *float64         `json:"hourlyRate"`
	TotalHours          float64          `json:"totalHours"`
	SpecialInstructions string           `json:"specialInstructions"`

	req models.Request
}

func (r *CreateBookingRequest) Validate() error {
	caregiverID, err := id.ParseCaregiverID(r.CaregiverID)
	if err != nil {
		return err
	}
	start, err := identity.ParseDate(r.StartDate, "startDate")
	if err != nil {
		return err
	}
	end, err := identity.ParseDate(r.EndDate, "endDate")
	if err != nil {
		return err
	}
	r.req = models.Request{
		CaregiverID: caregiverID,
		Window: models.Window{
			StartDate: start,
			EndDate:   end,
			StartTime: strings.TrimSpace(r.StartTime),
			EndTime:   strings.TrimSpace(r.EndTime),
		},
		Location:            r.Location,
		HourlyRate:          r.HourlyRate,
		TotalHours:          r.TotalHours,
		SpecialInstructions: r.SpecialInstructions,
	}
	return r.req.Validate()
}

func (r *CreateBookingRequest) Request() models.Request { return r.req }

type UpdateStatusRequest struct {
	Status         string  `json:"status"`
	CaregiverNotes *string `json:"caregiverNotes"`
}

func (r *UpdateStatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return dErrors.New(dErrors.CodeValidation, "status is required")
	}
	return nil
}

func (r *UpdateStatusRequest) Change() service.StatusChange {
	return service.StatusChange{Status: r.Status, CaregiverNotes: r.CaregiverNotes}
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

func (r *CancelRequest) Validate() error { return nil }

type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *ReviewRequest) Validate() error {
	if r.Rating == 0 || strings.TrimSpace(r.Comment) == "" {
		return dErrors.New(dErrors.CodeValidation, "Please provide rating and comment")
	}
	return nil
}

type PaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

func (r *PaymentRequest) Validate() error {
	if strings.TrimSpace(r.PaymentStatus) == "" {
		return dErrors.New(dErrors.CodeValidation, "paymentStatus is required")
	}
	return nil
}

type CancellationResponse struct {
	By     id.ActorRole `json:"cancelledBy"`
	Reason string       `json:"reason,omitempty"`
	At     time.Time    `json:"cancelledAt"`
}

type BookingResponse struct {
	ID                  string                `json:"id"`
	CaregiverID         string                `json:"caregiverId"`
	SeniorID            string                `json:"seniorId"`
	StartDate           string                `json:"startDate"`
	EndDate             string                `json:"endDate"`
	StartTime           string                `json:"startTime"`
	EndTime             string                `json:"endTime"`
	Location            identity.Address      `json:"location"`
	Status              models.Status         `json:"status"`
	HourlyRate          float64               `json:"hourlyRate"`
	TotalHours          float64               `json:"totalHours"`
	TotalAmount         float64               `json:"totalAmount"`
	PaymentStatus       models.PaymentStatus  `json:"paymentStatus"`
	PaymentDate         *time.Time            `json:"paymentDate,omitempty"`
	SpecialInstructions string                `json:"specialInstructions,omitempty"`
	CaregiverNotes      string                `json:"caregiverNotes,omitempty"`
	Reviewed            bool                  `json:"reviewed"`
	Cancellation        *CancellationResponse `json:"cancellation,omitempty"`
	CreatedAt           time.Time             `json:"createdAt"`
}

func toResponse(b *models.Booking) BookingResponse {
	out := BookingResponse{
		ID:                  b.ID.String(),
		CaregiverID:         b.CaregiverID.String(),
		SeniorID:            b.SeniorID.String(),
		StartDate:           b.Window.StartDate.Format(time.DateOnly),
		EndDate:             b.Window.EndDate.Format(time.DateOnly),
		StartTime:           b.Window.StartTime,
		EndTime:             b.Window.EndTime,
		Location:            b.Location,
		Status:              b.Status,
		HourlyRate:          b.HourlyRate,
		TotalHours:          b.TotalHours,
		TotalAmount:         b.TotalAmount,
		PaymentStatus:       b.PaymentStatus,
		PaymentDate:         b.PaymentDate,
		SpecialInstructions: b.SpecialInstructions,
		CaregiverNotes:      b.CaregiverNotes,
		Reviewed:            b.Reviewed,
		CreatedAt:           b.CreatedAt,
	}
	if c := b.Cancellation; c != nil {
		out.Cancellation = &CancellationResponse{By: c.By, Reason: c.Reason, At: c.At}
	}
	return out
}

type ListResponse struct {
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}
