// Package models holds reviews and the rating summary derived from them.
package models

import (
	"strings"
	"time"

	id "carenest/pkg/domain"
	dErrors "carenest/pkg/domain-errors"
)

const maxTextLen = 500

// Review is one family's rating of one completed booking. Only visibility and
// the caregiver's response change after creation.
type Review struct {
	ID           id.ReviewID
	CaregiverID  id.CaregiverID
	SeniorID     id.SeniorID
	BookingID    id.BookingID
	Rating       int
	Comment      string
	Response     string
	ResponseDate *time.Time
	IsVisible    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func New(reviewID id.ReviewID, caregiverID id.CaregiverID, seniorID id.SeniorID, bookingID id.BookingID, rating int, comment string, now time.Time) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, dErrors.New(dErrors.CodeValidation, "rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "Please provide a review comment")
	}
	if len([]rune(comment)) > maxTextLen {
		return nil, dErrors.New(dErrors.CodeValidation, "Review cannot exceed 500 characters")
	}
	return &Review{
		ID:          reviewID,
		CaregiverID: caregiverID,
		SeniorID:    seniorID,
		BookingID:   bookingID,
		Rating:      rating,
		Comment:     comment,
		IsVisible:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Respond records the caregiver's reply and stamps its date.
func (r *Review) Respond(response string, now time.Time) error {
	response = strings.TrimSpace(response)
	if response == "" {
		return dErrors.New(dErrors.CodeValidation, "response cannot be empty")
	}
	if len([]rune(response)) > maxTextLen {
		return dErrors.New(dErrors.CodeValidation, "response cannot exceed 500 characters")
	}
	r.Response = response
	r.ResponseDate = &now
	r.UpdatedAt = now
	return nil
}

// SetVisible reports whether the flag actually changed.
func (r *Review) SetVisible(visible bool, now time.Time) bool {
	if r.IsVisible == visible {
		return false
	}
	r.IsVisible = visible
	r.UpdatedAt = now
	return true
}

// Summary is a caregiver's rating snapshot over visible reviews.
type Summary struct {
	Average float64
	Count   int
}

// Summarize averages the visible reviews. No visible reviews yields a zero summary.
func Summarize(reviews []*Review) Summary {
	var sum, n int
	for _, r := range reviews {
		if !r.IsVisible {
			continue
		}
		sum += r.Rating
		n++
	}
	if n == 0 {
		return Summary{}
	}
	return Summary{Average: float64(sum) / float64(n), Count: n}
}
