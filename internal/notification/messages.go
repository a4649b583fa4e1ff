package notification

import "strconv"

// Builders for the messages the marketplace sends. Services pass plain values
// so this package stays independent of the domain models.

func CaregiverRegistered(email, fullName string) Event {
	return Event{
		Kind:      KindCaregiverRegistered,
		Recipient: email,
		Subject:   "Welcome to CareNest - Registration Successful!",
		Data:      map[string]string{"fullName": fullName},
	}
}

func AdminCaregiverPending(adminEmail, caregiverID, fullName, email, city string) Event {
	return Event{
		Kind:      KindAdminCaregiverPending,
		Recipient: adminEmail,
		Subject:   "New Caregiver Registration - Action Required",
		Data: map[string]string{
			"caregiverId": caregiverID,
			"fullName":    fullName,
			"email":       email,
			"city":        city,
		},
	}
}

func SeniorRegistered(email, guardianName, seniorName string) Event {
	return Event{
		Kind:      KindSeniorRegistered,
		Recipient: email,
		Subject:   "Welcome to CareNest",
		Data:      map[string]string{"guardianName": guardianName, "seniorName": seniorName},
	}
}

func CaregiverApproved(email, fullName string) Event {
	return Event{
		Kind:      KindCaregiverApproved,
		Recipient: email,
		Subject:   "Congratulations! Your CareNest Profile is Approved",
		Data:      map[string]string{"fullName": fullName},
	}
}

func CaregiverRejected(email, fullName, reason string) Event {
	return Event{
		Kind:      KindCaregiverRejected,
		Recipient: email,
		Subject:   "CareNest Registration Update",
		Data:      map[string]string{"fullName": fullName, "reason": reason},
	}
}

func BookingRequested(caregiverEmail, bookingID, seniorName, startDate string) Event {
	return Event{
		Kind:      KindBookingRequested,
		Recipient: caregiverEmail,
		Subject:   "New booking request",
		Data:      map[string]string{"bookingId": bookingID, "seniorName": seniorName, "startDate": startDate},
	}
}

func BookingStatusChanged(recipient, bookingID, status string) Event {
	return Event{
		Kind:      KindBookingStatusChanged,
		Recipient: recipient,
		Subject:   "Your booking is now " + status,
		Data:      map[string]string{"bookingId": bookingID, "status": status},
	}
}

func BookingCancelled(recipient, bookingID, cancelledBy, reason string) Event {
	return Event{
		Kind:      KindBookingCancelled,
		Recipient: recipient,
		Subject:   "Booking cancelled",
		Data:      map[string]string{"bookingId": bookingID, "cancelledBy": cancelledBy, "reason": reason},
	}
}

func ReviewReceived(caregiverEmail, bookingID string, rating int) Event {
	return Event{
		Kind:      KindReviewReceived,
		Recipient: caregiverEmail,
		Subject:   "You received a new review",
		Data:      map[string]string{"bookingId": bookingID, "rating": strconv.Itoa(rating)},
	}
}
