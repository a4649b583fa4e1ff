package handler

import (
	"time"

	"carenest/internal/identity/models"
	"carenest/internal/identity/service"
)

// AccountResponse is the short identity echoed by register and login.
type AccountResponse struct {
	ID                 string `json:"id"`
	Type               string `json:"userType"`
	Email              string `json:"email"`
	FullName           string `json:"fullName"`
	Phone              string `json:"phone"`
	VerificationStatus string `json:"verificationStatus,omitempty"`
}

type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	User      AccountResponse `json:"user"`
}

// MeResponse carries exactly one of Caregiver or Senior.
type MeResponse struct {
	UserType  string                `json:"userType"`
	Caregiver *models.CaregiverView `json:"caregiver,omitempty"`
	Senior    *models.SeniorView    `json:"senior,omitempty"`
}

type StatsResponse struct {
	TotalBookings      int     `json:"totalBookings"`
	CompletedBookings  int     `json:"completedBookings"`
	TotalHoursWorked   float64 `json:"totalHoursWorked"`
	Rating             float64 `json:"rating"`
	ReviewCount        int     `json:"reviewCount"`
	Earnings           float64 `json:"earnings"`
	VerificationStatus string  `json:"verificationStatus"`
}

func toLoginResponse(res *service.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User: AccountResponse{
			ID:                 res.Account.ID.String(),
			Type:               res.Account.Type.String(),
			Email:              res.Account.Email,
			FullName:           res.Account.FullName,
			Phone:              res.Account.Phone,
			VerificationStatus: string(res.Account.VerificationStatus),
		},
	}
}

func caregiverAccount(c *models.Caregiver) AccountResponse {
	return AccountResponse{
		ID:                 c.ID.String(),
		Type:               "caregiver",
		Email:              c.Email,
		FullName:           c.FullName,
		Phone:              c.Phone,
		VerificationStatus: string(c.Verification.Status()),
	}
}

func seniorAccount(s *models.Senior) AccountResponse {
	return AccountResponse{
		ID:       s.ID.String(),
		Type:     "family",
		Email:    s.Email,
		FullName: s.GuardianName,
		Phone:    s.Phone,
	}
}

func toMeResponse(a *service.Account) MeResponse {
	resp := MeResponse{UserType: a.Type.String()}
	if a.Caregiver != nil {
		v := models.NewCaregiverView(a.Caregiver)
		resp.Caregiver = &v
	}
	if a.Senior != nil {
		v := models.NewSeniorView(a.Senior)
		resp.Senior = &v
	}
	return resp
}

func toStatsResponse(st *service.CaregiverStats) StatsResponse {
	return StatsResponse{
		TotalBookings:      st.TotalBookings,
		CompletedBookings:  st.CompletedBookings,
		TotalHoursWorked:   st.TotalHoursWorked,
		Rating:             st.Rating,
		ReviewCount:        st.ReviewCount,
		Earnings:           st.Earnings,
		VerificationStatus: string(st.VerificationStatus),
	}
}
