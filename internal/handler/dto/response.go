package dto

import (
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

type VaccineResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Dosage         string   `json:"dosage"`
	Availability   string   `json:"availability"`
	Location       string   `json:"location"`
	AvailableSlots int      `json:"available_slots"`
	Price          float64  `json:"price"`
	AgeGroups      []string `json:"age_groups"`
	IsActive       bool     `json:"is_active"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type DoseResponse struct {
	Label          string  `json:"label"`
	ScheduledDate  string  `json:"scheduled_date"`
	Completed      bool    `json:"completed"`
	CompletionDate *string `json:"completion_date,omitempty"`
}

type BookingResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id,omitempty"`
	VaccineID   string         `json:"vaccine_id,omitempty"`
	BookingDate string         `json:"booking_date"`
	Status      string         `json:"status"`
	UserInfo    UserInfo       `json:"user_info"`
	Vaccine     VaccineInfo    `json:"vaccine_info"`
	Notes       string         `json:"notes,omitempty"`
	Doses       []DoseResponse `json:"doses"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

type VaccineInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type RemindersResponse struct {
	Sent int `json:"sent"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToVaccineResponse(v *domain.Vaccine) VaccineResponse {
	groups := make([]string, 0, len(v.AgeGroups))
	for _, g := range v.AgeGroups {
		groups = append(groups, string(g))
	}

	return VaccineResponse{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		Dosage:         v.Dosage,
		Availability:   v.Availability.Format(DateLayout),
		Location:       v.Location,
		AvailableSlots: v.AvailableSlots,
		Price:          v.Price,
		AgeGroups:      groups,
		IsActive:       v.IsActive,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      v.UpdatedAt.Format(time.RFC3339),
	}
}

func ToVaccineResponses(list []*domain.Vaccine) []VaccineResponse {
	resp := make([]VaccineResponse, 0, len(list))
	for _, v := range list {
		resp = append(resp, ToVaccineResponse(v))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	doses := make([]DoseResponse, 0, len(b.Doses))
	for _, d := range b.Doses {
		dr := DoseResponse{
			Label:         d.Label,
			ScheduledDate: d.ScheduledDate.Format(DateLayout),
			Completed:     d.Completed,
		}
		if d.CompletionDate != nil {
			s := d.CompletionDate.Format(DateLayout)
			dr.CompletionDate = &s
		}
		doses = append(doses, dr)
	}

	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		VaccineID:   b.VaccineID,
		BookingDate: b.BookingDate.Format(DateLayout),
		Status:      string(b.Status),
		UserInfo: UserInfo{
			Name:  b.UserInfo.Name,
			Email: b.UserInfo.Email,
			Phone: b.UserInfo.Phone,
		},
		Vaccine: VaccineInfo{
			Name:     b.VaccineInfo.Name,
			Location: b.VaccineInfo.Location,
		},
		Notes:     b.Notes,
		Doses:     doses,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(list []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Role:           string(u.Role),
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
