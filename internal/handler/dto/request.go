package dto

import (
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date (2006-01-02) or a full RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("expected YYYY-MM-DD or RFC3339")
	}
	return t.UTC(), nil
}

type CreateVaccineRequest struct {
	Name           string   `json:"name" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Dosage         string   `json:"dosage" binding:"required"`
	Availability   string   `json:"availability" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	AvailableSlots *int     `json:"available_slots"`
	Price          float64  `json:"price"`
	AgeGroups      []string `json:"age_groups"`
	IsActive       *bool    `json:"is_active"`
}

func (r CreateVaccineRequest) ToInput() (domain.CreateVaccineInput, error) {
	availability, err := ParseDate(r.Availability)
	if err != nil {
		return domain.CreateVaccineInput{}, fmt.Errorf("invalid availability: %w", err)
	}

	return domain.CreateVaccineInput{
		Name:           r.Name,
		Description:    r.Description,
		Dosage:         r.Dosage,
		Availability:   availability,
		Location:       r.Location,
		AvailableSlots: r.AvailableSlots,
		Price:          r.Price,
		AgeGroups:      toAgeGroups(r.AgeGroups),
		IsActive:       r.IsActive,
	}, nil
}

type UpdateVaccineRequest struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Dosage         *string  `json:"dosage"`
	Availability   *string  `json:"availability"`
	Location       *string  `json:"location"`
	AvailableSlots *int     `json:"available_slots"`
	Price          *float64 `json:"price"`
	AgeGroups      []string `json:"age_groups"`
	IsActive       *bool    `json:"is_active"`
}

func (r UpdateVaccineRequest) ToInput() (domain.UpdateVaccineInput, error) {
	in := domain.UpdateVaccineInput{
		Name:           r.Name,
		Description:    r.Description,
		Dosage:         r.Dosage,
		Location:       r.Location,
		AvailableSlots: r.AvailableSlots,
		Price:          r.Price,
		AgeGroups:      toAgeGroups(r.AgeGroups),
		IsActive:       r.IsActive,
	}
	if r.Availability != nil {
		t, err := ParseDate(*r.Availability)
		if err != nil {
			return in, fmt.Errorf("invalid availability: %w", err)
		}
		in.Availability = &t
	}
	return in, nil
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type DoseRequest struct {
	Label         string `json:"label"`
	ScheduledDate string `json:"scheduled_date"`
	Completed     bool   `json:"completed"`
}

type CreateBookingRequest struct {
	VaccineID   string        `json:"vaccine_id" binding:"required,uuid"`
	UserID      string        `json:"user_id" binding:"omitempty,uuid"`
	UserInfo    UserInfo      `json:"user_info"`
	BookingDate string        `json:"booking_date" binding:"required"`
	Notes       string        `json:"notes"`
	Doses       []DoseRequest `json:"doses"`
}

func (r CreateBookingRequest) ToInput() (domain.CreateBookingInput, error) {
	bookingDate, err := ParseDate(r.BookingDate)
	if err != nil {
		return domain.CreateBookingInput{}, fmt.Errorf("invalid booking_date: %w", err)
	}
	doses, err := toDoses(r.Doses)
	if err != nil {
		return domain.CreateBookingInput{}, err
	}

	return domain.CreateBookingInput{
		VaccineID: r.VaccineID,
		UserID:    r.UserID,
		UserInfo: domain.UserInfo{
			Name:  r.UserInfo.Name,
			Email: r.UserInfo.Email,
			Phone: r.UserInfo.Phone,
		},
		BookingDate: bookingDate,
		Notes:       r.Notes,
		Doses:       doses,
	}, nil
}

type UpdateBookingRequest struct {
	Status      *string       `json:"status"`
	BookingDate *string       `json:"booking_date"`
	Notes       *string       `json:"notes"`
	Doses       []DoseRequest `json:"doses"`
}

func (r UpdateBookingRequest) ToInput() (domain.UpdateBookingInput, error) {
	in := domain.UpdateBookingInput{Notes: r.Notes}
	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		in.Status = &status
	}
	if r.BookingDate != nil {
		t, err := ParseDate(*r.BookingDate)
		if err != nil {
			return in, fmt.Errorf("invalid booking_date: %w", err)
		}
		in.BookingDate = &t
	}
	if r.Doses != nil {
		doses, err := toDoses(r.Doses)
		if err != nil {
			return in, err
		}
		in.Doses = doses
	}
	return in, nil
}

type CompleteDoseRequest struct {
	DoseIndex *int `json:"dose_index" binding:"required"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

// AdminCreateUserRequest is the only request that may set a role.
type AdminCreateUserRequest struct {
	CreateUserRequest
	Role string `json:"role" binding:"omitempty,oneof=user admin"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func toAgeGroups(in []string) []domain.AgeGroup {
	if in == nil {
		return nil
	}
	out := make([]domain.AgeGroup, 0, len(in))
	for _, g := range in {
		out = append(out, domain.AgeGroup(g))
	}
	return out
}

func toDoses(in []DoseRequest) ([]domain.Dose, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]domain.Dose, 0, len(in))
	for i, d := range in {
		scheduled, err := ParseDate(d.ScheduledDate)
		if err != nil {
			return nil, fmt.Errorf("invalid scheduled_date of dose %d: %w", i, err)
		}
		out = append(out, domain.Dose{
			Label:         d.Label,
			ScheduledDate: scheduled,
			Completed:     d.Completed,
		})
	}
	return out, nil
}
