package domain

import (
	"fmt"
	"strings"
)

type NotificationKind string

const (
	NotificationBookingCreated NotificationKind = "booking_created"
	NotificationDoseReminder   NotificationKind = "dose_reminder"
	NotificationContact        NotificationKind = "contact"
)

// Notification is one outgoing e-mail.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	To      string           `json:"to"`
	Subject string           `json:"subject"`
	Body    string           `json:"body"`
}

type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (m *ContactMessage) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)

	if m.Name == "" || m.Email == "" || m.Subject == "" || m.Message == "" {
		return fmt.Errorf("%w: all fields are required", ErrInvalidRequest)
	}
	if !ValidEmail(m.Email) {
		return fmt.Errorf("%w: email is invalid", ErrInvalidRequest)
	}
	return nil
}
