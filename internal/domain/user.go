package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Email          string
	Phone          string
	Role           Role
	TelegramChatID *int64
}

func (in *CreateUserInput) Normalize() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if !ValidEmail(in.Email) {
		return fmt.Errorf("%w: valid email is required", ErrInvalidRequest)
	}

	switch in.Role {
	case "":
		in.Role = RoleUser
	case RoleUser, RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidRequest, in.Role)
	}

	return nil
}

func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
