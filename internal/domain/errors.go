package domain

import "errors"

var (
	ErrVaccineNotFound = errors.New("vaccine not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrNoAvailableSlots  = errors.New("no available slots")
	ErrVaccineInactive   = errors.New("vaccine is not active")
	ErrInvalidTransition = errors.New("booking status transition is not allowed")
)

var (
	ErrVaccineNameTaken = errors.New("vaccine with this name already exists")
	ErrEmailTaken       = errors.New("user with this email already exists")
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidReference = errors.New("invalid reference")
)

var (
	ErrStorage            = errors.New("storage failure")
	ErrNotificationFailed = errors.New("notification failed")
)
