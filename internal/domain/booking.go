package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses moved to completed when a vaccine runs out of slots.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// CanTransitionTo reports whether next is reachable from s. Re-applying the
// current status is allowed and is a no-op.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCompleted || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

const MaxNotesLength = 500

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type VaccineInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type Booking struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id,omitempty"`
	VaccineID   string        `json:"vaccine_id"`
	BookingDate time.Time     `json:"booking_date"`
	Status      BookingStatus `json:"status"`
	UserInfo    UserInfo      `json:"user_info"`
	VaccineInfo VaccineInfo   `json:"vaccine_info"`
	Notes       string        `json:"notes,omitempty"`
	Doses       []Dose        `json:"doses,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (b *Booking) AllDosesCompleted() bool {
	if len(b.Doses) == 0 {
		return false
	}
	for _, d := range b.Doses {
		if !d.Completed {
			return false
		}
	}
	return true
}

// CompleteDose marks the dose at index as completed on the calendar date of now.
// The booking becomes completed once every dose is. On error b is left unchanged.
func (b *Booking) CompleteDose(index int, now time.Time) error {
	if len(b.Doses) == 0 {
		return fmt.Errorf("%w: no doses to complete for this booking", ErrInvalidRequest)
	}
	if index < 0 || index >= len(b.Doses) {
		return fmt.Errorf("%w: invalid dose index %d", ErrInvalidRequest, index)
	}
	if b.Status == BookingStatusCancelled {
		return fmt.Errorf("%w: booking is cancelled", ErrInvalidTransition)
	}

	d := &b.Doses[index]
	if !d.Completed {
		day := CalendarDate(now)
		d.Completed = true
		d.CompletionDate = &day
	}

	if b.AllDosesCompleted() {
		b.Status = BookingStatusCompleted
	}
	b.UpdatedAt = now

	return nil
}

func (b *Booking) TransitionTo(next BookingStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, next)
	}
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	if next == BookingStatusCompleted && len(b.Doses) > 0 && !b.AllDosesCompleted() {
		return fmt.Errorf("%w: booking has incomplete doses", ErrInvalidRequest)
	}
	b.Status = next
	return nil
}

type CreateBookingInput struct {
	VaccineID   string
	UserID      string
	UserInfo    UserInfo
	BookingDate time.Time
	Notes       string
	Doses       []Dose
	// Status is the entry status: pending for public bookings, confirmed for admin ones.
	Status BookingStatus
}

func (in *CreateBookingInput) Validate() error {
	in.VaccineID = strings.TrimSpace(in.VaccineID)
	in.UserInfo.Name = strings.TrimSpace(in.UserInfo.Name)
	in.UserInfo.Email = strings.ToLower(strings.TrimSpace(in.UserInfo.Email))
	in.UserInfo.Phone = strings.TrimSpace(in.UserInfo.Phone)

	switch {
	case in.VaccineID == "":
		return fmt.Errorf("%w: vaccine is required", ErrInvalidRequest)
	case in.UserInfo.Name == "":
		return fmt.Errorf("%w: user name is required", ErrInvalidRequest)
	case in.UserInfo.Email == "":
		return fmt.Errorf("%w: user email is required", ErrInvalidRequest)
	case !ValidEmail(in.UserInfo.Email):
		return fmt.Errorf("%w: user email is invalid", ErrInvalidRequest)
	case in.UserInfo.Phone == "":
		return fmt.Errorf("%w: user phone is required", ErrInvalidRequest)
	case in.BookingDate.IsZero():
		return fmt.Errorf("%w: booking date is required", ErrInvalidRequest)
	case utf8.RuneCountInString(in.Notes) > MaxNotesLength:
		return fmt.Errorf("%w: notes cannot be more than %d characters", ErrInvalidRequest, MaxNotesLength)
	}

	switch in.Status {
	case "":
		in.Status = BookingStatusPending
	case BookingStatusPending, BookingStatusConfirmed:
	default:
		return fmt.Errorf("%w: booking cannot start as %q", ErrInvalidRequest, in.Status)
	}

	return validateDoses(in.Doses)
}

// UpdateBookingInput is an admin partial update: nil fields are left untouched.
type UpdateBookingInput struct {
	Status      *BookingStatus
	BookingDate *time.Time
	Notes       *string
	Doses       []Dose
}

// Apply merges the update into b. Replaced doses are matched to the stored
// ones by index, see mergeDoses.
func (in UpdateBookingInput) Apply(b *Booking, now time.Time) error {
	if in.Notes != nil && utf8.RuneCountInString(*in.Notes) > MaxNotesLength {
		return fmt.Errorf("%w: notes cannot be more than %d characters", ErrInvalidRequest, MaxNotesLength)
	}
	if in.Doses != nil {
		if err := validateDoses(in.Doses); err != nil {
			return err
		}
	}
	if in.BookingDate != nil && in.BookingDate.IsZero() {
		return fmt.Errorf("%w: booking date is required", ErrInvalidRequest)
	}

	next := *b
	if in.Doses != nil {
		next.Doses = mergeDoses(b.Doses, in.Doses, now)
	}
	if in.Notes != nil {
		next.Notes = *in.Notes
	}
	if in.BookingDate != nil {
		next.BookingDate = *in.BookingDate
	}
	if in.Status != nil {
		if err := next.TransitionTo(*in.Status); err != nil {
			return err
		}
	} else if !next.Status.IsTerminal() && next.AllDosesCompleted() {
		next.Status = BookingStatusCompleted
	}

	next.UpdatedAt = now
	*b = next
	return nil
}

type BookingFilter struct {
	UserEmail string
	Status    BookingStatus
}

func (f *BookingFilter) Normalize() error {
	f.UserEmail = strings.TrimSpace(f.UserEmail)
	if f.Status == "all" {
		f.Status = ""
	}
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, f.Status)
	}
	return nil
}

func (f BookingFilter) Matches(b *Booking) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.UserEmail != "" && !strings.Contains(strings.ToLower(b.UserInfo.Email), strings.ToLower(f.UserEmail)) {
		return false
	}
	return true
}

func validateDoses(doses []Dose) error {
	for i, d := range doses {
		if strings.TrimSpace(d.Label) == "" {
			return fmt.Errorf("%w: dose %d label is required", ErrInvalidRequest, i)
		}
		if d.ScheduledDate.IsZero() {
			return fmt.Errorf("%w: dose %d scheduled date is required", ErrInvalidRequest, i)
		}
	}
	return nil
}

// normalizeDoses copies doses with dates truncated to calendar days. Unless
// keepProgress is set, completion and reminder state is reset.
func normalizeDoses(doses []Dose, keepProgress bool) []Dose {
	out := slices.Clone(doses)
	for i := range out {
		out[i].Label = strings.TrimSpace(out[i].Label)
		out[i].ScheduledDate = CalendarDate(out[i].ScheduledDate)
		if !keepProgress {
			out[i].Completed = false
			out[i].CompletionDate = nil
			out[i].ReminderSentFor = nil
			continue
		}
		if !out[i].Completed {
			out[i].CompletionDate = nil
		}
	}
	return out
}

// mergeDoses lays an edited schedule over the stored one. A dose that stays
// completed keeps its completion date, a newly completed one is stamped with
// today. The reminder mark survives only while the scheduled date is unchanged.
func mergeDoses(stored, edited []Dose, now time.Time) []Dose {
	out := normalizeDoses(edited, true)
	for i := range out {
		d := &out[i]
		var prev *Dose
		if i < len(stored) {
			prev = &stored[i]
		}

		if d.Completed {
			switch {
			case prev != nil && prev.Completed && prev.CompletionDate != nil:
				day := *prev.CompletionDate
				d.CompletionDate = &day
			case d.CompletionDate == nil:
				day := CalendarDate(now)
				d.CompletionDate = &day
			}
		}

		d.ReminderSentFor = nil
		if prev != nil && prev.ReminderSentFor != nil &&
			CalendarDate(prev.ScheduledDate).Equal(d.ScheduledDate) {
			day := *prev.ReminderSentFor
			d.ReminderSentFor = &day
		}
	}
	return out
}

// NewBookingDoses prepares the dose schedule of a freshly created booking.
func NewBookingDoses(doses []Dose) []Dose {
	if len(doses) == 0 {
		return nil
	}
	return normalizeDoses(doses, false)
}
