package domain

import (
	"math"
	"time"
)

// DefaultReminderDaysBefore is how many days ahead of a dose the reminder goes out.
const DefaultReminderDaysBefore = 1

type Dose struct {
	Label          string     `json:"label"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	Completed      bool       `json:"completed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	// ReminderSentFor is the scheduled date a reminder was already sent for.
	ReminderSentFor *time.Time `json:"reminder_sent_for,omitempty"`
}

func (d Dose) ReminderSent() bool {
	return d.ReminderSentFor != nil && d.ReminderSentFor.Equal(CalendarDate(d.ScheduledDate))
}

// CalendarDate drops the time of day, in UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil is the number of started days between now and scheduled, rounded up.
func DaysUntil(now, scheduled time.Time) int {
	return int(math.Ceil(scheduled.Sub(now).Hours() / 24))
}

type ReminderCandidate struct {
	Booking   *Booking
	Dose      Dose
	DoseIndex int
}

// DueReminders lists open doses scheduled exactly daysBefore days after now
// that have not been reminded about for their current date.
func DueReminders(bookings []*Booking, now time.Time, daysBefore int) []ReminderCandidate {
	var res []ReminderCandidate
	for _, b := range bookings {
		if b.Status == BookingStatusCancelled {
			continue
		}
		for i, d := range b.Doses {
			if d.Completed || d.ReminderSent() {
				continue
			}
			if DaysUntil(now, d.ScheduledDate) != daysBefore {
				continue
			}
			res = append(res, ReminderCandidate{Booking: b, Dose: d, DoseIndex: i})
		}
	}
	return res
}
