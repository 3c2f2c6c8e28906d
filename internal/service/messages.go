package service

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/VaccineBooker/internal/domain"
)

const dateLayout = "2006-01-02"

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "User"
	}
	return name
}

func bookingCreatedMail(b *domain.Booking, v *domain.Vaccine) domain.Notification {
	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", displayName(b.UserInfo.Name))
	body.WriteString("You have successfully registered for the following vaccine:\n")
	fmt.Fprintf(&body, "- Vaccine: %s\n- Location: %s\n- Dosage: %s\n", v.Name, v.Location, v.Dosage)
	body.WriteString("\nThank you for booking!\n\n")
	body.WriteString("You will receive further updates when your appointment is confirmed.")

	return domain.Notification{
		Kind:    domain.NotificationBookingCreated,
		To:      b.UserInfo.Email,
		Subject: "Vaccine Registration Confirmation",
		Body:    body.String(),
	}
}

func reminderMail(c domain.ReminderCandidate) domain.Notification {
	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", displayName(c.Booking.UserInfo.Name))
	body.WriteString("This is a reminder for your upcoming vaccine dose:\n\n")
	fmt.Fprintf(&body, "- Vaccine: %s\n- Dose: %s\n- Scheduled Date: %s\n\n",
		c.Booking.VaccineInfo.Name, c.Dose.Label, c.Dose.ScheduledDate.Format(dateLayout))
	body.WriteString("Please visit your selected center on the scheduled date.\n\n")
	body.WriteString("If you have already completed this dose, you can mark it as completed in your dashboard.\n\n")
	body.WriteString("Stay healthy!")

	return domain.Notification{
		Kind:    domain.NotificationDoseReminder,
		To:      c.Booking.UserInfo.Email,
		Subject: fmt.Sprintf("Vaccination Reminder: %s for %s", c.Dose.Label, c.Booking.VaccineInfo.Name),
		Body:    body.String(),
	}
}

func contactMail(to string, m domain.ContactMessage) domain.Notification {
	return domain.Notification{
		Kind:    domain.NotificationContact,
		To:      to,
		Subject: "Contact Form: " + m.Subject,
		Body:    fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", m.Name, m.Email, m.Message),
	}
}

// Telegram texts are sent in Markdown mode. Every user supplied value goes
// through md.

func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func bookingCreatedChat(b *domain.Booking) string {
	return fmt.Sprintf("*Booking received*\n%s on %s\nStatus: %s",
		md(b.VaccineInfo.Name), b.BookingDate.Format(dateLayout), b.Status)
}

func slotsFilledAlert(v *domain.Vaccine) string {
	return fmt.Sprintf("*All slots filled*\n%s (%s): %d bookings, vaccine deactivated",
		md(v.Name), md(v.Location), v.AvailableSlots)
}

func contactAlert(m domain.ContactMessage) string {
	return fmt.Sprintf("*Contact form*\nFrom: %s <%s>\nSubject: %s", md(m.Name), md(m.Email), md(m.Subject))
}
