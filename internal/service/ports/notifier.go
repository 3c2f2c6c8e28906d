package ports

import (
	"context"

	"github.com/stpnv0/VaccineBooker/internal/domain"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NotificationQueue hands a mail off for background delivery. It never fails the caller.
type NotificationQueue interface {
	Enqueue(ctx context.Context, n domain.Notification)
}

// ChatNotifier sends short Telegram messages. Both calls are best effort.
type ChatNotifier interface {
	AlertAdmins(ctx context.Context, text string)
	NotifyUser(ctx context.Context, chatID int64, text string)
}
