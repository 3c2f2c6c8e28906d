package notification

import (
	"context"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// deliver sends one queued notification. Failures are logged and counted, never retried.
func deliver(ctx context.Context, mailer ports.Mailer, n domain.Notification, log logger.Logger) {
	if err := mailer.Send(ctx, n.To, n.Subject, n.Body); err != nil {
		metrics.IncNotification(string(n.Kind), "failed")
		log.Error("failed to send notification",
			logger.String("kind", string(n.Kind)),
			logger.String("to", n.To),
			logger.String("error", err.Error()),
		)
		return
	}

	metrics.IncNotification(string(n.Kind), "sent")
	log.Debug("notification sent",
		logger.String("kind", string(n.Kind)),
		logger.String("to", n.To),
	)
}
