package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendReminders(ctx context.Context) (int, error)
}

// Scheduler runs the dose reminder sweep once on start and then on every tick.
type Scheduler struct {
	reminders reminderSender
	interval  time.Duration
	logger    logger.Logger
}

func New(
	reminders reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()

	sent, err := s.reminders.SendReminders(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("reminder sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("reminder sweep finished",
		logger.Int("sent", sent),
		logger.Duration("took", time.Since(started)),
	)
}
