package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/VaccineBooker/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_RunsOnStart(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, time.Hour, log)

	sender.EXPECT().SendReminders(mock.Anything).Return(2, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, 20*time.Millisecond, log)

	sender.EXPECT().SendReminders(mock.Anything).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 70*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sender.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, time.Second, log) // interval longer than test

	sender.EXPECT().SendReminders(mock.Anything).Return(0, nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, 20*time.Millisecond, log)

	var calls atomic.Int32
	sender.EXPECT().SendReminders(mock.Anything).
		RunAndReturn(func(context.Context) (int, error) {
			calls.Add(1)
			return 0, nil
		})

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}
