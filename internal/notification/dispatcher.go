package notification

import (
	"context"
	"sync"

	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/stpnv0/VaccineBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 100
)

// Dispatcher is the in-process notification queue: a buffered channel drained
// by a fixed pool of workers. When the buffer is full new notifications are dropped.
type Dispatcher struct {
	mailer     ports.Mailer
	logger     logger.Logger
	jobs       chan domain.Notification
	numWorkers int
	wg         sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewDispatcher(mailer ports.Mailer, workers, queueSize int, log logger.Logger) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		mailer:     mailer,
		logger:     log,
		jobs:       make(chan domain.Notification, queueSize),
		numWorkers: workers,
	}
}

// Start launches the workers. Cancelling ctx does not abort queued mail; call Stop to drain.
func (d *Dispatcher) Start(ctx context.Context) {
	sendCtx := context.WithoutCancel(ctx)

	d.wg.Add(d.numWorkers)
	for i := 0; i < d.numWorkers; i++ {
		go d.worker(sendCtx)
	}

	d.logger.Info("notification workers started", logger.Int("workers", d.numWorkers))
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()

	for n := range d.jobs {
		deliver(ctx, d.mailer, n, d.logger)
	}
}

func (d *Dispatcher) Enqueue(_ context.Context, n domain.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.drop(n, "dispatcher stopped")
		return
	}

	select {
	case d.jobs <- n:
	default:
		d.drop(n, "queue full")
	}
}

// Stop refuses new notifications and waits until queued ones are sent.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info("notification workers stopped")
}

func (d *Dispatcher) drop(n domain.Notification, reason string) {
	metrics.IncNotification(string(n.Kind), "dropped")
	d.logger.Warn("notification dropped",
		logger.String("reason", reason),
		logger.String("kind", string(n.Kind)),
		logger.String("to", n.To),
	)
}
