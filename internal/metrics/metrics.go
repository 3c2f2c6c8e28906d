package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vaccine_booker"

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created by resulting status.",
		},
		[]string{"status"},
	)

	bookingCancelled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_cancelled_total",
			Help:      "Count of bookings cancelled.",
		},
	)

	doseCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dose_completed_total",
			Help:      "Count of doses marked completed.",
		},
	)

	slotsFilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vaccine_slots_filled_total",
			Help:      "Count of vaccines deactivated because their last slot was booked.",
		},
	)

	reminders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminder_total",
			Help:      "Count of dose reminders by result.",
		},
		[]string{"result"},
	)

	notifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_total",
			Help:      "Count of outgoing notifications by kind and result.",
		},
		[]string{"kind", "result"},
	)

	cacheRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_requests_total",
			Help:      "Count of catalog cache lookups by result.",
		},
		[]string{"result"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			bookingCreated, bookingCancelled, doseCompleted, slotsFilled,
			reminders, notifications, cacheRequests, httpDuration,
		)
	})
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncBookingCancelled() {
	bookingCancelled.Inc()
}

func IncDoseCompleted() {
	doseCompleted.Inc()
}

func IncSlotsFilled() {
	slotsFilled.Inc()
}

func IncReminder(result string) {
	reminders.WithLabelValues(result).Inc()
}

func IncNotification(kind, result string) {
	notifications.WithLabelValues(kind, result).Inc()
}

func IncCacheRequest(result string) {
	cacheRequests.WithLabelValues(result).Inc()
}

func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
