package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "frontdesk"

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_created_total",
			Help:      "Count of bookings created by payment status.",
		},
		[]string{"status"},
	)

	bookingUpdated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_updated_total",
			Help:      "Count of bookings updated by payment status.",
		},
		[]string{"status"},
	)

	bookingConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflict_total",
			Help:      "Count of booking writes rejected because the room was already taken.",
		},
	)

	cleaningToggled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cleaning_toggled_total",
			Help:      "Count of confirmed manual cleaning status changes by target status.",
		},
		[]string{"status"},
	)

	rolloverRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rollover_runs_total",
			Help:      "Count of daily housekeeping rollover runs by result.",
		},
		[]string{"result"},
	)

	rolloverRooms = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rollover_rooms_flipped_total",
			Help:      "Count of rooms flipped to Needs Cleaning by the daily rollover.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingUpdated, bookingConflict, cleaningToggled, rolloverRuns, rolloverRooms)
	})
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncBookingUpdated(status string) {
	bookingUpdated.WithLabelValues(status).Inc()
}

func IncBookingConflict() {
	bookingConflict.Inc()
}

func IncCleaningToggled(status string) {
	cleaningToggled.WithLabelValues(status).Inc()
}

func IncRolloverRun(result string) {
	rolloverRuns.WithLabelValues(result).Inc()
}

func AddRolloverRooms(count int) {
	rolloverRooms.Add(float64(count))
}
