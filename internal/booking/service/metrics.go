package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"carenest/internal/booking/models"
	id "carenest/pkg/domain"
)

type Metrics struct {
	Created       prometheus.Counter
	Transitions   *prometheus.CounterVec
	Cancellations *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Created: f.NewCounter(prometheus.CounterOpts{
			Name: "carenest_bookings_created_total",
			Help: "Bookings created",
		}),
		Transitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_booking_transitions_total",
			Help: "Booking status transitions by target status",
		}, []string{"status"}),
		Cancellations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_booking_cancellations_total",
			Help: "Booking cancellations by cancelling party",
		}, []string{"by"}),
	}
}

func (m *Metrics) created() {
	if m != nil {
		m.Created.Inc()
	}
}

func (m *Metrics) transitioned(to models.Status) {
	if m != nil {
		m.Transitions.WithLabelValues(string(to)).Inc()
	}
}

func (m *Metrics) cancelled(by id.ActorRole) {
	if m != nil {
		m.Cancellations.WithLabelValues(string(by)).Inc()
	}
}
