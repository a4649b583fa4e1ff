package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts notification outcomes by event kind.
type Metrics struct {
	Outcomes   *prometheus.CounterVec
	QueueDepth prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_notifications_total",
			Help: "Notifications by kind and outcome (sent, failed, dropped)",
		}, []string{"kind", "outcome"}),
		QueueDepth: f.NewGauge(prometheus.GaugeOpts{
			Name: "carenest_notification_queue_depth",
			Help: "Events waiting in the dispatch queue",
		}),
	}
}

func (m *Metrics) observe(kind Kind, outcome string) {
	if m == nil {
		return
	}
	m.Outcomes.WithLabelValues(string(kind), outcome).Inc()
}

func (m *Metrics) depth(n int) {
	if m == nil {
		return
	}
	m.QueueDepth.Set(float64(n))
}
