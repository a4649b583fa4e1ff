package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Decisions *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Decisions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_verification_decisions_total",
			Help: "Admin verification decisions by action and outcome",
		}, []string{"action", "outcome"}),
	}
}

func (m *Metrics) decision(action, outcome string) {
	if m != nil {
		m.Decisions.WithLabelValues(action, outcome).Inc()
	}
}
