package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	id "carenest/pkg/domain"
)

// Metrics tracks account lifecycle counters.
type Metrics struct {
	Registrations *prometheus.CounterVec
	Logins        *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_registrations_total",
			Help: "Accounts registered, by account type",
		}, []string{"account_type"}),
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_logins_total",
			Help: "Login attempts by account type and result",
		}, []string{"account_type", "result"}),
	}
}

func (m *Metrics) registered(t id.AccountType) {
	if m != nil {
		m.Registrations.WithLabelValues(string(t)).Inc()
	}
}

func (m *Metrics) login(t id.AccountType, result string) {
	if m != nil {
		m.Logins.WithLabelValues(string(t), result).Inc()
	}
}
