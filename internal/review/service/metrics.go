package service

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Reviews     *prometheus.CounterVec
	Corrections prometheus.Counter
	Failures    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Reviews: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_reviews_total",
			Help: "Reviews recorded, by star rating",
		}, []string{"rating"}),
		Corrections: f.NewCounter(prometheus.CounterOpts{
			Name: "carenest_rating_reconcile_corrections_total",
			Help: "Caregiver rating snapshots corrected by the reconciler",
		}),
		Failures: f.NewCounter(prometheus.CounterOpts{
			Name: "carenest_rating_reconcile_failures_total",
			Help: "Caregivers the reconciler could not recompute",
		}),
	}
}

func (m *Metrics) recorded(rating int) {
	if m != nil {
		m.Reviews.WithLabelValues(strconv.Itoa(rating)).Inc()
	}
}

func (m *Metrics) reconciled(res ReconcileResult) {
	if m != nil {
		m.Corrections.Add(float64(res.Corrected))
		m.Failures.Add(float64(res.Failed))
	}
}
