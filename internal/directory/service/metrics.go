package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"carenest/internal/directory/models"
)

type Metrics struct {
	Searches    *prometheus.CounterVec
	ResultSizes prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "carenest_directory_searches_total",
			Help: "Directory searches by sort key",
		}, []string{"sort"}),
		ResultSizes: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "carenest_directory_page_size",
			Help:    "Caregivers returned per directory page",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}
}

func (m *Metrics) searched(sort models.SortKey, n int) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(string(sort)).Inc()
	m.ResultSizes.Observe(float64(n))
}
