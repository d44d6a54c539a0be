package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricNamespace = "catalog"

type metrics struct {
	queries  *prometheus.CounterVec
	reloads  *prometheus.CounterVec
	views    prometheus.Counter
	products prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)
	return &metrics{
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "queries_total",
			Help:      "Catalog queries served, by kind.",
		}, []string{"kind"}),
		reloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "reloads_total",
			Help:      "Catalog reload attempts, by result.",
		}, []string{"result"}),
		views: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "product_views_total",
			Help:      "Product detail views recorded.",
		}),
		products: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "products",
			Help:      "Products in the currently served catalog.",
		}),
	}
}
