package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	DatasetLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts.",
		},
		[]string{"status"},
	)
	ListingsLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "listings_loaded",
			Help: "Number of normalized listings in the current dataset.",
		},
	)
	FilterRequests = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "filter_requests_total",
			Help: "Total number of listing filter requests served.",
		},
	)
	MortgageQuotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_quotes_total",
			Help: "Total number of mortgage calculations by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(DatasetLoads)
	prometheus.MustRegister(ListingsLoaded)
	prometheus.MustRegister(FilterRequests)
	prometheus.MustRegister(MortgageQuotes)
}
