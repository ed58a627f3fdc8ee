package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FlightMutations *prometheus.CounterVec
	LiveFlights     prometheus.Gauge
	RecoveryPlans   prometheus.Counter
	RecoveryFlights prometheus.Histogram
	RequestDuration *prometheus.HistogramVec
	ErrorsCount     *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg.
// Pass prometheus.DefaultRegisterer to expose them on promhttp.Handler().
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FlightMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_mutations_total",
			Help:      "The total number of flight record creates, updates and deletes",
		}, []string{"operation"}),
		LiveFlights: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flights_live",
			Help:      "The number of disrupted flights currently held in the store",
		}),
		RecoveryPlans: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recovery_plans_generated_total",
			Help:      "The total number of generated recovery plans",
		}),
		RecoveryFlights: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recovery_plan_flights",
			Help:      "Number of flights selected per recovery plan",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve API requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
