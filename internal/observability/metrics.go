package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "neo_risk"

// Metrics - счетчики и гистограммы сервиса оценки рисков
type Metrics struct {
	// Оценки риска.
	Assessments        *prometheus.CounterVec // labels: torino={0..10}
	AssessmentFailures *prometheus.CounterVec // labels: reason={invalid_input,domain,incomplete,internal}

	// Каталог NEO.
	CatalogRequests *prometheus.CounterVec   // labels: endpoint={lookup,feed,browse}, outcome={success,error,not_found}
	CatalogDuration *prometheus.HistogramVec // labels: endpoint

	// Кэш и оповещения.
	AsteroidCache   *prometheus.CounterVec // labels: result={hit,miss}
	AlertsPublished prometheus.Counter
	AlertDeliveries *prometheus.CounterVec // labels: outcome={delivered,failed,skipped}
}

// NewMetrics создает метрики и регистрирует их в глобальном реестре Prometheus
func NewMetrics() *Metrics {
	m := &Metrics{
		Assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Completed risk assessments by Torino scale value.",
		}, []string{"torino"}),
		AssessmentFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessment_failures_total",
			Help:      "Rejected or failed risk assessments by reason.",
		}, []string{"reason"}),
		CatalogRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "NEO catalog API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		CatalogDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_request_duration_seconds",
			Help:      "NEO catalog API request duration in seconds, retries included.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"endpoint"}),
		AsteroidCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "asteroid_cache_total",
			Help:      "Asteroid cache lookups by result.",
		}, []string{"result"}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_published_total",
			Help:      "Impact alerts pushed to the delivery queue.",
		}),
		AlertDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_deliveries_total",
			Help:      "Impact alert webhook deliveries by outcome.",
		}, []string{"outcome"}),
	}

	prometheus.MustRegister(
		m.Assessments,
		m.AssessmentFailures,
		m.CatalogRequests,
		m.CatalogDuration,
		m.AsteroidCache,
		m.AlertsPublished,
		m.AlertDeliveries,
	)

	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы тесты
// не паниковали на повторной регистрации.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Assessments:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "assessments_total"}, []string{"torino"}),
		AssessmentFailures: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "assessment_failures_total"}, []string{"reason"}),
		CatalogRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "catalog_requests_total"}, []string{"endpoint", "outcome"}),
		CatalogDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "catalog_request_duration_seconds"}, []string{"endpoint"}),
		AsteroidCache:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "asteroid_cache_total"}, []string{"result"}),
		AlertsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: namespace, Name: "alerts_published_total"}),
		AlertDeliveries:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "alert_deliveries_total"}, []string{"outcome"}),
	}
}
