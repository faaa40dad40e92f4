package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/outage_reporting_system/internal/models"
)

const namespace = "outage_service"

// otherTypeLabel - метка для типов вне известного набора
const otherTypeLabel = "other"

// Metrics хранит счетчики и гистограммы сервиса отключений.
type Metrics struct {
	ReportsCreated *prometheus.CounterVec // labels: type={electricity,water,gas,other}

	NearbyQueries     *prometheus.CounterVec // labels: outcome={success,error}
	NearbyMatches     prometheus.Histogram
	StoreReadDuration prometheus.Histogram

	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,empty,error}
}

// NewMetrics создает метрики и регистрирует их в стандартном реестре Prometheus.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ReportsCreated,
		m.NearbyQueries,
		m.NearbyMatches,
		m.StoreReadDuration,
		m.GeocodeRequests,
	)

	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы тесты
// не паниковали с "duplicate metrics collector registration".
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_created_total",
			Help:      "Outage reports accepted, by outage type.",
		}, []string{"type"}),
		NearbyQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nearby_queries_total",
			Help:      "Proximity queries by outcome.",
		}, []string{"outcome"}),
		NearbyMatches: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "nearby_matches",
			Help:      "Number of reports returned by a proximity query.",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}),
		StoreReadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_read_duration_seconds",
			Help:      "Duration of the full collection read issued by a proximity query.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Address geocoding requests by outcome.",
		}, []string{"outcome"}),
	}
}

// OutageTypeLabel ограничивает метку type известным набором, тип приходит от клиента
func OutageTypeLabel(outageType string) string {
	switch outageType {
	case models.TypeElectricity, models.TypeWater, models.TypeGas:
		return outageType
	default:
		return otherTypeLabel
	}
}
