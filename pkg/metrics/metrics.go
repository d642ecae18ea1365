package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BookingsCreated     *prometheus.CounterVec
	SlotClaimConflicts  prometheus.Counter
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds.",
				ConstLabels: prometheus.Labels{"service": serviceName},
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		BookingsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_created_total",
				Help:        "Count of bookings created by service type.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"service_type"},
		),
		SlotClaimConflicts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name:        "slot_claim_conflicts_total",
				Help:        "Count of booking attempts that lost the race for a slot.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.SlotClaimConflicts,
	)

	return m
}

// BookingCreated инкрементирует счетчик созданных бронирований
func (m *Metrics) BookingCreated(serviceType string) {
	m.BookingsCreated.WithLabelValues(serviceType).Inc()
}

// SlotClaimConflict инкрементирует счетчик проигранных гонок за слот
func (m *Metrics) SlotClaimConflict() {
	m.SlotClaimConflicts.Inc()
}
