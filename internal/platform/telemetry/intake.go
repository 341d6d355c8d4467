package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Quote intake outcomes.
const (
	OutcomeCreated         = "created"
	OutcomeValidationError = "validation_error"
	OutcomeStorageError    = "storage_error"
)

// IntakeMetrics counts quote submissions. Counters are recorded through the
// OpenTelemetry meter (exported over OTLP) and mirrored to a Prometheus
// registry so they show up on the /-/metrics scrape endpoint.
type IntakeMetrics struct {
	submitted     metric.Int64Counter
	notifyFailed  metric.Int64Counter
	promSubmitted *prometheus.CounterVec
	promNotify    prometheus.Counter
}

// NewIntakeMetrics creates the counters and registers the Prometheus side
// with reg. A nil reg skips Prometheus registration.
func NewIntakeMetrics(reg prometheus.Registerer) (*IntakeMetrics, error) {
	meter := otel.Meter(instrumentationName)

	submitted, err := meter.Int64Counter(
		"quotes.submitted",
		metric.WithDescription("Quote requests received, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	notifyFailed, err := meter.Int64Counter(
		"quotes.notification.failures",
		metric.WithDescription("Quote notifications that could not be delivered"),
	)
	if err != nil {
		return nil, err
	}

	m := &IntakeMetrics{
		submitted:    submitted,
		notifyFailed: notifyFailed,
		promSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "quotes_submitted_total",
			Help: "Quote requests received, by outcome.",
		}, []string{"outcome"}),
		promNotify: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "quotes_notification_failures_total",
			Help: "Quote notifications that could not be delivered.",
		}),
	}

	if reg != nil {
		if err := reg.Register(m.promSubmitted); err != nil {
			return nil, err
		}

		if err := reg.Register(m.promNotify); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// QuoteSubmitted records one submission that ended in outcome.
func (m *IntakeMetrics) QuoteSubmitted(ctx context.Context, outcome string) {
	m.submitted.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	m.promSubmitted.WithLabelValues(outcome).Inc()
}

// NotificationFailed records one undelivered notification.
func (m *IntakeMetrics) NotificationFailed(ctx context.Context) {
	m.notifyFailed.Add(ctx, 1)
	m.promNotify.Inc()
}
