package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all application metrics
type Metrics struct {
	RequestCounter     metric.Int64Counter
	RequestDuration    metric.Float64Histogram
	TokensUsed         metric.Int64Counter
	ActionsExecuted    metric.Int64Counter
	EmergenciesFlagged metric.Int64Counter
}

// InitMetrics initializes all application metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("swasthya-sahayak")

	requestCounter, err := meter.Int64Counter(
		"http.requests.total",
		metric.WithDescription("Total HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	tokensUsed, err := meter.Int64Counter(
		"gemini.tokens.used",
		metric.WithDescription("Total Gemini tokens used"),
	)
	if err != nil {
		return nil, err
	}

	actionsExecuted, err := meter.Int64Counter(
		"assistant.actions.executed",
		metric.WithDescription("Total assistant actions executed"),
	)
	if err != nil {
		return nil, err
	}

	emergenciesFlagged, err := meter.Int64Counter(
		"assistant.emergencies.flagged",
		metric.WithDescription("Messages flagged as medical emergencies"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		RequestCounter:     requestCounter,
		RequestDuration:    requestDuration,
		TokensUsed:         tokensUsed,
		ActionsExecuted:    actionsExecuted,
		EmergenciesFlagged: emergenciesFlagged,
	}, nil
}

// RecordRequest records an HTTP request metric
func (m *Metrics) RecordRequest(method, path, status string, duration float64) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", status),
	)
	m.RequestCounter.Add(context.Background(), 1, attrs)
	m.RequestDuration.Record(context.Background(), duration, attrs)
}

// RecordTokens records model token consumption
func (m *Metrics) RecordTokens(model string, tokens int) {
	m.TokensUsed.Add(context.Background(), int64(tokens), metric.WithAttributes(
		attribute.String("model", model),
	))
}

// RecordAction records an action execution
func (m *Metrics) RecordAction(name string, success bool) {
	m.ActionsExecuted.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("action", name),
		attribute.Bool("success", success),
	))
}
