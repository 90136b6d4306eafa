package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SecurityMetrics defines the interface for recording security operation metrics.
// Implementations track operation counts and durations across the security
// components (coordinator, store, biometric gate, key derivation).
type SecurityMetrics interface {
	// RecordOperation records a security operation with its status.
	// Component examples: "coordinator", "store", "biometric"
	// Operation examples: "initialize", "authenticate", "store_data", "get_data"
	// Status examples: "success", "failed", "error", "denied"
	RecordOperation(ctx context.Context, component, operation, status string)

	// RecordDuration records the duration of a security operation with its status.
	// Duration is recorded in seconds as a histogram for percentile calculations.
	RecordDuration(ctx context.Context, component, operation string, duration time.Duration, status string)
}

// securityMetrics implements SecurityMetrics using OpenTelemetry metrics.
type securityMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
}

// NewSecurityMetrics creates a new SecurityMetrics implementation using the provided meter provider.
// The namespace parameter is used as a prefix for all metric names (e.g., "securecore").
// Returns error if meters cannot be initialized.
func NewSecurityMetrics(meterProvider metric.MeterProvider, namespace string) (SecurityMetrics, error) {
	meter := meterProvider.Meter(namespace)

	// Create counter for total operations
	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of security operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	// Create histogram for operation durations
	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of security operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &securityMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
	}, nil
}

// RecordOperation increments the operation counter with component, operation, and status labels.
func (s *securityMetrics) RecordOperation(ctx context.Context, component, operation, status string) {
	s.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("component", component),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// RecordDuration records the operation duration in seconds with component, operation, and status labels.
func (s *securityMetrics) RecordDuration(
	ctx context.Context,
	component, operation string,
	duration time.Duration,
	status string,
) {
	s.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("component", component),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

// NoOpSecurityMetrics is a no-op implementation of SecurityMetrics for when metrics are disabled.
type NoOpSecurityMetrics struct{}

// NewNoOpSecurityMetrics creates a no-op SecurityMetrics implementation.
func NewNoOpSecurityMetrics() SecurityMetrics {
	return &NoOpSecurityMetrics{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoOpSecurityMetrics) RecordOperation(ctx context.Context, component, operation, status string) {
	// No-op
}

// RecordDuration does nothing when metrics are disabled.
func (n *NoOpSecurityMetrics) RecordDuration(
	ctx context.Context,
	component, operation string,
	duration time.Duration,
	status string,
) {
	// No-op
}
