package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BookingMetrics counts appointment lifecycle outcomes.
type BookingMetrics struct {
	created     metric.Int64Counter
	conflicts   metric.Int64Counter
	transitions metric.Int64Counter
}

func NewBookingMetrics() *BookingMetrics {
	meter := otel.Meter(tracerName)

	created, _ := meter.Int64Counter(
		"appointments_created_total",
		metric.WithDescription("Appointments successfully booked"),
		metric.WithUnit("{appointment}"),
	)
	conflicts, _ := meter.Int64Counter(
		"appointment_conflicts_total",
		metric.WithDescription("Booking attempts rejected because the slot was taken"),
		metric.WithUnit("{attempt}"),
	)
	transitions, _ := meter.Int64Counter(
		"appointment_transitions_total",
		metric.WithDescription("Appointment status transitions"),
		metric.WithUnit("{transition}"),
	)

	return &BookingMetrics{created: created, conflicts: conflicts, transitions: transitions}
}

func (m *BookingMetrics) RecordCreated(ctx context.Context, public bool) {
	m.created.Add(ctx, 1, metric.WithAttributes(attribute.Bool("public", public)))
}

func (m *BookingMetrics) RecordConflict(ctx context.Context) {
	m.conflicts.Add(ctx, 1)
}

func (m *BookingMetrics) RecordTransition(ctx context.Context, to string) {
	m.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("to", to)))
}
