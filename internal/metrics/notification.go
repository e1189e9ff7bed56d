package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	OutcomeDelivered      = "delivered"
	OutcomeRejected       = "rejected"
	OutcomeMalformed      = "malformed"
	OutcomeTransportError = "transport_error"
)

type NotificationCollector struct {
	deliveries metric.Int64Counter
}

func NewNotificationCollector(meter metric.Meter) (*NotificationCollector, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}

	deliveries, err := meter.Int64Counter(
		"notification.deliveries",
		metric.WithDescription("External notification send attempts by outcome"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	return &NotificationCollector{
		deliveries: deliveries,
	}, nil
}

// RecordDelivery records the outcome of a single provider send
func (c *NotificationCollector) RecordDelivery(ctx context.Context, provider string, outcome string) {
	c.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("notification.provider", provider),
		attribute.String("notification.outcome", outcome),
	))
}
