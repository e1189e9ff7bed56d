package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func findFamily(families []*dto.MetricFamily, prefix string) *dto.MetricFamily {
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), prefix) {
			return f
		}
	}
	return nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, l := range m.GetLabel() {
		if l.GetName() == name {
			return l.GetValue()
		}
	}
	return ""
}

func TestNewMetricConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewMetricConfig()

		assert.Equal(t, "serverchan-notification-service", cfg.AppName)
		assert.Empty(t, cfg.Namespace)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("APP_NAME", "notify-edge")
		t.Setenv("METRICS_NAMESPACE", "serverchan")

		cfg := NewMetricConfig()

		assert.Equal(t, MetricConfig{AppName: "notify-edge", Namespace: "serverchan"}, cfg)
	})
}

func TestNewMetric_ExportsDeliveries(t *testing.T) {
	registry := prometheus.NewRegistry()
	config := MetricConfig{AppName: "serverchan-test", Namespace: "serverchan"}

	provider, err := NewMeterProvider(MeterProviderParams{
		Config:     config,
		Registerer: registry,
	})
	require.NoError(t, err)

	lc := fxtest.NewLifecycle(t)
	meter, err := NewMetric(lc, MetricParams{
		Config:        config,
		MeterProvider: provider,
	})
	require.NoError(t, err)
	lc.RequireStart()

	collector, err := NewNotificationCollector(meter)
	require.NoError(t, err)
	collector.RecordDelivery(context.Background(), "serverchan", OutcomeRejected)
	collector.RecordDelivery(context.Background(), "serverchan", OutcomeRejected)

	families, err := registry.Gather()
	require.NoError(t, err)

	deliveries := findFamily(families, "serverchan_notification_deliveries")
	require.NotNil(t, deliveries, "delivery counter should be exported under the namespace")
	require.Len(t, deliveries.GetMetric(), 1)

	point := deliveries.GetMetric()[0]
	assert.Equal(t, 2.0, point.GetCounter().GetValue())
	assert.Equal(t, "serverchan", labelValue(point, "notification_provider"))
	assert.Equal(t, OutcomeRejected, labelValue(point, "notification_outcome"))

	lc.RequireStop()
}
