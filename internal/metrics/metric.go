package metrics

import (
	"context"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.uber.org/fx"
)

type MeterProviderParams struct {
	fx.In

	Config MetricConfig
	// Registerer defaults to the prometheus default registry served on /metrics.
	Registerer prometheus.Registerer `optional:"true"`
}

func NewMeterProvider(params MeterProviderParams) (*sdkmetric.MeterProvider, error) {
	var opts []otelprom.Option
	if params.Registerer != nil {
		opts = append(opts, otelprom.WithRegisterer(params.Registerer))
	}
	if params.Config.Namespace != "" {
		opts = append(opts, otelprom.WithNamespace(params.Config.Namespace))
	}

	exporter, err := otelprom.New(opts...)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(resource.NewSchemaless(
			attribute.String("service.name", params.Config.AppName),
		)),
	)

	otel.SetMeterProvider(provider)
	return provider, nil
}

type MetricParams struct {
	fx.In

	Config        MetricConfig
	MeterProvider *sdkmetric.MeterProvider
}

// NewMetric returns the meter shared by every collector. Pending data points
// are flushed when the app stops.
func NewMetric(lc fx.Lifecycle, params MetricParams) (metric.Meter, error) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return params.MeterProvider.Shutdown(ctx)
		},
	})

	return params.MeterProvider.Meter(params.Config.AppName), nil
}

type MetricConfig struct {
	AppName   string `envconfig:"APP_NAME" default:"serverchan-notification-service"`
	Namespace string `envconfig:"METRICS_NAMESPACE"`
}

func NewMetricConfig() MetricConfig {
	var cfg MetricConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}
