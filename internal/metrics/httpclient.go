package metrics

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Premium ServerChan hosts embed the send key in the first DNS label.
const sendKeyHostPrefix = "sctp"

type HTTPClientCollector struct {
	requestCount          metric.Int64Counter
	requestDuration       metric.Float64Histogram
	errorCount            metric.Int64Counter
	circuitBreakerState   metric.Int64Gauge
	circuitBreakerChanges metric.Int64Counter
}

// NewHTTPClientCollector falls back to a noop meter when meter is nil, so
// callers outside the fx graph can skip metrics entirely.
func NewHTTPClientCollector(meter metric.Meter) (*HTTPClientCollector, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("noop")
	}

	var (
		c   HTTPClientCollector
		err error
	)

	if c.requestCount, err = meter.Int64Counter(
		"http.client.requests",
		metric.WithDescription("Outbound provider requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, err
	}

	if c.requestDuration, err = meter.Float64Histogram(
		"http.client.duration",
		metric.WithDescription("Outbound provider request duration, including time spent in the breaker"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if c.errorCount, err = meter.Int64Counter(
		"http.client.errors",
		metric.WithDescription("Outbound provider requests that failed at the transport level"),
		metric.WithUnit("{error}"),
	); err != nil {
		return nil, err
	}

	if c.circuitBreakerState, err = meter.Int64Gauge(
		"http.client.circuit_breaker.state",
		metric.WithDescription("Circuit breaker state (0=closed, 1=open, 2=half-open)"),
		metric.WithUnit("{state}"),
	); err != nil {
		return nil, err
	}

	if c.circuitBreakerChanges, err = meter.Int64Counter(
		"http.client.circuit_breaker.state_changes",
		metric.WithDescription("Circuit breaker state transitions"),
		metric.WithUnit("{change}"),
	); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *HTTPClientCollector) RecordRequest(
	ctx context.Context,
	method string,
	host string,
	statusCode int,
	duration time.Duration,
	err error,
) {
	hostAttr := attribute.String("http.host", HostLabel(host))
	attrs := metric.WithAttributes(
		attribute.String("http.method", method),
		hostAttr,
		attribute.Int("http.status_code", statusCode),
	)

	c.requestCount.Add(ctx, 1, attrs)
	c.requestDuration.Record(ctx, duration.Seconds(), attrs)

	if err != nil {
		c.errorCount.Add(ctx, 1, metric.WithAttributes(
			hostAttr,
			attribute.String("error.type", getErrorType(err, statusCode)),
		))
	}
}

func (c *HTTPClientCollector) RecordCircuitBreakerState(ctx context.Context, host string, state gobreaker.State) {
	c.circuitBreakerState.Record(ctx, circuitBreakerStateValue(state), metric.WithAttributes(
		attribute.String("http.host", HostLabel(host)),
		attribute.String("circuit_breaker.state", state.String()),
	))
}

func (c *HTTPClientCollector) RecordCircuitBreakerStateChange(ctx context.Context, host string, from gobreaker.State, to gobreaker.State) {
	c.circuitBreakerChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("http.host", HostLabel(host)),
		attribute.String("circuit_breaker.from_state", from.String()),
		attribute.String("circuit_breaker.to_state", to.String()),
	))
}

// HostLabel returns host with a send key subdomain masked, for use in
// metric attributes and logs. Other hosts are returned unchanged.
func HostLabel(host string) string {
	key, parent, ok := strings.Cut(host, ".")
	if !ok || !strings.HasPrefix(key, sendKeyHostPrefix) {
		return host
	}
	return "*." + parent
}

func circuitBreakerStateValue(state gobreaker.State) int64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return -1
	}
}

// getErrorType classifies a failed request for the error.type attribute
func getErrorType(err error, statusCode int) string {
	if err == nil {
		return "none"
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_breaker_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case statusCode >= http.StatusInternalServerError:
		return "invalid_status"
	default:
		return "unknown"
	}
}
