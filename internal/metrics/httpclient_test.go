package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func newTestClientCollector(t *testing.T) (*HTTPClientCollector, *metric.ManualReader) {
	t.Helper()

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	collector, err := NewHTTPClientCollector(provider.Meter("test"))
	require.NoError(t, err)

	return collector, reader
}

func collectByName(t *testing.T, reader *metric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	byName := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			byName[m.Name] = m
		}
	}
	return byName
}

func stringAttr(set attribute.Set, key string) string {
	v, _ := set.Value(attribute.Key(key))
	return v.AsString()
}

func TestHostLabel(t *testing.T) {
	tests := []struct {
		host     string
		expected string
	}{
		{"sctapi.ftqq.com", "sctapi.ftqq.com"},
		{"sctp42tAbCdE.push.ft07.com", "*.push.ft07.com"},
		{"sctp.push.ft07.com", "*.push.ft07.com"},
		{"SCTP42t.push.ft07.com", "SCTP42t.push.ft07.com"},
		{"localhost", "localhost"},
		{"127.0.0.1", "127.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			assert.Equal(t, tt.expected, HostLabel(tt.host))
		})
	}
}

func TestHTTPClientCollector_RecordRequest(t *testing.T) {
	tests := []struct {
		name              string
		host              string
		statusCode        int
		err               error
		expectedHost      string
		expectedErrorType string
	}{
		{
			name:         "delivered to legacy host",
			host:         "sctapi.ftqq.com",
			statusCode:   http.StatusOK,
			expectedHost: "sctapi.ftqq.com",
		},
		{
			name:         "rejection envelope is not an error",
			host:         "sctapi.ftqq.com",
			statusCode:   http.StatusBadRequest,
			expectedHost: "sctapi.ftqq.com",
		},
		{
			name:              "premium host outage hides the key",
			host:              "sctp42tSecret.push.ft07.com",
			statusCode:        http.StatusServiceUnavailable,
			err:               errors.New("server error: 503"),
			expectedHost:      "*.push.ft07.com",
			expectedErrorType: "invalid_status",
		},
		{
			name:              "open breaker",
			host:              "sctapi.ftqq.com",
			err:               gobreaker.ErrOpenState,
			expectedHost:      "sctapi.ftqq.com",
			expectedErrorType: "circuit_breaker_open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector, reader := newTestClientCollector(t)

			collector.RecordRequest(context.Background(), http.MethodPost, tt.host, tt.statusCode, 250*time.Millisecond, tt.err)

			byName := collectByName(t, reader)

			requests := byName["http.client.requests"].Data.(metricdata.Sum[int64])
			require.Len(t, requests.DataPoints, 1)
			point := requests.DataPoints[0]
			assert.Equal(t, int64(1), point.Value)
			assert.Equal(t, tt.expectedHost, stringAttr(point.Attributes, "http.host"))
			assert.Equal(t, http.MethodPost, stringAttr(point.Attributes, "http.method"))
			status, _ := point.Attributes.Value("http.status_code")
			assert.Equal(t, int64(tt.statusCode), status.AsInt64())

			duration := byName["http.client.duration"].Data.(metricdata.Histogram[float64])
			require.Len(t, duration.DataPoints, 1)
			assert.InDelta(t, 0.25, duration.DataPoints[0].Sum, 1e-9)

			errorsMetric, found := byName["http.client.errors"]
			if tt.expectedErrorType == "" {
				assert.False(t, found)
				return
			}
			require.True(t, found)
			errPoints := errorsMetric.Data.(metricdata.Sum[int64]).DataPoints
			require.Len(t, errPoints, 1)
			assert.Equal(t, tt.expectedErrorType, stringAttr(errPoints[0].Attributes, "error.type"))
			assert.Equal(t, tt.expectedHost, stringAttr(errPoints[0].Attributes, "http.host"))
		})
	}
}

func TestHTTPClientCollector_RecordCircuitBreakerState(t *testing.T) {
	tests := []struct {
		state    gobreaker.State
		expected int64
	}{
		{gobreaker.StateClosed, 0},
		{gobreaker.StateOpen, 1},
		{gobreaker.StateHalfOpen, 2},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			collector, reader := newTestClientCollector(t)

			collector.RecordCircuitBreakerState(context.Background(), "sctp9Secret.push.ft07.com", tt.state)

			gauge := collectByName(t, reader)["http.client.circuit_breaker.state"].Data.(metricdata.Gauge[int64])
			require.Len(t, gauge.DataPoints, 1)
			assert.Equal(t, tt.expected, gauge.DataPoints[0].Value)
			assert.Equal(t, tt.state.String(), stringAttr(gauge.DataPoints[0].Attributes, "circuit_breaker.state"))
			assert.Equal(t, "*.push.ft07.com", stringAttr(gauge.DataPoints[0].Attributes, "http.host"))
		})
	}
}

func TestHTTPClientCollector_RecordCircuitBreakerStateChange(t *testing.T) {
	collector, reader := newTestClientCollector(t)
	ctx := context.Background()

	collector.RecordCircuitBreakerStateChange(ctx, "sctapi.ftqq.com", gobreaker.StateClosed, gobreaker.StateOpen)
	collector.RecordCircuitBreakerStateChange(ctx, "sctapi.ftqq.com", gobreaker.StateOpen, gobreaker.StateHalfOpen)
	collector.RecordCircuitBreakerStateChange(ctx, "sctapi.ftqq.com", gobreaker.StateClosed, gobreaker.StateOpen)

	changes := collectByName(t, reader)["http.client.circuit_breaker.state_changes"].Data.(metricdata.Sum[int64])

	got := map[string]int64{}
	for _, dp := range changes.DataPoints {
		got[stringAttr(dp.Attributes, "circuit_breaker.from_state")+"->"+stringAttr(dp.Attributes, "circuit_breaker.to_state")] = dp.Value
	}
	assert.Equal(t, map[string]int64{
		"closed->open":    2,
		"open->half-open": 1,
	}, got)
}

func TestGetErrorType(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		expected   string
	}{
		{"nil error", nil, 0, "none"},
		{"server error status", errors.New("server error: 503"), http.StatusServiceUnavailable, "invalid_status"},
		{"circuit breaker open", gobreaker.ErrOpenState, 0, "circuit_breaker_open"},
		{"too many half-open requests", fmt.Errorf("wrapped: %w", gobreaker.ErrTooManyRequests), 0, "circuit_breaker_open"},
		{"deadline exceeded", fmt.Errorf("post: %w", context.DeadlineExceeded), 0, "timeout"},
		{"canceled", context.Canceled, 0, "canceled"},
		{"connection refused", errors.New("dial tcp: connection refused"), 0, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getErrorType(tt.err, tt.statusCode))
		})
	}
}

func TestNewHTTPClientCollector_NilMeter(t *testing.T) {
	collector, err := NewHTTPClientCollector(nil)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		ctx := context.Background()
		collector.RecordRequest(ctx, http.MethodPost, "sctapi.ftqq.com", http.StatusOK, time.Millisecond, nil)
		collector.RecordCircuitBreakerState(ctx, "sctapi.ftqq.com", gobreaker.StateOpen)
		collector.RecordCircuitBreakerStateChange(ctx, "sctapi.ftqq.com", gobreaker.StateClosed, gobreaker.StateOpen)
	})
}
