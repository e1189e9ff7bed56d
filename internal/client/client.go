package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/koungkub/serverchan-notification-service/internal/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrServerError = errors.New("response status code is server error")

//go:generate mockgen -package mockclient -destination ./mock/mockclient.go . HTTPClientProvider
type HTTPClientProvider interface {
	Send(ctx context.Context, req Request) (Response, error)
}

var _ HTTPClientProvider = (*HTTPClient)(nil)

type HTTPClient struct {
	httpclient             *http.Client
	circuitBreakerRegistry *CircuitBreakerRegistry
	metricsCollector       *metrics.HTTPClientCollector
	logger                 *zap.Logger
}

type HTTPClientConfig struct {
	Timeout time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT" default:"5s"`
}

type HTTPClientParams struct {
	fx.In

	Config                 HTTPClientConfig
	CircuitBreakerRegistry *CircuitBreakerRegistry
	MetricsCollector       *metrics.HTTPClientCollector
	Logger                 *zap.Logger
	Transport              http.RoundTripper `optional:"true"`
}

func NewHTTPClient(params HTTPClientParams) *HTTPClient {
	return &HTTPClient{
		httpclient: &http.Client{
			Timeout:   params.Config.Timeout,
			Transport: params.Transport,
		},
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
		metricsCollector:       params.MetricsCollector,
		logger:                 params.Logger,
	}
}

func NewHTTPClientConfig() HTTPClientConfig {
	var cfg HTTPClientConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

// Send posts req.Body to req.URL. Bodies of non-5xx responses are returned
// as-is so the caller can interpret provider specific error envelopes.
func (c *HTTPClient) Send(ctx context.Context, r Request) (Response, error) {
	start := time.Now()
	host, err := extractHost(r.URL)
	if err != nil {
		return Response{}, err
	}

	circuitBreaker := c.circuitBreakerRegistry.GetOrCreate(host)

	c.metricsCollector.RecordCircuitBreakerState(ctx, host, circuitBreaker.State())

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		r.URL,
		bytes.NewReader(r.Body),
	)
	if err != nil {
		return Response{}, err
	}
	for key, value := range r.Headers {
		req.Header.Set(key, value)
	}

	resp, err := circuitBreaker.Execute(func() (CircuitBreakerResponse, error) {
		resp, err := c.httpclient.Do(req)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}
		defer resp.Body.Close()

		rawBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return CircuitBreakerResponse{}, err
		}

		cbResp := CircuitBreakerResponse{
			Body:       rawBody,
			StatusCode: resp.StatusCode,
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return cbResp, fmt.Errorf("%w: %d", ErrServerError, resp.StatusCode)
		}

		return cbResp, nil
	})

	duration := time.Since(start)
	c.metricsCollector.RecordRequest(ctx, http.MethodPost, host, resp.StatusCode, duration, err)

	if err != nil {
		c.logger.Debug("http request failed",
			zap.String("host", metrics.HostLabel(host)),
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err),
		)
		return Response{}, err
	}

	return Response{
		StatusCode: resp.StatusCode,
		Body:       string(resp.Body),
	}, nil
}

func extractHost(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("url %q has no host", u)
	}
	return parsed.Host, nil
}
