package client

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http_client",
	fx.Provide(
		fx.Annotate(
			NewHTTPClient,
			fx.As(new(HTTPClientProvider)),
		),
		NewHTTPClientConfig,
		NewCircuitBreakerRegistry,
		NewCircuitBreakerRegistryConfig,
	),
	fx.Decorate(func(logger *zap.Logger) *zap.Logger {
		return logger.Named("http_client")
	}),
)
