package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/koungkub/serverchan-notification-service/internal/client"
	"github.com/koungkub/serverchan-notification-service/internal/metrics"
	"github.com/koungkub/serverchan-notification-service/internal/provider"
	"github.com/koungkub/serverchan-notification-service/internal/repository"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const sendKeyEnv = "SERVERCHAN_SEND_KEY"

var errNotDelivered = errors.New("notification was not accepted by serverchan")

// newRootCmd builds the notify command. A nil transport uses http.DefaultTransport.
func newRootCmd(transport http.RoundTripper) *cobra.Command {
	var (
		sendKey string
		title   string
		content string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Send a single ServerChan notification",
		Long: `Send a single notification through ServerChan and exit.

Examples:
  # Send with an explicit key
  notify --send-key=SCT123 --title="Build finished" --content="All stages cleared"

  # Read the key from the environment
  SERVERCHAN_SEND_KEY=sctp42tABC notify --title="Disk almost full"`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if sendKey == "" {
				sendKey = os.Getenv(sendKeyEnv)
			}
			if sendKey == "" {
				return fmt.Errorf("send key is required: use --send-key or %s", sendKeyEnv)
			}

			logger := newLogger(cmd.ErrOrStderr(), verbose)
			defer logger.Sync()

			sender, err := newServerChan(sendKey, transport, logger)
			if err != nil {
				return err
			}

			sent, err := sender.Send(cmd.Context(), title, content)
			if err != nil {
				return fmt.Errorf("failed to send notification: %w", err)
			}
			if !sent {
				return errNotDelivered
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Notification sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&sendKey, "send-key", "", "ServerChan send key (defaults to $"+sendKeyEnv+")")
	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&content, "content", "", "Notification body, markdown supported")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also log debug output such as failed HTTP attempts")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// newServerChan wires the provider by hand with a noop meter and a static
// configuration holding the send key.
func newServerChan(sendKey string, transport http.RoundTripper, logger *zap.Logger) (*provider.ServerChan, error) {
	meter := noop.NewMeterProvider().Meter("notify")

	clientCollector, err := metrics.NewHTTPClientCollector(meter)
	if err != nil {
		return nil, err
	}
	notificationCollector, err := metrics.NewNotificationCollector(meter)
	if err != nil {
		return nil, err
	}

	registry := client.NewCircuitBreakerRegistry(client.CircuitBreakerRegistryParams{
		Config:           client.NewCircuitBreakerRegistryConfig(),
		Logger:           logger,
		MetricsCollector: clientCollector,
	})

	httpClient := client.NewHTTPClient(client.HTTPClientParams{
		Config:                 client.NewHTTPClientConfig(),
		CircuitBreakerRegistry: registry,
		MetricsCollector:       clientCollector,
		Logger:                 logger,
		Transport:              transport,
	})

	return provider.NewServerChan(provider.ServerChanParams{
		Configuration: repository.StaticConfiguration{repository.ServerChanSendKey: sendKey},
		HTTPClient:    httpClient,
		Collector:     notificationCollector,
		Logger:        logger,
	}), nil
}

// newLogger writes console-encoded entries to w. Provider warnings are always
// shown; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	))
}
