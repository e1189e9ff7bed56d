package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/koungkub/serverchan-notification-service/internal/client"
	"github.com/koungkub/serverchan-notification-service/internal/metrics"
	"github.com/koungkub/serverchan-notification-service/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	ServerChanName = "serverchan"

	serverChanPremiumPrefix = "sctp"
	serverChanPremiumURL    = "https://%s.push.ft07.com/send"
	serverChanLegacyURL     = "https://sctapi.ftqq.com/%s.send"
)

var (
	errMissingCode = errors.New("response has no code field")
	errInvalidCode = errors.New("response code is not an integer")
)

var _ ExternalNotificationProvider = (*ServerChan)(nil)

type ServerChan struct {
	configuration repository.ConfigurationProvider
	httpclient    client.HTTPClientProvider
	collector     *metrics.NotificationCollector
	logger        *zap.Logger
}

type ServerChanParams struct {
	fx.In

	Configuration repository.ConfigurationProvider
	HTTPClient    client.HTTPClientProvider
	Collector     *metrics.NotificationCollector
	Logger        *zap.Logger
}

func NewServerChan(params ServerChanParams) *ServerChan {
	return &ServerChan{
		configuration: params.Configuration,
		httpclient:    params.HTTPClient,
		collector:     params.Collector,
		logger:        params.Logger.With(zap.String("provider", ServerChanName)),
	}
}

type serverChanPayload struct {
	Title   string `json:"title"`
	Content string `json:"desp"`
}

func (s *ServerChan) Name() string {
	return ServerChanName
}

func (s *ServerChan) Send(ctx context.Context, title string, content string) (bool, error) {
	sendKey := s.configuration.GetValue(ctx, repository.ServerChanSendKey, "")

	body, err := json.Marshal(serverChanPayload{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return false, err
	}

	resp, err := s.httpclient.Send(ctx, client.Request{
		URL:  BuildServerChanURL(sendKey),
		Body: body,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
			"Accept":       "application/json",
		},
	})
	if err != nil {
		s.collector.RecordDelivery(ctx, ServerChanName, metrics.OutcomeTransportError)
		return false, err
	}

	code, err := parseResponseCode(resp.Body)
	switch {
	case errors.Is(err, errInvalidCode):
		s.logger.Warn("Failed to send ServerChan notification, unknown code in response",
			zap.String("response", resp.Body),
		)
		s.collector.RecordDelivery(ctx, ServerChanName, metrics.OutcomeMalformed)
		return false, nil
	case err != nil:
		s.logger.Warn("Failed to send ServerChan notification, unknown response",
			zap.String("response", resp.Body),
			zap.Error(err),
		)
		s.collector.RecordDelivery(ctx, ServerChanName, metrics.OutcomeMalformed)
		return false, nil
	}

	if code != 0 {
		s.logger.Warn("Failed to send ServerChan notification",
			zap.Int32("code", code),
		)
		s.collector.RecordDelivery(ctx, ServerChanName, metrics.OutcomeRejected)
		return false, nil
	}

	s.collector.RecordDelivery(ctx, ServerChanName, metrics.OutcomeDelivered)
	return true, nil
}

// BuildServerChanURL routes sctp-prefixed keys to their own subdomain and all
// other keys to the shared host. The key is not validated.
func BuildServerChanURL(sendKey string) string {
	if strings.HasPrefix(sendKey, serverChanPremiumPrefix) {
		return fmt.Sprintf(serverChanPremiumURL, sendKey)
	}
	return fmt.Sprintf(serverChanLegacyURL, sendKey)
}

// parseResponseCode reads the "code" member of a JSON object body. The key
// match is exact; struct tags would also accept "Code" or "CODE".
func parseResponseCode(body string) (int32, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return 0, err
	}

	raw, ok := envelope["code"]
	if !ok {
		return 0, errMissingCode
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errInvalidCode
	}

	var code int32
	if err := json.Unmarshal(raw, &code); err != nil {
		return 0, errInvalidCode
	}

	return code, nil
}
