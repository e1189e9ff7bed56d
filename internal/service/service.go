package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/koungkub/serverchan-notification-service/internal/provider"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("service",
	fx.Provide(
		fx.Annotate(
			NewNotificationService,
			fx.As(new(NotificationProvider)),
		),
	),
)

var ErrUnsupportedChannel = errors.New("not supported notification channel")

//go:generate mockgen -package mockservice -destination ./mock/mockservice.go . NotificationProvider
type NotificationProvider interface {
	Send(ctx context.Context, channel string, title string, content string) (bool, error)
	Channels() []string
}

var _ NotificationProvider = (*NotificationService)(nil)

type NotificationService struct {
	providers map[string]provider.ExternalNotificationProvider
	logger    *zap.Logger
}

type NotificationServiceParams struct {
	fx.In

	Providers []provider.ExternalNotificationProvider `group:"external_providers"`
	Logger    *zap.Logger
}

func NewNotificationService(params NotificationServiceParams) *NotificationService {
	providers := make(map[string]provider.ExternalNotificationProvider, len(params.Providers))
	for _, p := range params.Providers {
		providers[p.Name()] = p
	}

	return &NotificationService{
		providers: providers,
		logger:    params.Logger,
	}
}

func (s *NotificationService) Send(ctx context.Context, channel string, title string, content string) (bool, error) {
	p, ok := s.providers[channel]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnsupportedChannel, channel)
	}

	sent, err := p.Send(ctx, title, content)
	if err != nil {
		s.logger.Error("notification transport failed",
			zap.String("channel", channel),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("notification processed",
		zap.String("channel", channel),
		zap.Bool("sent", sent),
	)
	return sent, nil
}

func (s *NotificationService) Channels() []string {
	channels := make([]string, 0, len(s.providers))
	for name := range s.providers {
		channels = append(channels, name)
	}
	slices.Sort(channels)

	return channels
}
