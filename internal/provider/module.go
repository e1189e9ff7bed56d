package provider

import "go.uber.org/fx"

var Module = fx.Module("provider",
	fx.Provide(
		fx.Annotate(
			NewServerChan,
			fx.As(new(ExternalNotificationProvider)),
			fx.ResultTags(`group:"external_providers"`),
		),
	),
)
