package repository

import "go.uber.org/fx"

var Module = fx.Module("repository",
	persistentModule,
)

var (
	persistentModule = fx.Provide(
		fx.Annotate(
			NewPersistent,
			fx.As(new(ConfigurationProvider)),
		),
		NewPersistentConfig,
	)
)
