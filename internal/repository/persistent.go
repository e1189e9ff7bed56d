package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConfigurationProvider is a read-only key lookup. Implementations never
// fail: an absent or unreadable key yields defaultValue.
//
//go:generate mockgen -package mockrepository -destination ./mock/mockpersistent.go . ConfigurationProvider
type ConfigurationProvider interface {
	GetValue(ctx context.Context, key string, defaultValue string) string
}

var _ ConfigurationProvider = (*Persistent)(nil)

type Persistent struct {
	conn   *gorm.DB
	logger *zap.Logger
}

type PersistentParams struct {
	fx.In

	Config PersistentConfig
	Logger *zap.Logger
}

func NewPersistent(lc fx.Lifecycle, params PersistentParams) (*Persistent, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		params.Config.Host,
		params.Config.Username,
		params.Config.Password,
		params.Config.Name,
		params.Config.Port,
		params.Config.SSLMode,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if params.Config.AutoMigrate {
		if err := conn.AutoMigrate(&Configuration{}); err != nil {
			return nil, fmt.Errorf("migrate configurations: %w", err)
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return newPersistent(conn, params.Logger), nil
}

func newPersistent(conn *gorm.DB, logger *zap.Logger) *Persistent {
	return &Persistent{
		conn:   conn,
		logger: logger,
	}
}

type PersistentConfig struct {
	Host        string `envconfig:"DB_HOST" required:"true"`
	Port        string `envconfig:"DB_PORT" required:"true"`
	Name        string `envconfig:"DB_NAME" required:"true"`
	Username    string `envconfig:"DB_USERNAME" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

func NewPersistentConfig() PersistentConfig {
	var cfg PersistentConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (p *Persistent) GetValue(ctx context.Context, key string, defaultValue string) string {
	configuration, err := gorm.
		G[Configuration](p.conn).
		Where("key = ?", key).
		First(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return defaultValue
	}
	if err != nil {
		p.logger.Warn("failed to read configuration, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		return defaultValue
	}

	return configuration.Value
}
