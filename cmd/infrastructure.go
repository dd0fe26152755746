package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"jobmarket/internal/adapters/out/memory"
	"jobmarket/internal/adapters/out/natsbus"
	"jobmarket/internal/adapters/out/postgres"
	"jobmarket/internal/adapters/out/rabbitbus"
	"jobmarket/internal/adapters/out/redisstore"
	"jobmarket/internal/core/domain/model/notification"
	"jobmarket/internal/core/ports"

	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// EventBus is a notification channel the process both publishes to and consumes from.
type EventBus interface {
	ports.EventPublisher
	ports.EventSubscriber
}

// Infrastructure owns every external connection of the process.
type Infrastructure struct {
	DB    *gorm.DB
	Cache ports.Cache
	Bus   EventBus

	closers []func() error
}

// OpenInfrastructure connects to the store, migrates it and connects the
// configured cache and channel. On error everything opened so far is closed.
func OpenInfrastructure(ctx context.Context, cfg Config, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{}

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	infra.DB = db
	infra.closers = append(infra.closers, func() error {
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return dbErr
		}
		return sqlDB.Close()
	})

	if err = postgres.Migrate(ctx, db); err != nil {
		infra.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	var client *redis.Client
	redisClient := func() (*redis.Client, error) {
		if client != nil {
			return client, nil
		}
		c, connErr := redisstore.Connect(ctx, cfg.RedisURL)
		if connErr != nil {
			return nil, connErr
		}
		client = c
		infra.closers = append(infra.closers, c.Close)
		return c, nil
	}

	switch cfg.CacheDriver {
	case CacheDriverRedis:
		c, connErr := redisClient()
		if connErr != nil {
			infra.Close()
			return nil, connErr
		}
		infra.Cache = redisstore.NewCache(c)
	default:
		infra.Cache = memory.NewCache()
	}

	switch cfg.EventBus {
	case EventBusRedis:
		c, connErr := redisClient()
		if connErr != nil {
			infra.Close()
			return nil, connErr
		}
		infra.Bus = redisstore.NewEventBus(c, logger)
	case EventBusNATS:
		bus, connErr := natsbus.Connect(ctx, natsbus.Config{URL: cfg.NATSURL, Subject: notification.Channel}, logger)
		if connErr != nil {
			infra.Close()
			return nil, connErr
		}
		infra.Bus = bus
		infra.closers = append(infra.closers, bus.Close)
	case EventBusRabbitMQ:
		bus, connErr := rabbitbus.Connect(cfg.RabbitMQURL, notification.Channel, logger)
		if connErr != nil {
			infra.Close()
			return nil, connErr
		}
		infra.Bus = bus
		infra.closers = append(infra.closers, bus.Close)
	default:
		bus := memory.NewEventBus(0, logger)
		infra.Bus = bus
		infra.closers = append(infra.closers, bus.Close)
	}

	return infra, nil
}

// Close releases connections in reverse order of opening.
func (i *Infrastructure) Close() []error {
	var failures []error
	for idx := len(i.closers) - 1; idx >= 0; idx-- {
		if err := i.closers[idx](); err != nil {
			failures = append(failures, err)
		}
	}
	i.closers = nil
	return failures
}
