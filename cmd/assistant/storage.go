package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository/blob"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/cache"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/config"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/database"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/storage"
)

// openSnapshotStore builds the store for the configured driver. The returned
// func releases its connections.
func openSnapshotStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.SnapshotStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverFile:
		fs, err := storage.NewFileStorage(cfg.Storage.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return blob.NewSnapshotStore(fs, cfg.Storage.ContactsKey, cfg.Storage.NotesKey, logger), noop, nil

	case config.DriverS3:
		s3, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		return blob.NewSnapshotStore(s3, cfg.Storage.ContactsKey, cfg.Storage.NotesKey, logger), noop, nil

	case config.DriverRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		rs := cache.NewRedisStorage(client, cfg.Redis.KeyPrefix)
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close redis client", zap.Error(err))
			}
		}
		return blob.NewSnapshotStore(rs, cfg.Storage.ContactsKey, cfg.Storage.NotesKey, logger), closeFn, nil

	case config.DriverPostgres:
		pool, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		if err := database.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return postgres.NewSnapshotStore(pool), pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
