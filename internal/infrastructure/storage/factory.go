package storage

import (
	"context"
	"fmt"

	"medcare-booking/config"
	"medcare-booking/internal/infrastructure/cache"
	"medcare-booking/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

// Open connects the backend named by cfg.Storage.Driver
func Open(ctx context.Context, cfg *config.Config, log *logrus.Logger) (KVStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		log.Warn("Using in-memory storage, data is lost on restart")
		return NewMemoryStore(), nil

	case config.StorageDriverRedis:
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil

	case config.StorageDriverSQLite, "":
		store, err := NewSQLiteStore(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		log.Infof("Using SQLite storage at %s", store.Path())
		return store, nil

	case config.StorageDriverPostgres:
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, err
		}
		store := NewPostgresStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("migrate kv_entries: %w", err)
		}
		return store, nil

	case config.StorageDriverS3:
		store, err := NewS3Store(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		log.Infof("Using S3 storage in bucket %s", cfg.S3.Bucket)
		return store, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
