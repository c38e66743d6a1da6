package main

import (
	"context"
	"fmt"
	"time"

	"platzistore/internal/config"
	"platzistore/internal/repositories"

	"go.uber.org/zap"
)

// stores groups the repositories selected by STORE_DRIVER and how to release them.
type stores struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	close    func() error
}

func openStores(ctx context.Context, cfg config.Config, logger *zap.Logger) (*stores, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return &stores{
			products: repositories.NewMockProductRepository(),
			users:    repositories.NewMockUserRepository(),
			close:    func() error { return nil },
		}, nil

	case config.DriverMongo:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, db, err := repositories.OpenMongo(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		users := repositories.NewMongoUserRepository(db)
		if err := users.EnsureIndexes(connectCtx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		logger.Info("connected to mongo", zap.String("database", cfg.MongoDatabase))
		return &stores{
			products: repositories.NewMongoProductRepository(db),
			users:    users,
			close: func() error {
				disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return client.Disconnect(disconnectCtx)
			},
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		db, err := repositories.OpenGORM(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql handle: %w", err)
		}
		logger.Info("connected to database", zap.String("driver", cfg.StoreDriver))
		return &stores{
			products: repositories.NewGORMProductRepository(db),
			users:    repositories.NewGORMUserRepository(db),
			close:    sqlDB.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
