package app

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/mov9900/AutoLib-Ecosystem014/internal/config"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/db"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/logger"
	"github.com/mov9900/AutoLib-Ecosystem014/internal/redis"
)

type Infra struct {
	// DB is nil when no DATABASE_DSN is configured; credentials then
	// come from the seeded in-memory store.
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {

	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunIdentityMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		logger.Info("identity database ready", nil)

		infra.DB = &db.DB{DB: sqlDB}
	}

	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	infra.Redis = redisClient

	return infra, nil
}
