package session

import (
	"context"
	"fmt"

	"github.com/aishuu11/hackathon-2025/internal/cache"
	"github.com/aishuu11/hackathon-2025/internal/config"
)

// Open builds the store selected by cfg.Driver.
func Open(ctx context.Context, cfg config.SessionConfig) (Store, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewCacheStore(cache.NewMemoryClient(cfg.MaxSessions), cfg.TTL), nil
	case "redis":
		client, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return NewCacheStore(client, cfg.TTL), nil
	case "sqlite":
		return OpenSQLStore(ctx, DriverSQLite, cfg.DSN)
	case "postgres":
		return OpenSQLStore(ctx, DriverPostgres, cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Driver)
	}
}
