package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/professionals-backend/internal/clients/redis"
	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type Clients struct {
	Redis  *goredis.Client
	Locker aggregates.Locker
}

// wireClients connects the optional Redis client. Without REDIS_ADDR the
// address lock stays a no-op and health checks skip Redis.
func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	if cfg.RedisAddr == "" {
		if cfg.AddressLockEnabled {
			log.Warn("ADDRESS_LOCK_ENABLED set without REDIS_ADDR; address lock disabled")
		}
		return Clients{}, nil
	}
	rdb, err := redis.NewClient(ctx, cfg.RedisAddr)
	if err != nil {
		return Clients{}, fmt.Errorf("init redis: %w", err)
	}
	out := Clients{Redis: rdb}
	if cfg.AddressLockEnabled {
		out.Locker = redis.NewLocker(rdb, redis.LockerConfig{
			Prefix: "professionals:",
			TTL:    cfg.AddressLockTTL,
			Wait:   cfg.AddressLockWait,
		}, log)
	}
	return out, nil
}

func (c Clients) Close() {
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
