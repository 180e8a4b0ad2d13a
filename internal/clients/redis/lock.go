package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

var ErrLockTimeout = errors.New("redis lock: timed out waiting for lock")

// releaseScript deletes the key only while it still holds our token, so a
// lock that expired and was re-acquired elsewhere is left alone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type LockerConfig struct {
	Prefix string
	// TTL bounds how long a crashed holder can block others.
	TTL time.Duration
	// Wait bounds how long Lock retries before giving up.
	Wait  time.Duration
	Retry time.Duration
}

// Locker is a single-instance SET NX lock keyed per professional.
type Locker struct {
	rdb goredis.Cmdable
	cfg LockerConfig
	log *logger.Logger
}

func NewLocker(rdb goredis.Cmdable, cfg LockerConfig, log *logger.Logger) *Locker {
	if cfg.Prefix == "" {
		cfg.Prefix = "lock:"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Second
	}
	if cfg.Wait <= 0 {
		cfg.Wait = 3 * time.Second
	}
	if cfg.Retry <= 0 {
		cfg.Retry = 50 * time.Millisecond
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Locker{rdb: rdb, cfg: cfg, log: log.With("client", "RedisLocker")}
}

// Lock blocks until key is acquired, ctx ends, or the wait budget runs out.
func (l *Locker) Lock(ctx context.Context, key string) (func(context.Context) error, error) {
	full := l.cfg.Prefix + key
	token := uuid.NewString()
	deadline := time.Now().Add(l.cfg.Wait)

	for {
		ok, err := l.rdb.SetNX(ctx, full, token, l.cfg.TTL).Result()
		if err != nil {
			return nil, fmt.Errorf("redis lock %s: %w", full, err)
		}
		if ok {
			return func(ctx context.Context) error {
				return l.release(ctx, full, token)
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.cfg.Retry):
		}
	}
}

func (l *Locker) release(ctx context.Context, key, token string) error {
	n, err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Int()
	if err != nil {
		return fmt.Errorf("redis unlock %s: %w", key, err)
	}
	if n == 0 {
		l.log.Warn("lock expired before release", "key", key)
	}
	return nil
}
