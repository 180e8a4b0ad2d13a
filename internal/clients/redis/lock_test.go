package redis

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

func testLocker(t *testing.T, cfg LockerConfig) *Locker {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb, err := NewClient(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	cfg.Prefix = "test:" + uuid.NewString() + ":"
	return NewLocker(rdb, cfg, logger.Nop())
}

func TestLockerSerializesHolders(t *testing.T) {
	l := testLocker(t, LockerConfig{TTL: 5 * time.Second, Wait: 5 * time.Second, Retry: 5 * time.Millisecond})

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), "professional:x:write")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			assert.NoError(t, unlock(context.Background()))
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, maxInside)
}

func TestLockerTimesOut(t *testing.T) {
	l := testLocker(t, LockerConfig{TTL: 5 * time.Second, Wait: 50 * time.Millisecond, Retry: 10 * time.Millisecond})
	unlock, err := l.Lock(context.Background(), "k")
	require.NoError(t, err)
	defer func() { _ = unlock(context.Background()) }()

	_, err = l.Lock(context.Background(), "k")
	assert.ErrorIs(t, err, ErrLockTimeout)
}
