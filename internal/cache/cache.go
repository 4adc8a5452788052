package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache 健康检查写入探测键所需的方法，*redis.Client 直接满足
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Close() error
}

// FakeCache 测试用实现，SetFn 未设置时 Set 会 panic
type FakeCache struct {
	SetFn   func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	CloseFn func() error
}

func (f *FakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	if f.SetFn == nil {
		panic("unexpected Set")
	}
	return f.SetFn(ctx, key, value, ttl)
}

func (f *FakeCache) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
