package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisClient 为 NewRedisClient 内部使用的方法，便于测试时替换
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// pingTimeout 创建连接时 Ping 的等待上限
const pingTimeout = 5 * time.Second

// NewRedisClient 创建 Redis client 并确认可连接
// addr: Redis 地址；password: 密码，可空；db: 数据库编号
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
