package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Takanoj0616/trip-app-sub000/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisKV go-redis 实现，多实例部署时共享缓存与计数
type RedisKV struct {
	Client *redis.Client
}

func NewRedisKV(cfg config.RedisConfig) *RedisKV {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})
	return &RedisKV{Client: rdb}
}

func (r *RedisKV) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping失败: %w", err)
	}
	return nil
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return v, err
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) SetNX(ctx context.Context, key, value string) (bool, error) {
	return r.Client.SetNX(ctx, key, value, 0).Result()
}

func (r *RedisKV) Incr(ctx context.Context, key string) (int64, error) {
	return r.Client.Incr(ctx, key).Result()
}

func (r *RedisKV) Close() error {
	if r.Client != nil {
		return r.Client.Close()
	}
	return nil
}
