package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDriver stores each collection blob under its key in Redis.
type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriver connects to Redis and verifies the connection with a ping.
func NewRedisDriver(addr, password string, db int) (*RedisDriver, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}

	return &RedisDriver{client: client}, nil
}

// Load returns the value stored under key, or ErrNotFound.
func (d *RedisDriver) Load(ctx context.Context, key string) ([]byte, error) {
	value, err := d.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	return value, nil
}

// Save replaces the value under key. Collections never expire.
func (d *RedisDriver) Save(ctx context.Context, key string, value []byte) error {
	if err := d.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (d *RedisDriver) Close() error {
	return d.client.Close()
}
