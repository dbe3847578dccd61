package sessionslot

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Redis keeps the slot as a single redis string. Prefix namespaces the key
// so several deployments can share one redis.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, key: prefix + Key}
}

// DialRedis parses url, pings the server and returns a ready slot.
func DialRedis(ctx context.Context, url, prefix string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("sessionslot: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("sessionslot: ping redis: %w", err)
	}
	return NewRedis(client, prefix), nil
}

func (r *Redis) Load(ctx context.Context) ([]byte, bool, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sessionslot: redis get: %w", err)
	}
	return b, true, nil
}

func (r *Redis) Save(ctx context.Context, value []byte) error {
	if err := r.client.Set(ctx, r.key, value, 0).Err(); err != nil {
		return fmt.Errorf("sessionslot: redis set: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("sessionslot: redis del: %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
