package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadKeyPrefix = "unread:"

// Redis implements UnreadCache on a redis client.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func NewRedis(cfg RedisConfig) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis addr required")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Redis{client: client, ttl: ttl}, nil
}

// NewRedisWithClient wraps an existing client (tests use miniredis here).
func NewRedisWithClient(client *redis.Client, ttl time.Duration) *Redis {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, userID string) (int, bool, error) {
	val, err := c.client.Get(ctx, unreadKeyPrefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	count, err := strconv.Atoi(val)
	if err != nil {
		// Damaged entry; treat as a miss so it gets recomputed.
		return 0, false, nil
	}
	return count, true, nil
}

func (c *Redis) Set(ctx context.Context, userID string, count int) error {
	return c.client.Set(ctx, unreadKeyPrefix+userID, strconv.Itoa(count), c.ttl).Err()
}

func (c *Redis) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, unreadKeyPrefix+userID).Err()
}

// Ping verifies connectivity at startup.
func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
