package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/redis/go-redis/v9"
)

// RedisService holds the optional Redis connection. It is only dialed when
// REDIS_ADDR is set; without it the rate limiter stays on the in-process
// store and limits apply to this process alone.
type RedisService struct {
	appContext.DefaultService
	redis *redis.Client
}

const REDIS_SVC = "redis_svc"

func (svc RedisService) Id() string {
	return REDIS_SVC
}

func (svc *RedisService) Configure(ctx *appContext.Context) error {
	svc.initRedisClient()
	return svc.DefaultService.Configure(ctx)
}

func (svc *RedisService) Start() error {
	if svc.redis != nil {
		ctx := context.Background()
		_, err := svc.redis.Ping(ctx).Result()
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
	}
	return nil
}

func (svc *RedisService) Client() *redis.Client {
	return svc.redis
}

func (svc *RedisService) initRedisClient() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return
	}

	redisPassword := os.Getenv("REDIS_PASSWORD")

	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			redisDB = db
		}
	}

	svc.redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})
}

// RedisRateLimitStore counts permits with INCR so the check-and-increment is
// atomic on the Redis side as well.
type RedisRateLimitStore struct {
	client *redis.Client
}

func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

func (s *RedisRateLimitStore) Take(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Time, error) {
	counterKey := fmt.Sprintf("ratelimit:%s", key)

	count, err := s.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, 0, time.Time{}, err
	}

	// First hit in the window owns the expiry.
	if count == 1 {
		if err := s.client.Expire(ctx, counterKey, window).Err(); err != nil {
			return false, 0, time.Time{}, err
		}
	}

	ttl, err := s.client.TTL(ctx, counterKey).Result()
	if err != nil {
		return false, 0, time.Time{}, err
	}
	resetAt := time.Now().Add(ttl)

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return int(count) <= limit, remaining, resetAt, nil
}
