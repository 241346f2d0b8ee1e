package services

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/harborline/catalog_api/dto"
	"github.com/harborline/catalog_api/shared"
)

// RateLimitService is a fixed-window gate. Every caller shares one counter
// key; the window resets when its duration elapses and overflow is rejected
// immediately with 429 - there is no queueing or internal retry.
type RateLimitService struct {
	appContext.DefaultService

	maxRequests int
	window      time.Duration

	store    RateLimitStore
	redisSvc *RedisService
}

const RATE_LIMIT_SVC = "rate_limit_svc"

const (
	DefaultMaxRequests = 60
	DefaultWindow      = 60 * time.Second
)

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	svc.maxRequests = DefaultMaxRequests
	if maxStr := os.Getenv("RATE_LIMIT_MAX_REQUESTS"); maxStr != "" {
		max, err := strconv.Atoi(maxStr)
		if err != nil || max <= 0 {
			log.Warnf("Invalid RATE_LIMIT_MAX_REQUESTS %q, using default %d", maxStr, DefaultMaxRequests)
		} else {
			svc.maxRequests = max
		}
	}

	svc.window = DefaultWindow
	if windowStr := os.Getenv("RATE_LIMIT_WINDOW"); windowStr != "" {
		window, err := time.ParseDuration(windowStr)
		if err != nil || window <= 0 {
			log.Warnf("Invalid RATE_LIMIT_WINDOW %q, using default %s", windowStr, DefaultWindow)
		} else {
			svc.window = window
		}
	}

	svc.redisSvc = ctx.Service(REDIS_SVC).(*RedisService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	if client := svc.redisSvc.Client(); client != nil {
		svc.store = NewRedisRateLimitStore(client)
		log.Infof("Rate limiter using Redis store (%d req / %s)", svc.maxRequests, svc.window)
	} else {
		svc.store = NewMemoryRateLimitStore()
		log.Infof("Rate limiter using in-memory store (%d req / %s)", svc.maxRequests, svc.window)
	}
	return nil
}

// ==================== CORE RATE LIMITING LOGIC ====================

// IsAllowed consumes one permit for the identifier if the current window
// still has capacity. The identifier parameter exists so per-client keying
// can slot in later; all routes pass shared.LimiterKeyGlobal today.
func (svc *RateLimitService) IsAllowed(identifier string) (bool, *dto.RateLimitInfo, error) {
	allowed, remaining, resetAt, err := svc.store.Take(context.Background(), identifier, svc.maxRequests, svc.window)
	if err != nil {
		return false, nil, err
	}

	return allowed, &dto.RateLimitInfo{
		Allowed:   allowed,
		Remaining: remaining,
		ResetTime: &resetAt,
	}, nil
}

// ==================== MIDDLEWARE ====================

// Middleware gates a route group. Auth runs before this gate, so a rejected
// key never consumes a permit.
func (svc *RateLimitService) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, info, err := svc.IsAllowed(shared.LimiterKeyGlobal)
		if err != nil {
			log.Errorf("Rate limit check error: %v", err)
			// Continue on store errors rather than blocking traffic.
			return c.Next()
		}

		svc.addRateLimitHeaders(c, info)

		if !allowed {
			return svc.handleRateLimitExceeded(c, info)
		}

		return c.Next()
	}
}

// ==================== HELPER FUNCTIONS ====================

func (svc *RateLimitService) addRateLimitHeaders(c *fiber.Ctx, info *dto.RateLimitInfo) {
	if info == nil {
		return
	}

	if info.Remaining >= 0 {
		c.Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
	}

	if info.ResetTime != nil {
		c.Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (svc *RateLimitService) handleRateLimitExceeded(c *fiber.Ctx, info *dto.RateLimitInfo) error {
	rateLimitRejectedTotal.Inc()

	if info != nil && info.ResetTime != nil {
		retryAfter := int(time.Until(*info.ResetTime).Seconds())
		if retryAfter > 0 {
			c.Set("Retry-After", strconv.Itoa(retryAfter))
		}
	}

	return shared.ResponseJSON(c, http.StatusTooManyRequests, "Too Many Requests", nil)
}
