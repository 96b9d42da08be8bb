package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/coldline/catalog/models"
)

// Limiter decides whether the request identified by key may proceed.
type Limiter interface {
	Take(ctx context.Context, key string) (info *models.RateLimiter, allowed bool, err error)
}

// RateLimiter throttles per client IP, method and route.
func RateLimiter(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()

		info, allowed, err := limiter.Take(c.Request.Context(), key)
		if err != nil {
			logger.Error("rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Rate limiter error"))
			c.Abort()
			return
		}

		// Store in context for controllers
		c.Set(models.RateLimiterKey, info)

		if !allowed {
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse(c, "Too many requests"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// ── Redis fixed window ──────────────────────────────────────────────────────

// RedisLimiter counts requests per fixed window in Redis, so limits hold
// across replicas.
type RedisLimiter struct {
	client      redis.Cmdable
	maxRequests int
	window      time.Duration
}

func NewRedisLimiter(client redis.Cmdable, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, maxRequests: maxRequests, window: window}
}

func (l *RedisLimiter) Take(ctx context.Context, key string) (*models.RateLimiter, bool, error) {
	resetKey := key + ":resetAt"

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return nil, false, err
	}

	// First request → set expiry and stable resetAt
	if count == 1 {
		l.client.Expire(ctx, key, l.window)
		l.client.Set(ctx, resetKey, time.Now().Add(l.window).Unix(), l.window)
	}

	resetAtUnix, _ := l.client.Get(ctx, resetKey).Int64()
	resetAt := time.Unix(resetAtUnix, 0)

	return buildRate(l.maxRequests, l.maxRequests-int(count), resetAt, time.Now()), int(count) <= l.maxRequests, nil
}

// ── In-memory token bucket ──────────────────────────────────────────────────

// MemoryLimiter keeps one token bucket per key. It refills maxRequests tokens
// per window and is used when no Redis is configured. Buckets idle for a whole
// window are full again and get dropped.
type MemoryLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*memoryBucket
	maxRequests int
	window      time.Duration
	lastSweep   time.Time
	now         func() time.Time
}

type memoryBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewMemoryLimiter(maxRequests int, window time.Duration) *MemoryLimiter {
	if maxRequests <= 0 {
		maxRequests = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryLimiter{
		buckets:     make(map[string]*memoryBucket),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

func (l *MemoryLimiter) bucket(key string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &memoryBucket{
			limiter: rate.NewLimiter(rate.Every(l.window/time.Duration(l.maxRequests)), l.maxRequests),
		}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// sweep drops buckets untouched for at least one window. Caller holds mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.window {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// Len reports how many buckets are currently tracked.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *MemoryLimiter) Take(_ context.Context, key string) (*models.RateLimiter, bool, error) {
	now := l.now()
	b := l.bucket(key, now)

	allowed := b.AllowN(now, 1)
	tokens := b.TokensAt(now)

	// Time until the bucket is full again.
	missing := float64(l.maxRequests) - tokens
	resetAt := now.Add(time.Duration(missing * float64(l.window) / float64(l.maxRequests)))

	return buildRate(l.maxRequests, int(tokens), resetAt, now), allowed, nil
}

func buildRate(limit, remaining int, resetAt, now time.Time) *models.RateLimiter {
	// Calculate remaining requests (clamped at 0)
	if remaining < 0 {
		remaining = 0
	}
	// Reset in seconds (clamped at 0)
	resetInSeconds := int(resetAt.Sub(now).Seconds())
	if resetInSeconds < 0 {
		resetInSeconds = 0
	}
	return &models.RateLimiter{
		Limit:          limit,
		Remaining:      remaining,
		ResetAt:        resetAt,
		ResetInSeconds: resetInSeconds,
	}
}
