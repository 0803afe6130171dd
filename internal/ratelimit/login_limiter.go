package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/myflix-service/internal/persistence"
)

// LoginLimiter throttles credential-verification attempts with a fixed window
// counter in Redis, keyed by username and client address.
type LoginLimiter struct {
	redis  *persistence.Redis
	limit  int
	window time.Duration
	logger *zap.Logger
}

// NewLoginLimiter builds a limiter. A limit of zero disables throttling.
func NewLoginLimiter(redis *persistence.Redis, limit int, window time.Duration, logger *zap.Logger) *LoginLimiter {
	return &LoginLimiter{redis: redis, limit: limit, window: window, logger: logger}
}

// Allow reports whether another login attempt is permitted for the key.
// Redis unavailability fails open so the store outage does not lock everyone
// out of login.
func (l *LoginLimiter) Allow(ctx context.Context, username, clientIP string) bool {
	if l == nil || l.limit <= 0 || l.redis == nil || l.redis.Client == nil {
		return true
	}

	key := fmt.Sprintf("login_attempts:%s:%s", username, clientIP)
	count, err := l.redis.Client.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := l.redis.Client.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	return count <= int64(l.limit)
}
