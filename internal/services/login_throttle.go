package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saasboard/internal/caching"
	"saasboard/internal/logger"

	"go.uber.org/zap"
)

// LoginThrottle counts failed logins per tenant and email.
type LoginThrottle interface {
	Blocked(ctx context.Context, subdomain, email string) bool
	RecordFailure(ctx context.Context, subdomain, email string)
	Reset(ctx context.Context, subdomain, email string)
}

type redisLoginThrottle struct {
	cache       caching.CacheService
	maxAttempts int
	window      time.Duration
}

// NewLoginThrottle returns a throttle backed by cache. Cache failures are
// logged and never block a login.
func NewLoginThrottle(cache caching.CacheService, maxAttempts int, window time.Duration) LoginThrottle {
	return &redisLoginThrottle{cache: cache, maxAttempts: maxAttempts, window: window}
}

func throttleKey(subdomain, email string) string {
	return fmt.Sprintf("login:%s:%s", strings.ToLower(subdomain), strings.ToLower(email))
}

func (t *redisLoginThrottle) Blocked(ctx context.Context, subdomain, email string) bool {
	if t.maxAttempts <= 0 {
		return false
	}
	limited, err := t.cache.IsRateLimited(ctx, throttleKey(subdomain, email), t.maxAttempts)
	if err != nil {
		logger.FromContext(ctx).Warn("login throttle unavailable", zap.Error(err))
		return false
	}
	return limited
}

func (t *redisLoginThrottle) RecordFailure(ctx context.Context, subdomain, email string) {
	if _, err := t.cache.IncrementRateLimit(ctx, throttleKey(subdomain, email), t.window); err != nil {
		logger.FromContext(ctx).Warn("failed to record login failure", zap.Error(err))
	}
}

func (t *redisLoginThrottle) Reset(ctx context.Context, subdomain, email string) {
	if err := t.cache.Delete(ctx, throttleKey(subdomain, email)); err != nil {
		logger.FromContext(ctx).Warn("failed to reset login throttle", zap.Error(err))
	}
}

type noopLoginThrottle struct{}

func (noopLoginThrottle) Blocked(context.Context, string, string) bool { return false }
func (noopLoginThrottle) RecordFailure(context.Context, string, string) {}
func (noopLoginThrottle) Reset(context.Context, string, string)        {}
