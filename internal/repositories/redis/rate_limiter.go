// Package redis implements the sliding-window login rate limiter.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tnsurya7/newtons-labs/internal/config"
)

type RateLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

func NewRateLimiter(client *redis.Client, cfg config.RateConfig) *RateLimiter {
	return &RateLimiter{
		client:      client,
		maxAttempts: cfg.MaxAttempts,
		window:      cfg.WindowSize,
	}
}

type AttemptResult struct {
	Allowed        bool
	RemainingTries int64
	RetryAfter     time.Duration
}

func attemptsKey(email string) string {
	return "login_attempts:" + email
}

// RegisterAttempt records one login attempt for email and reports whether the
// caller is still inside the window budget. Attempts outside the window are
// pruned first, so the limit slides rather than resetting on a fixed boundary.
func (r *RateLimiter) RegisterAttempt(ctx context.Context, email string) (*AttemptResult, error) {

	key := attemptsKey(email)
	now := time.Now()
	windowStart := now.Add(-r.window)

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	countCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record login attempt: %w", err)
	}

	count := countCmd.Val()

	if count > r.maxAttempts {
		retryAfter, err := r.retryAfter(ctx, key, now)
		if err != nil {
			retryAfter = r.window
		}
		return &AttemptResult{Allowed: false, RemainingTries: 0, RetryAfter: retryAfter}, nil
	}

	return &AttemptResult{Allowed: true, RemainingTries: r.maxAttempts - count}, nil
}

// ResetAttempts clears the window after a successful login.
func (r *RateLimiter) ResetAttempts(ctx context.Context, email string) error {

	if err := r.client.Del(ctx, attemptsKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}

// retryAfter is how long until the oldest attempt in the window ages out.
func (r *RateLimiter) retryAfter(ctx context.Context, key string, now time.Time) (time.Duration, error) {

	oldest, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil {
		return 0, err
	}

	if len(oldest) == 0 {
		return 0, nil
	}

	expiry := time.Unix(0, int64(oldest[0].Score)).Add(r.window)

	retryAfter := time.Until(expiry)
	if retryAfter < 0 {
		retryAfter = 0
	}

	return retryAfter, nil
}
