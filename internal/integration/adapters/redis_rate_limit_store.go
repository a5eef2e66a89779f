package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "strength-check:ratelimit:"

// allowScript increments the counter and sets the window TTL in one step.
// A counter found without a TTL gets one, so no key outlives its window.
var allowScript = redis.NewScript(`
local attempts = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return attempts
`)

// RedisRateLimitStore counts attempts in Redis so limits hold across instances.
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore creates a new Redis-backed rate limit store.
func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Allow increments the key's counter for the current window.
// The window starts at the first attempt and expires with the key.
func (s *RedisRateLimitStore) Allow(ctx context.Context, key string, maxAttempts int, window time.Duration) (bool, error) {
	windowMs := window.Milliseconds()
	if windowMs < 1 {
		windowMs = 1
	}

	attempts, err := allowScript.Run(ctx, s.client, []string{rateLimitKeyPrefix + key}, windowMs).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	return attempts <= int64(maxAttempts), nil
}

// HealthCheck reports whether Redis answers a ping.
func (s *RedisRateLimitStore) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err() == nil
}
