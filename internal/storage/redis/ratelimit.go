package redis

import (
	"context"
	"fmt"
	"time"

	"seatBooker/internal/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// admitScript keeps one sorted-set member per admitted hit, scored by its
// arrival time in milliseconds. It returns 0 when the hit is admitted and
// otherwise the milliseconds until the oldest hit leaves the window.
// Rejected hits are not recorded.
const admitScript = `
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', now - window)

if redis.call('ZCARD', KEYS[1]) < tonumber(ARGV[3]) then
  redis.call('ZADD', KEYS[1], now, ARGV[4])
  redis.call('PEXPIRE', KEYS[1], window)
  return 0
end

local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
return math.max(1, tonumber(oldest[2]) + window - now)
`

const keyPrefix = "seatbooker:v1:rl"

// NewClient connects to Redis and pings it once.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	const op = "storage.redis.NewClient"

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rdb, nil
}

type SlidingWindowLimiter struct {
	rdb    redis.Scripter
	prefix string
	limit  int
	window time.Duration
	script *redis.Script
}

func NewSlidingWindowLimiter(rdb redis.Scripter, limit int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		rdb:    rdb,
		prefix: keyPrefix,
		limit:  limit,
		window: window,
		script: redis.NewScript(admitScript),
	}
}

func (l *SlidingWindowLimiter) key(suffix string) string {
	return fmt.Sprintf("%s:%s", l.prefix, suffix)
}

// Allow admits one hit for suffix when the window has room. Otherwise it
// reports how long until the next hit would be admitted.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, suffix string) (bool, time.Duration, error) {
	const op = "storage.redis.SlidingWindowLimiter.Allow"

	wait, err := l.script.Run(
		ctx,
		l.rdb,
		[]string{l.key(suffix)},
		time.Now().UnixMilli(), l.window.Milliseconds(), l.limit, uuid.NewString(),
	).Int64()
	if err != nil {
		return false, 0, fmt.Errorf("%s: %w", op, err)
	}

	if wait > 0 {
		return false, time.Duration(wait) * time.Millisecond, nil
	}

	return true, 0, nil
}
