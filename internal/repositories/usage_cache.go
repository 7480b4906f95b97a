package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-diet-planner/internal/logger"
)

// ErrCacheMiss is returned when no counter is cached for the user and day.
var ErrCacheMiss = errors.New("usage counter not cached")

// incrIfExists only bumps a counter that was seeded from the ledger, so a
// cold cache never reports a partial sum.
var incrIfExists = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("INCRBY", KEYS[1], ARGV[1])
end
return -1
`)

// UsageCacheRepository keeps per-user daily token counters in Redis.
type UsageCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUsageCacheRepository creates a cache whose counters expire after exp.
func NewUsageCacheRepository(client *redis.Client, exp time.Duration) *UsageCacheRepository {
	return &UsageCacheRepository{
		client: client,
		exp:    exp,
	}
}

func dailyKey(userID, date string) string {
	return fmt.Sprintf("usage:daily:%s:%s", userID, date)
}

// GetDailyTokens returns the cached token total for the user on date (YYYY-MM-DD).
func (r *UsageCacheRepository) GetDailyTokens(ctx context.Context, userID, date string) (int, error) {
	key := dailyKey(userID, date)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Debugw("cache get", "key", key, "value", val, "error", err)
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(val)
}

// SeedDailyTokens seeds a missing counter with a total computed from the
// ledger. A counter that already exists is left as is.
func (r *UsageCacheRepository) SeedDailyTokens(ctx context.Context, userID, date string, tokens int) error {
	key := dailyKey(userID, date)
	seeded, err := r.client.SetNX(ctx, key, tokens, r.exp).Result()
	logger.Log.Debugw("cache seed", "key", key, "value", tokens, "seeded", seeded, "error", err)
	return err
}

// IncrDailyTokens adds delta to an existing counter. A missing counter is left
// untouched and the next read reseeds it.
func (r *UsageCacheRepository) IncrDailyTokens(ctx context.Context, userID, date string, delta int) error {
	key := dailyKey(userID, date)
	res, err := incrIfExists.Run(ctx, r.client, []string{key}, delta).Int64()
	logger.Log.Debugw("cache incr", "key", key, "delta", delta, "result", res, "error", err)
	return err
}
