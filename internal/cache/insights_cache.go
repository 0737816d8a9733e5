package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/habitlog/pkg/progress"
	"github.com/redis/go-redis/v9"
)

const (
	keyInsightsPrefix     = "habitlog:insights:"
	keyInsightsGeneration = "habitlog:insights:gen"
)

func insightsKey(gen int64) string {
	return keyInsightsPrefix + strconv.FormatInt(gen, 10)
}

// InsightsCache keeps computed dashboards in Redis, one key per generation.
// Dashboards of old generations are left to expire.
type InsightsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewInsightsCache(rdb *redis.Client, ttl time.Duration) *InsightsCache {
	return &InsightsCache{rdb: rdb, ttl: ttl}
}

// Generation returns the current generation, 0 before the first write.
func (c *InsightsCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, keyInsightsGeneration).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get returns the dashboard cached for gen or nil on miss.
func (c *InsightsCache) Get(ctx context.Context, gen int64) (*progress.Insights, error) {
	b, err := c.rdb.Get(ctx, insightsKey(gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var insights progress.Insights
	if err := sonic.Unmarshal(b, &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

func (c *InsightsCache) Set(ctx context.Context, gen int64, insights *progress.Insights) error {
	b, err := sonic.Marshal(insights)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, insightsKey(gen), b, c.ttl).Err()
}

func (c *InsightsCache) Invalidate(ctx context.Context) error {
	return c.rdb.Incr(ctx, keyInsightsGeneration).Err()
}
