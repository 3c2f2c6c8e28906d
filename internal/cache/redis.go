package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/metrics"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/singleflight"
)

const DefaultTTL = 5 * time.Minute

// VaccineCache keeps public catalog listings in Redis. Every list key embeds
// a version number; Invalidate bumps the version so old keys are never read
// again and simply expire.
type VaccineCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	logger logger.Logger
}

func NewVaccineCache(client *redis.Client, prefix string, ttl time.Duration, log logger.Logger) *VaccineCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &VaccineCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: log,
	}
}

func (c *VaccineCache) versionKey() string {
	return c.prefix + "vaccines:version"
}

func (c *VaccineCache) listKey(version string, q domain.VaccineQuery) string {
	return fmt.Sprintf("%svaccines:v%s:%s", c.prefix, version, q.CacheKey())
}

// GetOrLoad never fails because of Redis: on any cache error the listing is
// loaded directly.
func (c *VaccineCache) GetOrLoad(
	ctx context.Context,
	q domain.VaccineQuery,
	load func(ctx context.Context) ([]*domain.Vaccine, error),
) ([]*domain.Vaccine, error) {
	version, err := c.client.Get(ctx, c.versionKey()).Result()
	switch {
	case errors.Is(err, redis.Nil):
		version = "0"
	case err != nil:
		c.cacheError("read cache version", err)
		return load(ctx)
	}

	key := c.listKey(version, q)
	if list, ok := c.lookup(ctx, key); ok {
		metrics.IncCacheRequest("hit")
		return list, nil
	}
	metrics.IncCacheRequest("miss")

	// singleflight collapses concurrent misses of one key into one load.
	// Загрузка общая для всех ждущих, поэтому отмена первого вызывающего
	// её не прерывает.
	res, err, _ := c.group.Do(key, func() (interface{}, error) {
		loadCtx := context.WithoutCancel(ctx)
		list, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.store(loadCtx, key, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}

	return res.([]*domain.Vaccine), nil
}

func (c *VaccineCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.versionKey()).Err(); err != nil {
		return fmt.Errorf("bump cache version: %w", err)
	}
	return nil
}

func (c *VaccineCache) lookup(ctx context.Context, key string) ([]*domain.Vaccine, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.cacheError("read cached list", err)
		}
		return nil, false
	}

	var list []*domain.Vaccine
	if err = json.Unmarshal(data, &list); err != nil {
		c.cacheError("decode cached list", err)
		return nil, false
	}

	return list, true
}

func (c *VaccineCache) store(ctx context.Context, key string, list []*domain.Vaccine) {
	data, err := json.Marshal(list)
	if err != nil {
		c.cacheError("encode list", err)
		return
	}
	if err = c.client.Set(ctx, key, string(data), c.ttl).Err(); err != nil {
		c.cacheError("write cached list", err)
	}
}

func (c *VaccineCache) cacheError(op string, err error) {
	metrics.IncCacheRequest("error")
	c.logger.Warn("catalog cache unavailable",
		logger.String("op", op),
		logger.String("error", err.Error()),
	)
}
