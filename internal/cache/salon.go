package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/zaidJawa/salon/internal/models"
)

const DefaultTTL = 5 * time.Minute

// SalonCache is a read-through cache for salon-by-id lookups. It is never
// authoritative: any redis failure is treated as a miss and logged at debug
// level. A nil *SalonCache is a valid no-op cache.
type SalonCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

func NewSalonCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *SalonCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SalonCache{rdb: rdb, ttl: ttl, logger: logger}
}

func key(id string) string {
	return "salon:" + id
}

func (c *SalonCache) Get(ctx context.Context, id string) (*models.Salon, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug().Err(err).Str("salon_id", id).Msg("salon cache get failed")
		}
		return nil, false
	}

	var salon models.Salon
	if err := json.Unmarshal(raw, &salon); err != nil {
		c.logger.Debug().Err(err).Str("salon_id", id).Msg("salon cache entry corrupt")
		return nil, false
	}

	return &salon, true
}

func (c *SalonCache) Set(ctx context.Context, salon *models.Salon) {
	if c == nil || c.rdb == nil || salon == nil {
		return
	}

	raw, err := json.Marshal(salon)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(salon.ID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug().Err(err).Str("salon_id", salon.ID).Msg("salon cache set failed")
	}
}

func (c *SalonCache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, key(id)).Err(); err != nil {
		c.logger.Debug().Err(err).Str("salon_id", id).Msg("salon cache invalidate failed")
	}
}
