package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const slotCacheKeyPrefix = "slots:available:"

// AvailabilityCache holds short-lived snapshots of the computed
// available-slot list per doctor/date. The slot grid is recomputed from
// schedules, appointments and locks on every miss; the cache only
// absorbs the read burst from slot pickers polling the grid. Every
// mutation (reserve, release, booking, cancellation) invalidates the
// affected day, and the TTL caps staleness when an invalidation is
// missed. Cache failures are never fatal; callers fall through to the
// database.
type AvailabilityCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewAvailabilityCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

// Get returns the cached slot list for the doctor/date, or ok=false on
// a miss or any cache error.
func (c *AvailabilityCache) Get(ctx context.Context, doctorID uuid.UUID, date string) ([]string, bool) {
	raw, err := c.redisClient.Get(ctx, c.key(doctorID, date)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Failed to read slot cache for doctor %s on %s: %+v", doctorID, date, err)
		}
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		c.log.Warnf("Corrupt slot cache entry for doctor %s on %s: %+v", doctorID, date, err)
		return nil, false
	}
	return slots, true
}

// Set stores the computed slot list. Errors are logged and swallowed.
func (c *AvailabilityCache) Set(ctx context.Context, doctorID uuid.UUID, date string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		c.log.Warnf("Failed to marshal slot cache for doctor %s on %s: %+v", doctorID, date, err)
		return
	}

	if err := c.redisClient.Set(ctx, c.key(doctorID, date), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write slot cache for doctor %s on %s: %+v", doctorID, date, err)
	}
}

// Invalidate drops the snapshot for one doctor/date.
func (c *AvailabilityCache) Invalidate(ctx context.Context, doctorID uuid.UUID, date string) {
	if err := c.redisClient.Del(ctx, c.key(doctorID, date)).Err(); err != nil {
		c.log.Warnf("Failed to invalidate slot cache for doctor %s on %s: %+v", doctorID, date, err)
	}
}

func (c *AvailabilityCache) key(doctorID uuid.UUID, date string) string {
	return fmt.Sprintf("%s%s:%s", slotCacheKeyPrefix, doctorID, date)
}
