package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"nextcare-api/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	RedisDoctorListKeyPrefix = "catalog:doctors:"

	// Timeout for individual Redis operations
	redisCacheTimeout = 2 * time.Second
)

// doctorListKeys covers every DoctorFilter value, so invalidation never needs a SCAN.
var doctorListKeys = []string{
	RedisDoctorListKeyPrefix + "all",
	RedisDoctorListKeyPrefix + "active",
	RedisDoctorListKeyPrefix + "inactive",
}

// CatalogCache is a read-through cache for the doctor directory.
// A nil client disables it; every method is then a no-op miss.
// Redis errors are logged and reported as misses so reads fall back to the database.
type CatalogCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewCatalogCache(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (c *CatalogCache) Enabled() bool {
	return c != nil && c.redisClient != nil
}

func doctorListKey(filter entity.DoctorFilter) string {
	switch {
	case filter.Active == nil:
		return doctorListKeys[0]
	case *filter.Active:
		return doctorListKeys[1]
	default:
		return doctorListKeys[2]
	}
}

func (c *CatalogCache) GetDoctors(ctx context.Context, filter entity.DoctorFilter) ([]entity.Doctor, bool) {
	if !c.Enabled() {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, doctorListKey(filter)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read doctor cache: %+v", err)
		}
		return nil, false
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		c.log.Warnf("Failed to decode doctor cache: %+v", err)
		return nil, false
	}
	return doctors, true
}

func (c *CatalogCache) SetDoctors(ctx context.Context, filter entity.DoctorFilter, doctors []entity.Doctor) {
	if !c.Enabled() {
		return
	}

	raw, err := json.Marshal(doctors)
	if err != nil {
		c.log.Warnf("Failed to encode doctor cache: %+v", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, doctorListKey(filter), raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write doctor cache: %+v", err)
	}
}

// InvalidateDoctors drops every cached doctor list. Called after each committed doctor write.
func (c *CatalogCache) InvalidateDoctors(ctx context.Context) {
	if !c.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Del(ctx, doctorListKeys...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate doctor cache: %+v", err)
	}
}
