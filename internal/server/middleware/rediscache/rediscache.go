// Package rediscache is a redis-backed response cache for multi-instance
// deployments, where every instance should serve the same cached stats.
package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "rediscache")

const keyPrefix = "trustd:cache:"

// Storage keeps entries in redis with native TTLs.
type Storage struct {
	c *redis.Client
}

// NewStorage creates new instance of Storage.
func NewStorage(c *redis.Client) *Storage {
	return &Storage{c: c}
}

// Get returns the cached content or nil. Redis failures degrade to a miss.
func (s *Storage) Get(key string) []byte {
	content, err := s.c.Get(context.Background(), keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).Error("failed to get cached response")
		}
		return nil
	}

	return content
}

// Set stores content for the duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	if err := s.c.Set(context.Background(), keyPrefix+key, content, duration).Err(); err != nil {
		log.WithError(err).Error("failed to cache response")
	}
}
