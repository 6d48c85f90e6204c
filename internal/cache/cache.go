package cache

import (
	"fmt"

	"github.com/upi-kavach/kavach/internal/domain"
)

// New creates a cache based on configuration: an in-process LRU for the
// default single-node setup, or Redis when results must be shared across
// replicas.
func New(cfg domain.CacheConfig) (domain.Cache, error) {
	switch cfg.Type {
	case "memory":
		return NewLRUCache(cfg.LocalMaxSize), nil

	case "redis":
		return NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}
