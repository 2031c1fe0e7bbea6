// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"clubroom/config"
)

var (
	// ViewCacheClient memoizes computed schedule views (short TTL).
	ViewCacheClient *redis.Client
	// FacetCacheClient holds the facet catalog maintained by the worker.
	FacetCacheClient *redis.Client
)

// InitViewCache initializes the Redis client for view memoization.
func InitViewCache() {
	ViewCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisViewDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ViewCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (View Cache): %v", err)
	}
}

// GetViewCacheClient returns the view memoization client.
func GetViewCacheClient() *redis.Client {
	if ViewCacheClient == nil {
		InitViewCache()
	}
	return ViewCacheClient
}

// InitFacetCache initializes the Redis client for the facet catalog.
func InitFacetCache() {
	FacetCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFacetDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := FacetCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Facet Cache): %v", err)
	}
}

// GetFacetCacheClient returns the facet catalog client.
func GetFacetCacheClient() *redis.Client {
	if FacetCacheClient == nil {
		InitFacetCache()
	}
	return FacetCacheClient
}
