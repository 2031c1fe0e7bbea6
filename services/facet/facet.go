package facet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	availabilityRepo "clubroom/database/repository/availability"
	"clubroom/models"
	"clubroom/utils"
)

const catalogKey = "facets:catalog"

// Catalog serves the roomType/building facet values offered on the filter
// surface. Values come from the full dataset, recomputed in the background
// rather than per request.
type Catalog interface {
	Facets(ctx context.Context) (models.FacetValues, error)
	Refresh(ctx context.Context) error
}

// RedisCatalog keeps the computed catalog in Redis and falls back to a
// direct repository scan when the cached copy is missing.
type RedisCatalog struct {
	Repo   availabilityRepo.AvailabilityRepository
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCatalog constructs a catalog with a 24h retention; the background
// worker refreshes it well before expiry.
func NewRedisCatalog(repo availabilityRepo.AvailabilityRepository, client *redis.Client) *RedisCatalog {
	return &RedisCatalog{Repo: repo, Client: client, TTL: 24 * time.Hour}
}

func (c *RedisCatalog) Facets(ctx context.Context) (models.FacetValues, error) {
	if b, err := c.Client.Get(ctx, catalogKey).Bytes(); err == nil {
		var facets models.FacetValues
		if json.Unmarshal(b, &facets) == nil {
			return facets, nil
		}
	}
	// Cache miss: scan the dataset and backfill.
	if err := c.Refresh(ctx); err != nil {
		return models.FacetValues{}, err
	}
	return c.Repo.ListFacets(ctx)
}

// Refresh recomputes the catalog from the availability dataset and stores it.
func (c *RedisCatalog) Refresh(ctx context.Context) error {
	logger := utils.GetLogger()
	facets, err := c.Repo.ListFacets(ctx)
	if err != nil {
		return fmt.Errorf("facet refresh: %w", err)
	}
	b, err := json.Marshal(facets)
	if err != nil {
		return fmt.Errorf("facet refresh: encoding catalog: %w", err)
	}
	if err := c.Client.Set(ctx, catalogKey, b, c.TTL).Err(); err != nil {
		return fmt.Errorf("facet refresh: storing catalog: %w", err)
	}
	logger.Debug("facet catalog refreshed",
		zap.Int("roomTypes", len(facets.RoomTypes)),
		zap.Int("buildings", len(facets.Buildings)))
	return nil
}
