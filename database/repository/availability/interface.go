// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"

	"clubroom/database"
	"clubroom/models"
)

// AvailabilityRepository is the boundary to the venue availability source.
// It returns read-only per-day snapshots; the scheduling engine never writes
// through it.
type AvailabilityRepository interface {
	// GetDay returns the record for one calendar day. A day with no feed
	// data yields an empty Rooms slice, not an error.
	GetDay(ctx context.Context, date string) (models.DayAvailability, error)
	// GetRange returns one record per day in [from, to] (DateLayout keys,
	// inclusive), in ascending date order, skipping days without data.
	GetRange(ctx context.Context, from, to string) ([]models.DayAvailability, error)
	// ListFacets returns the distinct room types and buildings across the
	// full dataset, sorted.
	ListFacets(ctx context.Context) (models.FacetValues, error)
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs the MongoDB-backed repository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database("clubroom")
	repo := &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("availability repo: %v", err)
	}
	return repo
}
