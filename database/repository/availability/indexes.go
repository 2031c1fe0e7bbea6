// FILE: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the availability queries.
func (repo *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Primary query pattern: all rooms for one date.
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "buildingName", Value: 1}, {Key: "roomName", Value: 1}},
			Options: options.Index().SetName("date_building_room_idx"),
		},
		// Facet listing.
		{
			Keys:    bson.D{{Key: "roomType", Value: 1}},
			Options: options.Index().SetName("room_type_idx"),
		},
		{
			Keys:    bson.D{{Key: "buildingName", Value: 1}},
			Options: options.Index().SetName("building_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
