// File: database/repository/availability/queries.go
package availabilityRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clubroom/models"
)

// availabilityDoc is the feed document shape: one document per (room, date).
type availabilityDoc struct {
	ID           string            `bson:"id"`
	Date         string            `bson:"date"`
	RoomName     string            `bson:"roomName"`
	RoomType     string            `bson:"roomType"`
	BuildingName string            `bson:"buildingName"`
	Slots        []models.TimeSlot `bson:"slots"`
}

func (d availabilityDoc) toVenue() models.VenueAvailability {
	return models.VenueAvailability{
		RoomName:     d.RoomName,
		RoomType:     d.RoomType,
		BuildingName: d.BuildingName,
		// Malformed feed slots are dropped here so one bad entry cannot
		// blank a room's display downstream.
		Slots: models.ValidSlots(d.Slots),
	}
}

func (repo *mongoAvailabilityRepo) GetDay(ctx context.Context, date string) (models.DayAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": date}
	opts := options.Find().SetSort(bson.D{
		{Key: "buildingName", Value: 1},
		{Key: "roomName", Value: 1},
	})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return models.DayAvailability{}, fmt.Errorf("failed to fetch availability for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var docs []availabilityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return models.DayAvailability{}, fmt.Errorf("error decoding availability for %s: %w", date, err)
	}

	day := models.DayAvailability{Date: date}
	for _, d := range docs {
		day.Rooms = append(day.Rooms, d.toVenue())
	}
	return day, nil
}

func (repo *mongoAvailabilityRepo) GetRange(ctx context.Context, from, to string) ([]models.DayAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "buildingName", Value: 1},
		{Key: "roomName", Value: 1},
	})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability range %s..%s: %w", from, to, err)
	}
	defer cursor.Close(ctx)

	var docs []availabilityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding availability range: %w", err)
	}

	var days []models.DayAvailability
	for _, d := range docs {
		if n := len(days); n == 0 || days[n-1].Date != d.Date {
			days = append(days, models.DayAvailability{Date: d.Date})
		}
		last := &days[len(days)-1]
		last.Rooms = append(last.Rooms, d.toVenue())
	}
	return days, nil
}

func (repo *mongoAvailabilityRepo) ListFacets(ctx context.Context) (models.FacetValues, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	roomTypes, err := repo.coll.Distinct(ctx, "roomType", bson.M{})
	if err != nil {
		return models.FacetValues{}, fmt.Errorf("failed to list room types: %w", err)
	}
	buildings, err := repo.coll.Distinct(ctx, "buildingName", bson.M{})
	if err != nil {
		return models.FacetValues{}, fmt.Errorf("failed to list buildings: %w", err)
	}

	facets := models.FacetValues{
		RoomTypes: toSortedStrings(roomTypes),
		Buildings: toSortedStrings(buildings),
	}
	return facets, nil
}

func toSortedStrings(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
