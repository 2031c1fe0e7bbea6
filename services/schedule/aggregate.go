package schedule

import (
	"clubroom/models"
)

// UniqueVenues collapses per-day venue lists into one representative list.
// The first record seen for a (building, room) key supplies the
// representative metadata; room type and building are day-invariant in the
// feed. Output order is first-seen order and is identical across repeated
// calls with the same input, so grid rows never reshuffle between renders.
func UniqueVenues(days [][]models.VenueAvailability) []models.VenueAvailability {
	seen := make(map[models.VenueKey]struct{})
	var out []models.VenueAvailability
	for _, day := range days {
		for _, v := range day {
			key := v.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// VenueOnDay looks up the day-specific record matching the venue's key.
// Returns false when the room has no data that day (e.g. closed); callers
// render that as an empty cell.
func VenueOnDay(v models.VenueAvailability, dayIndex int, days [][]models.VenueAvailability) (models.VenueAvailability, bool) {
	if dayIndex < 0 || dayIndex >= len(days) {
		return models.VenueAvailability{}, false
	}
	key := v.Key()
	for _, cand := range days[dayIndex] {
		if cand.Key() == key {
			return cand, true
		}
	}
	return models.VenueAvailability{}, false
}
