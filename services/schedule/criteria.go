package schedule

import (
	"strings"

	"clubroom/models"
)

// Matches reports whether a single slot satisfies the filter's active
// temporal criterion. Pure function of its inputs.
//
// Window containment compares time-of-day only, discarding the date part of
// both slot and window. Overnight windows (end before start) are always
// normalized past midnight, in every view, so weekly/monthly pass-fail
// classification agrees with the daily overlay.
func Matches(slot models.TimeSlot, f models.VenueFilter) bool {
	if !slot.Valid() {
		return false
	}
	switch f.Mode {
	case models.FilterModeDuration:
		if f.MinDurationHours <= 0 {
			return true
		}
		return slot.Hours() >= f.MinDurationHours
	case models.FilterModeWindow:
		if f.Window == nil {
			// Misconfigured filter counts as no constraint.
			return true
		}
		w := f.Window.Normalized()
		return slot.StartMinutes() <= w.Start && slot.EndMinutes() >= w.End
	default:
		return true
	}
}

// MatchesAny reports whether any of the day record's slots passes the
// filter. A room with no valid slots that day never matches.
func MatchesAny(v models.VenueAvailability, f models.VenueFilter) bool {
	for _, s := range v.Slots {
		if s.Valid() && Matches(s, f) {
			return true
		}
	}
	return false
}

// MatchesFacets applies the non-temporal filter fields (free-text search,
// room type, building) to a venue's metadata.
func MatchesFacets(v models.VenueAvailability, f models.VenueFilter) bool {
	if f.RoomType != "" && v.RoomType != f.RoomType {
		return false
	}
	if f.Building != "" && v.BuildingName != f.Building {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(v.RoomName), q) &&
			!strings.Contains(strings.ToLower(v.BuildingName), q) {
			return false
		}
	}
	return true
}
