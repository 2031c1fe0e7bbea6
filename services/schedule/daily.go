package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clubroom/models"
)

// DailyView builds the single-day picker payload: one card per room passing
// the facet filter, with slot summary, projected segments and the optional
// specific-window overlay.
func (s *DefaultScheduleService) DailyView(ctx context.Context, date time.Time, f models.VenueFilter) (models.DailyView, error) {
	dateStr := date.Format(models.DateLayout)
	day, err := s.Repo.GetDay(ctx, dateStr)
	if err != nil {
		return models.DailyView{}, fmt.Errorf("daily view for %s: %w", dateStr, err)
	}

	key := viewKey("day", dateStr, f, [][]models.VenueAvailability{day.Rooms})
	var memo models.DailyView
	if s.cached(ctx, key, &memo) {
		return memo, nil
	}

	view := s.buildDailyView(dateStr, day.Rooms, f)
	s.memoize(ctx, key, view)
	return view, nil
}

func (s *DefaultScheduleService) buildDailyView(date string, rooms []models.VenueAvailability, f models.VenueFilter) models.DailyView {
	view := models.DailyView{Date: date}
	if f.Mode == models.FilterModeWindow && f.Window != nil {
		if seg, ok := ProjectWindow(*f.Window, s.displayStart(), s.displayEnd()); ok {
			view.Overlay = &seg
		}
	}

	for _, room := range rooms {
		if !MatchesFacets(room, f) {
			continue
		}
		card := models.VenueDayView{
			Venue:    room,
			Category: CategoryFor(room.RoomType),
		}
		for _, slot := range room.Slots {
			if !slot.Valid() {
				continue
			}
			card.SlotCount++
			card.TotalHours += slot.Hours()
			if Matches(slot, f) {
				card.MeetsCriteria = true
			}
			if seg, ok := Project(slot, s.displayStart(), s.displayEnd(), f); ok {
				card.Segments = append(card.Segments, seg)
			}
		}
		if card.SlotCount == 0 {
			continue
		}
		view.Venues = append(view.Venues, card)
	}
	return view
}

// ResolveSelection routes a click on a room card or grid cell into the
// selection event handed to the event editor. The second return is false
// when the room has no record on that date.
func (s *DefaultScheduleService) ResolveSelection(ctx context.Context, key models.VenueKey, date time.Time) (models.VenueSelection, bool, error) {
	dateStr := date.Format(models.DateLayout)
	day, err := s.Repo.GetDay(ctx, dateStr)
	if err != nil {
		return models.VenueSelection{}, false, fmt.Errorf("resolve selection for %s: %w", dateStr, err)
	}
	for _, v := range day.Rooms {
		if v.Key() == key {
			return models.VenueSelection{
				ID:         uuid.New().String(),
				Venue:      v,
				Date:       dateStr,
				SelectedAt: s.now(),
			}, true, nil
		}
	}
	return models.VenueSelection{}, false, nil
}
