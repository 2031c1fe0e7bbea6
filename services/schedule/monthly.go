package schedule

import (
	"context"
	"fmt"
	"time"

	"clubroom/models"
)

// MonthlyView builds the month picker payload: venues aggregated across the
// whole month, each with a padded mini calendar whose day cells are colored
// by whether that day's record for the venue passes the active filter.
func (s *DefaultScheduleService) MonthlyView(ctx context.Context, month time.Time, f models.VenueFilter) (models.MonthlyView, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	last := first.AddDate(0, 1, -1)
	from := first.Format(models.DateLayout)
	to := last.Format(models.DateLayout)

	perDay, err := s.fetchRange(ctx, first, last.Day(), from, to)
	if err != nil {
		return models.MonthlyView{}, fmt.Errorf("monthly view for %s: %w", first.Format("2006-01"), err)
	}

	key := viewKey("month", from, f, perDay)
	var memo models.MonthlyView
	if s.cached(ctx, key, &memo) {
		return memo, nil
	}

	view := s.buildMonthlyView(first, perDay, f)
	s.memoize(ctx, key, view)
	return view, nil
}

func (s *DefaultScheduleService) buildMonthlyView(first time.Time, perDay [][]models.VenueAvailability, f models.VenueFilter) models.MonthlyView {
	view := models.MonthlyView{Month: first.Format("2006-01")}
	cells := BuildMonthGrid(first, s.now())
	filtered := facetFiltered(perDay, f)

	for _, rep := range UniqueVenues(filtered) {
		row := models.VenueMonthRow{
			Venue:    rep,
			Category: CategoryFor(rep.RoomType),
			Cells:    make([]models.MonthCell, len(cells)),
		}
		for i, cell := range cells {
			mc := models.MonthCell{CalendarCell: cell}
			if cell.Date != nil {
				dayIdx := cell.Date.Day() - 1
				if dayVenue, ok := VenueOnDay(rep, dayIdx, filtered); ok {
					mc.HasData = true
					mc.MeetsCriteria = MatchesAny(dayVenue, f)
				}
			}
			row.Cells[i] = mc
		}
		view.Venues = append(view.Venues, row)
	}
	return view
}
