package schedule

import (
	"context"
	"fmt"
	"time"

	"clubroom/models"
)

// WeeklyView builds the seven-day picker payload starting at weekStart
// (Monday by caller convention). Venues are aggregated across the week in
// first-seen order; each venue row carries one projected column per date.
func (s *DefaultScheduleService) WeeklyView(ctx context.Context, weekStart time.Time, f models.VenueFilter) (models.WeeklyView, error) {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	from := dates[0].Format(models.DateLayout)
	to := dates[6].Format(models.DateLayout)

	perDay, err := s.fetchRange(ctx, weekStart, 7, from, to)
	if err != nil {
		return models.WeeklyView{}, fmt.Errorf("weekly view from %s: %w", from, err)
	}

	key := viewKey("week", from, f, perDay)
	var memo models.WeeklyView
	if s.cached(ctx, key, &memo) {
		return memo, nil
	}

	view := s.buildWeeklyView(dates, perDay, f)
	s.memoize(ctx, key, view)
	return view, nil
}

func (s *DefaultScheduleService) buildWeeklyView(dates []time.Time, perDay [][]models.VenueAvailability, f models.VenueFilter) models.WeeklyView {
	view := models.WeeklyView{
		Dates: make([]string, len(dates)),
		Cells: BuildWeekGrid(dates, s.now()),
	}
	for i, d := range dates {
		view.Dates[i] = d.Format(models.DateLayout)
	}

	filtered := facetFiltered(perDay, f)
	for _, rep := range UniqueVenues(filtered) {
		row := models.VenueWeekRow{
			Venue:    rep,
			Category: CategoryFor(rep.RoomType),
			Columns:  make([]models.DayColumn, len(dates)),
		}
		for i := range dates {
			col := models.DayColumn{Date: view.Dates[i]}
			if dayVenue, ok := VenueOnDay(rep, i, filtered); ok {
				col.HasData = true
				col.MeetsCriteria = MatchesAny(dayVenue, f)
				for _, slot := range dayVenue.Slots {
					if seg, segOK := Project(slot, s.displayStart(), s.displayEnd(), f); segOK {
						col.Segments = append(col.Segments, seg)
					}
				}
			}
			row.Columns[i] = col
		}
		view.Venues = append(view.Venues, row)
	}
	return view
}

// fetchRange loads a date range and spreads it onto a fixed-size day-indexed
// slice. Days missing from the feed stay nil, which downstream lookups
// treat as "no data", not an error.
func (s *DefaultScheduleService) fetchRange(ctx context.Context, rangeStart time.Time, numDays int, from, to string) ([][]models.VenueAvailability, error) {
	records, err := s.Repo.GetRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	perDay := make([][]models.VenueAvailability, numDays)
	for _, rec := range records {
		d, parseErr := time.Parse(models.DateLayout, rec.Date)
		if parseErr != nil {
			continue
		}
		idx := DayIndexOf(d, rangeStart)
		if idx < 0 || idx >= numDays {
			continue
		}
		perDay[idx] = rec.Rooms
	}
	return perDay, nil
}
