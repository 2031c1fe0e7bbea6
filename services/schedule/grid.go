package schedule

import (
	"time"

	"clubroom/models"
)

// BuildMonthGrid returns the padded cell sequence for a month view: leading
// blanks aligning day 1 to its weekday (Sunday-first indexing, so a month
// starting on Wednesday gets 3 blanks), one cell per day, then trailing
// blanks filling the final week. The total is always a multiple of 7.
func BuildMonthGrid(month time.Time, today time.Time) []models.CalendarCell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	leading := int(first.Weekday())
	cells := make([]models.CalendarCell, 0, leading+daysInMonth+6)
	for i := 0; i < leading; i++ {
		cells = append(cells, models.CalendarCell{})
	}
	for d := 0; d < daysInMonth; d++ {
		date := first.AddDate(0, 0, d)
		cells = append(cells, models.CalendarCell{
			Date:    &date,
			InRange: true,
			Today:   sameDay(date, today),
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, models.CalendarCell{})
	}
	return cells
}

// BuildWeekGrid is a passthrough over the caller-supplied dates (Monday to
// Sunday order by convention); no padding logic applies.
func BuildWeekGrid(dates []time.Time, today time.Time) []models.CalendarCell {
	cells := make([]models.CalendarCell, 0, len(dates))
	for i := range dates {
		date := dates[i]
		cells = append(cells, models.CalendarCell{
			Date:    &date,
			InRange: true,
			Today:   sameDay(date, today),
		})
	}
	return cells
}

// DayIndexOf returns the whole-day offset of date from rangeStart, used to
// pick the right per-day venue list out of a date-indexed slice. Callers
// guard out-of-bounds indices; a negative or too-large index means "no data
// for this day", never an error.
func DayIndexOf(date, rangeStart time.Time) int {
	a := time.Date(rangeStart.Year(), rangeStart.Month(), rangeStart.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
