package models

import "time"

// VenueDayView is one room card in the daily picker: room metadata, a
// summary of its free time and the projected timeline segments.
type VenueDayView struct {
	Venue         VenueAvailability `json:"venue"`
	Category      string            `json:"category"`
	SlotCount     int               `json:"slotCount"`
	TotalHours    float64           `json:"totalHours"`
	Segments      []DisplaySegment  `json:"segments"`
	MeetsCriteria bool              `json:"meetsCriteria"`
}

// DailyView is the daily picker payload. Overlay, when present, marks the
// requested specific-time window on the shared timeline.
type DailyView struct {
	Date    string          `json:"date"`
	Venues  []VenueDayView  `json:"venues"`
	Overlay *DisplaySegment `json:"overlay,omitempty"`
}

// DayColumn is one date's column inside a venue's weekly row. HasData is
// false when the room has no record that day (e.g. closed); that is an empty
// column, not an error.
type DayColumn struct {
	Date          string           `json:"date"`
	HasData       bool             `json:"hasData"`
	MeetsCriteria bool             `json:"meetsCriteria"`
	Segments      []DisplaySegment `json:"segments"`
}

// VenueWeekRow is one venue's seven columns in the weekly view.
type VenueWeekRow struct {
	Venue    VenueAvailability `json:"venue"`
	Category string            `json:"category"`
	Columns  []DayColumn       `json:"columns"`
}

// WeeklyView is the weekly picker payload. Cells carry the header row of
// the grid (one per date, today marked).
type WeeklyView struct {
	Dates  []string       `json:"dates"`
	Cells  []CalendarCell `json:"cells"`
	Venues []VenueWeekRow `json:"venues"`
}

// MonthCell extends a grid cell with the venue-specific pass/fail coloring
// of the monthly view.
type MonthCell struct {
	CalendarCell
	HasData       bool `json:"hasData"`
	MeetsCriteria bool `json:"meetsCriteria"`
}

// VenueMonthRow is one venue's mini calendar in the monthly view.
type VenueMonthRow struct {
	Venue    VenueAvailability `json:"venue"`
	Category string            `json:"category"`
	Cells    []MonthCell       `json:"cells"`
}

// MonthlyView is the monthly picker payload.
type MonthlyView struct {
	Month  string          `json:"month"` // "2006-01"
	Venues []VenueMonthRow `json:"venues"`
}

// VenueSelection is emitted when a user picks a room on a specific date. The
// caller owns writing it into the event record being edited.
type VenueSelection struct {
	ID         string            `json:"id"`
	Venue      VenueAvailability `json:"venue"`
	Date       string            `json:"date"`
	SelectedAt time.Time         `json:"selectedAt"`
}
