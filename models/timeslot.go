package models

import (
	"fmt"
	"time"
)

// DateLayout is the canonical day key used across the availability feed.
const DateLayout = "2006-01-02"

// MinutesPerDay is one day on the minutes-from-midnight axis.
const MinutesPerDay = 24 * 60

// TimeSlot represents one contiguous span of free time for a room, sourced
// from the availability feed. Times are local wall-clock values; the engine
// never applies timezone conversions.
type TimeSlot struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Valid reports whether the slot has strictly positive length. Degenerate
// slots are dropped by consumers rather than surfaced as errors, so one bad
// feed entry cannot blank a whole room's display.
func (s TimeSlot) Valid() bool {
	return !s.Start.IsZero() && !s.End.IsZero() && s.Start.Before(s.End)
}

// Hours returns the slot length in fractional hours.
func (s TimeSlot) Hours() float64 {
	return s.End.Sub(s.Start).Hours()
}

// StartMinutes returns the slot start as minutes from midnight, time-of-day
// only.
func (s TimeSlot) StartMinutes() int {
	return s.Start.Hour()*60 + s.Start.Minute()
}

// EndMinutes returns the slot end as minutes from midnight. An end that falls
// on a later calendar day than the start is shifted past 1440 per elapsed
// day, keeping the minutes axis monotonic for overnight slots.
func (s TimeSlot) EndMinutes() int {
	m := s.End.Hour()*60 + s.End.Minute()
	if days := calendarDaysBetween(s.Start, s.End); days > 0 {
		m += days * MinutesPerDay
	}
	return m
}

// Label formats the slot for display, e.g. "14:00 - 18:00".
func (s TimeSlot) Label() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d",
		s.Start.Hour(), s.Start.Minute(), s.End.Hour(), s.End.Minute())
}

// calendarDaysBetween counts midnight boundaries crossed from a to b.
func calendarDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// ValidSlots filters a feed slot list down to well-formed entries.
func ValidSlots(slots []TimeSlot) []TimeSlot {
	var out []TimeSlot
	for _, s := range slots {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}
