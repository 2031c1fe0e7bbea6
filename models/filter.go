package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FilterMode selects which temporal criterion of a VenueFilter is active.
type FilterMode string

const (
	// FilterModeDuration requires a slot to meet a minimum length.
	FilterModeDuration FilterMode = "duration"
	// FilterModeWindow requires a slot to fully contain a clock-time window.
	FilterModeWindow FilterMode = "window"
)

// TimeWindow is a desired clock-time range in minutes from midnight. An End
// numerically below Start means the window wraps past midnight.
type TimeWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Normalized returns the window with an overnight end shifted past 1440 so
// containment checks can use plain integer comparison.
func (w TimeWindow) Normalized() TimeWindow {
	if w.End < w.Start {
		w.End += MinutesPerDay
	}
	return w
}

// Label formats the window for display, e.g. "22:00 - 01:00".
func (w TimeWindow) Label() string {
	return fmt.Sprintf("%s - %s", formatClock(w.Start), formatClock(w.End))
}

func formatClock(m int) string {
	m = ((m % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}
	return h*60 + m, nil
}

// VenueFilter holds the active search criteria for the venue picker. Exactly
// one of MinDurationHours/Window is meaningful, selected by Mode; the state
// machine in services/schedule keeps the two mutually exclusive. The filter
// lives only as long as the picker view; nothing persists it.
type VenueFilter struct {
	Search           string      `json:"search"`
	RoomType         string      `json:"roomType"`
	Building         string      `json:"building"`
	Mode             FilterMode  `json:"mode"`
	MinDurationHours float64     `json:"minDurationHours"`
	Window           *TimeWindow `json:"window,omitempty"`
}
