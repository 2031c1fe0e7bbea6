package schedule

import (
	"clubroom/models"
)

// FilterMemory remembers each mode's last value across toggles.
type FilterMemory struct {
	Duration float64            `json:"duration"`
	Window   *models.TimeWindow `json:"window,omitempty"`
}

// FilterState pairs the active filter with its per-mode memory. Transitions
// produce a new value; nothing is mutated in place, so states are safe to
// carry through request payloads.
type FilterState struct {
	Filter models.VenueFilter `json:"filter"`
	Memory FilterMemory       `json:"memory"`
}

// NewFilterState returns the default picker state: duration mode with no
// constraint.
func NewFilterState() FilterState {
	return FilterState{
		Filter: models.VenueFilter{Mode: models.FilterModeDuration},
	}
}

// SwitchMode toggles between the duration and window criteria. The outgoing
// mode's value is snapshotted into memory and the incoming mode's prior
// value restored, so toggling A -> B -> A without edits round-trips exactly.
// The inactive mode's field is cleared in the resulting filter.
func (s FilterState) SwitchMode(mode models.FilterMode) FilterState {
	if mode == s.Filter.Mode {
		return s
	}
	next := s

	switch s.Filter.Mode {
	case models.FilterModeDuration:
		next.Memory.Duration = s.Filter.MinDurationHours
	case models.FilterModeWindow:
		next.Memory.Window = s.Filter.Window
	}

	next.Filter.Mode = mode
	switch mode {
	case models.FilterModeDuration:
		next.Filter.MinDurationHours = next.Memory.Duration
		next.Filter.Window = nil
	case models.FilterModeWindow:
		next.Filter.Window = next.Memory.Window
		next.Filter.MinDurationHours = 0
	}
	return next
}

// WithDuration sets the minimum-duration value; the state is forced into
// duration mode first so the two criteria stay mutually exclusive.
func (s FilterState) WithDuration(hours float64) FilterState {
	next := s.SwitchMode(models.FilterModeDuration)
	next.Filter.MinDurationHours = hours
	return next
}

// WithWindow sets the specific-time window, forcing window mode.
func (s FilterState) WithWindow(w models.TimeWindow) FilterState {
	next := s.SwitchMode(models.FilterModeWindow)
	next.Filter.Window = &w
	return next
}

// WithFacets sets the non-temporal filter fields.
func (s FilterState) WithFacets(search, roomType, building string) FilterState {
	s.Filter.Search = search
	s.Filter.RoomType = roomType
	s.Filter.Building = building
	return s
}
