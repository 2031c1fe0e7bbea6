package schedule

import (
	"clubroom/models"
)

const (
	// DefaultDisplayStartHour and DefaultDisplayEndHour bound the vertical
	// timeline of the day and week views.
	DefaultDisplayStartHour = 8
	DefaultDisplayEndHour   = 23

	// minSegmentHeightPercent keeps very short slots visible and clickable;
	// roughly 8px on the reference 540px timeline column.
	minSegmentHeightPercent = 1.5
)

// Project maps a slot onto the timeline bounded by [startHour, endHour],
// clamping to the display window. The second return is false when the slot
// lies entirely outside the window; projection never fails otherwise.
func Project(slot models.TimeSlot, startHour, endHour int, f models.VenueFilter) (models.DisplaySegment, bool) {
	if !slot.Valid() {
		return models.DisplaySegment{}, false
	}
	seg, ok := projectMinutes(slot.StartMinutes(), slot.EndMinutes(), startHour, endHour)
	if !ok {
		return models.DisplaySegment{}, false
	}
	seg.MeetsCriteria = Matches(slot, f)
	seg.Label = slot.Label()
	return seg, true
}

// ProjectWindow projects the requested specific-time window as an overlay
// segment, independent of any slot. Overnight windows are normalized before
// clamping.
func ProjectWindow(w models.TimeWindow, startHour, endHour int) (models.DisplaySegment, bool) {
	n := w.Normalized()
	seg, ok := projectMinutes(n.Start, n.End, startHour, endHour)
	if !ok {
		return models.DisplaySegment{}, false
	}
	seg.MeetsCriteria = true
	seg.Label = w.Label()
	return seg, true
}

func projectMinutes(startMin, endMin, startHour, endHour int) (models.DisplaySegment, bool) {
	span := (endHour - startHour) * 60
	if span <= 0 {
		return models.DisplaySegment{}, false
	}
	start := startMin - startHour*60
	end := endMin - startHour*60
	if start < 0 {
		start = 0
	}
	if end > span {
		end = span
	}
	if start >= end {
		return models.DisplaySegment{}, false
	}
	height := float64(end-start) / float64(span) * 100
	if height < minSegmentHeightPercent {
		height = minSegmentHeightPercent
	}
	return models.DisplaySegment{
		TopPercent:    float64(start) / float64(span) * 100,
		HeightPercent: height,
	}, true
}
