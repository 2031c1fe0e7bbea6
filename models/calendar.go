package models

import "time"

// CalendarCell is one cell of a week or month grid. A nil Date marks a
// padding cell. Cells are produced fresh on every grid build and never
// mutated.
type CalendarCell struct {
	Date    *time.Time `json:"date,omitempty"`
	InRange bool       `json:"inRange"`
	Today   bool       `json:"today"`
}

// DisplaySegment is the render-ready projection of a TimeSlot onto the
// vertical timeline: offsets as percentages of the display window height.
// Derived per view computation, never stored.
type DisplaySegment struct {
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
	MeetsCriteria bool    `json:"meetsCriteria"`
	Label         string  `json:"label"`
}
