package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubroom/models"
)

func TestProjectClampsToDisplayWindow(t *testing.T) {
	// Display 08:00-23:00 spans 900 minutes; 07:00-09:00 clamps to 08:00-09:00.
	slot := slotAt("2025-07-10", 7, 0, 9, 0)
	seg, ok := Project(slot, 8, 23, durationFilter(0))
	require.True(t, ok)

	assert.InDelta(t, 0.0, seg.TopPercent, 0.001)
	assert.InDelta(t, 6.667, seg.HeightPercent, 0.01)
	assert.True(t, seg.MeetsCriteria)
	assert.Equal(t, "07:00 - 09:00", seg.Label)
}

func TestProjectOutsideWindowProducesNothing(t *testing.T) {
	before := slotAt("2025-07-10", 6, 0, 7, 30)
	_, ok := Project(before, 8, 23, durationFilter(0))
	assert.False(t, ok)

	degenerate := slotAt("2025-07-10", 10, 0, 10, 0)
	_, ok = Project(degenerate, 8, 23, durationFilter(0))
	assert.False(t, ok)
}

func TestProjectEnforcesMinimumHeight(t *testing.T) {
	short := slotAt("2025-07-10", 12, 0, 12, 5) // 5 minutes = 0.56% raw
	seg, ok := Project(short, 8, 23, durationFilter(0))
	require.True(t, ok)
	assert.Equal(t, minSegmentHeightPercent, seg.HeightPercent)
}

func TestProjectMarksCriteria(t *testing.T) {
	slot := slotAt("2025-07-10", 14, 0, 18, 0)
	seg, ok := Project(slot, 8, 23, durationFilter(5))
	require.True(t, ok)
	assert.False(t, seg.MeetsCriteria)
}

func TestProjectWindowOverlay(t *testing.T) {
	seg, ok := ProjectWindow(models.TimeWindow{Start: 15 * 60, End: 16 * 60}, 8, 23)
	require.True(t, ok)
	assert.InDelta(t, 46.667, seg.TopPercent, 0.01)
	assert.InDelta(t, 6.667, seg.HeightPercent, 0.01)
	assert.Equal(t, "15:00 - 16:00", seg.Label)
}

func TestProjectWindowOvernightClamps(t *testing.T) {
	// 22:00-01:00 normalizes to 22:00-25:00 and clamps at the display end.
	seg, ok := ProjectWindow(models.TimeWindow{Start: 22 * 60, End: 1 * 60}, 8, 23)
	require.True(t, ok)
	assert.InDelta(t, 93.333, seg.TopPercent, 0.01)
	assert.InDelta(t, 6.667, seg.HeightPercent, 0.01)

	// A window entirely outside the display range renders nothing.
	_, ok = ProjectWindow(models.TimeWindow{Start: 23 * 60, End: 2 * 60}, 8, 23)
	assert.False(t, ok)
}
