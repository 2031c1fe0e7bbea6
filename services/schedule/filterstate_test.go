package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubroom/models"
)

func TestFilterStateDefaults(t *testing.T) {
	s := NewFilterState()
	assert.Equal(t, models.FilterModeDuration, s.Filter.Mode)
	assert.Zero(t, s.Filter.MinDurationHours)
	assert.Nil(t, s.Filter.Window)
}

func TestFilterStateRoundTrip(t *testing.T) {
	s := NewFilterState().WithDuration(3)

	s = s.SwitchMode(models.FilterModeWindow)
	assert.Zero(t, s.Filter.MinDurationHours, "inactive mode's field is cleared")
	s = s.WithWindow(models.TimeWindow{Start: 10 * 60, End: 12 * 60})

	s = s.SwitchMode(models.FilterModeDuration)
	assert.Equal(t, 3.0, s.Filter.MinDurationHours, "duration restored, not defaulted")
	assert.Nil(t, s.Filter.Window)

	s = s.SwitchMode(models.FilterModeWindow)
	require.NotNil(t, s.Filter.Window)
	assert.Equal(t, 10*60, s.Filter.Window.Start)
	assert.Equal(t, 12*60, s.Filter.Window.End)
}

func TestFilterStateSwitchWithoutMemoryUsesDefaults(t *testing.T) {
	s := NewFilterState().WithDuration(2).SwitchMode(models.FilterModeWindow)
	assert.Nil(t, s.Filter.Window)
	assert.Zero(t, s.Filter.MinDurationHours)
}

func TestFilterStateSwitchToSameModeIsNoop(t *testing.T) {
	s := NewFilterState().WithDuration(4)
	assert.Equal(t, s, s.SwitchMode(models.FilterModeDuration))
}

func TestFilterStateFacets(t *testing.T) {
	s := NewFilterState().WithFacets("piano", "studio", "Arts Centre")
	assert.Equal(t, "piano", s.Filter.Search)
	assert.Equal(t, "studio", s.Filter.RoomType)
	assert.Equal(t, "Arts Centre", s.Filter.Building)

	// Facets survive mode toggles.
	s = s.SwitchMode(models.FilterModeWindow)
	assert.Equal(t, "piano", s.Filter.Search)
}
