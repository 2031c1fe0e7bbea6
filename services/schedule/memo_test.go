package schedule

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubroom/models"
)

func TestViewKeyDependsOnInputs(t *testing.T) {
	days := [][]models.VenueAvailability{
		{room("Main", "101", "lecture", slotAt("2025-07-10", 9, 0, 12, 0))},
	}
	f := durationFilter(2)

	a := viewKey("day", "2025-07-10", f, days)
	assert.Equal(t, a, viewKey("day", "2025-07-10", f, days))
	assert.NotEqual(t, a, viewKey("week", "2025-07-10", f, days))
	assert.NotEqual(t, a, viewKey("day", "2025-07-11", f, days))
	assert.NotEqual(t, a, viewKey("day", "2025-07-10", durationFilter(3), days))

	changed := [][]models.VenueAvailability{
		{room("Main", "101", "lecture", slotAt("2025-07-10", 9, 0, 13, 0))},
	}
	assert.NotEqual(t, a, viewKey("day", "2025-07-10", f, changed))
}

func TestMemoryViewCacheEvicts(t *testing.T) {
	c := NewMemoryViewCache(2)
	ctx := context.Background()

	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3"))

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok, "oldest entry evicted")
	got, ok := c.Get(ctx, "c")
	require.True(t, ok)
	assert.Equal(t, []byte("3"), got)
}

// Memoized and fresh computations must be byte-for-byte interchangeable:
// correctness never depends on the cache.
func TestDailyViewDeterministicWithAndWithoutCache(t *testing.T) {
	repo := &stubRepo{days: map[string][]models.VenueAvailability{
		"2025-07-10": {
			room("Main", "Room A", "seminar", slotAt("2025-07-10", 14, 0, 18, 0)),
			room("Annex", "Studio", "studio", slotAt("2025-07-10", 9, 0, 11, 0)),
		},
	}}
	now := func() time.Time { return date("2025-07-01") }

	cached := &DefaultScheduleService{Repo: repo, Cache: NewMemoryViewCache(8), Now: now}
	plain := &DefaultScheduleService{Repo: repo, Now: now}
	f := windowFilter(15*60, 16*60)
	ctx := context.Background()

	first, err := cached.DailyView(ctx, date("2025-07-10"), f)
	require.NoError(t, err)
	second, err := cached.DailyView(ctx, date("2025-07-10"), f)
	require.NoError(t, err)
	fresh, err := plain.DailyView(ctx, date("2025-07-10"), f)
	require.NoError(t, err)

	// Compare wire encodings; Go time values lose their monotonic reading
	// through the cache round-trip.
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	freshJSON, err := json.Marshal(fresh)
	require.NoError(t, err)

	assert.JSONEq(t, string(firstJSON), string(secondJSON))
	assert.JSONEq(t, string(freshJSON), string(secondJSON))
}
