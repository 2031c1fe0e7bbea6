package schedule

import (
	"context"
	"encoding/json"
	"time"

	availabilityRepo "clubroom/database/repository/availability"
	"clubroom/models"
)

// Service computes render-ready availability views for the venue picker and
// resolves clicks into venue/date selections. All computation is synchronous
// and pure over the per-range snapshot fetched through Repo; re-invoking with
// a fresh snapshot at any time is safe.
type Service interface {
	DailyView(ctx context.Context, date time.Time, f models.VenueFilter) (models.DailyView, error)
	WeeklyView(ctx context.Context, weekStart time.Time, f models.VenueFilter) (models.WeeklyView, error)
	MonthlyView(ctx context.Context, month time.Time, f models.VenueFilter) (models.MonthlyView, error)
	ResolveSelection(ctx context.Context, key models.VenueKey, date time.Time) (models.VenueSelection, bool, error)
}

// DefaultScheduleService is the concrete engine.
type DefaultScheduleService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache ViewCache // optional; views recompute identically without it

	// Display window bounds; zero values fall back to the defaults.
	DisplayStartHour int
	DisplayEndHour   int

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultScheduleService) displayStart() int {
	if s.DisplayStartHour > 0 {
		return s.DisplayStartHour
	}
	return DefaultDisplayStartHour
}

func (s *DefaultScheduleService) displayEnd() int {
	if s.DisplayEndHour > 0 {
		return s.DisplayEndHour
	}
	return DefaultDisplayEndHour
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// cached looks up a memoized payload and decodes it into out.
func (s *DefaultScheduleService) cached(ctx context.Context, key string, out interface{}) bool {
	if s.Cache == nil {
		return false
	}
	b, ok := s.Cache.Get(ctx, key)
	if !ok {
		return false
	}
	return json.Unmarshal(b, out) == nil
}

// memoize stores a computed payload, best effort.
func (s *DefaultScheduleService) memoize(ctx context.Context, key string, v interface{}) {
	if s.Cache == nil {
		return
	}
	if b, err := json.Marshal(v); err == nil {
		s.Cache.Set(ctx, key, b)
	}
}

// facetFiltered applies the non-temporal filter fields to each day list,
// preserving per-day grouping and order.
func facetFiltered(days [][]models.VenueAvailability, f models.VenueFilter) [][]models.VenueAvailability {
	out := make([][]models.VenueAvailability, len(days))
	for i, day := range days {
		for _, v := range day {
			if MatchesFacets(v, f) {
				out[i] = append(out[i], v)
			}
		}
	}
	return out
}
