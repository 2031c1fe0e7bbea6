package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubroom/models"
	"clubroom/services/schedule"
)

type stubScheduleService struct {
	daily      models.DailyView
	weekly     models.WeeklyView
	monthly    models.MonthlyView
	selection  models.VenueSelection
	found      bool
	lastFilter models.VenueFilter
}

func (s *stubScheduleService) DailyView(_ context.Context, _ time.Time, f models.VenueFilter) (models.DailyView, error) {
	s.lastFilter = f
	return s.daily, nil
}

func (s *stubScheduleService) WeeklyView(_ context.Context, _ time.Time, f models.VenueFilter) (models.WeeklyView, error) {
	s.lastFilter = f
	return s.weekly, nil
}

func (s *stubScheduleService) MonthlyView(_ context.Context, _ time.Time, f models.VenueFilter) (models.MonthlyView, error) {
	s.lastFilter = f
	return s.monthly, nil
}

func (s *stubScheduleService) ResolveSelection(_ context.Context, _ models.VenueKey, _ time.Time) (models.VenueSelection, bool, error) {
	return s.selection, s.found, nil
}

type stubCatalog struct {
	facets models.FacetValues
}

func (c *stubCatalog) Facets(_ context.Context) (models.FacetValues, error) { return c.facets, nil }
func (c *stubCatalog) Refresh(_ context.Context) error                     { return nil }

func newTestRouter(svc *stubScheduleService, cat *stubCatalog) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewScheduleHandler(svc, cat)
	r := gin.New()
	api := r.Group("/api/schedule")
	api.GET("/day", h.GetDailyViewHandler)
	api.GET("/week", h.GetWeeklyViewHandler)
	api.GET("/month", h.GetMonthlyViewHandler)
	api.GET("/facets", h.GetFacetsHandler)
	api.POST("/select", h.SelectVenueHandler)
	api.POST("/filter/switch", h.SwitchFilterModeHandler)
	return r
}

func TestGetDailyViewHandler(t *testing.T) {
	svc := &stubScheduleService{daily: models.DailyView{Date: "2025-07-10"}}
	router := newTestRouter(svc, &stubCatalog{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/schedule/day?date=2025-07-10&mode=window&windowStart=15:00&windowEnd=16:00&building=Main", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var view models.DailyView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "2025-07-10", view.Date)

	assert.Equal(t, models.FilterModeWindow, svc.lastFilter.Mode)
	require.NotNil(t, svc.lastFilter.Window)
	assert.Equal(t, 15*60, svc.lastFilter.Window.Start)
	assert.Equal(t, "Main", svc.lastFilter.Building)
}

func TestGetDailyViewHandlerRejectsBadInput(t *testing.T) {
	router := newTestRouter(&stubScheduleService{}, &stubCatalog{})

	cases := []struct {
		name string
		url  string
	}{
		{"missing date", "/api/schedule/day"},
		{"bad date", "/api/schedule/day?date=July+10th"},
		{"bad mode", "/api/schedule/day?date=2025-07-10&mode=fuzzy"},
		{"half window", "/api/schedule/day?date=2025-07-10&windowStart=15:00"},
		{"bad clock", "/api/schedule/day?date=2025-07-10&windowStart=25:00&windowEnd=26:00"},
		{"negative duration", "/api/schedule/day?date=2025-07-10&minDurationHours=-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.url, nil))
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetWeeklyAndMonthlyHandlers(t *testing.T) {
	svc := &stubScheduleService{
		weekly:  models.WeeklyView{Dates: []string{"2025-07-07"}},
		monthly: models.MonthlyView{Month: "2025-07"},
	}
	router := newTestRouter(svc, &stubCatalog{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/schedule/week?start=2025-07-07", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/schedule/month?month=2025-07", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/schedule/month?month=last", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSelectVenueHandler(t *testing.T) {
	svc := &stubScheduleService{
		selection: models.VenueSelection{ID: "abc", Date: "2025-07-10"},
		found:     true,
	}
	router := newTestRouter(svc, &stubCatalog{})

	body, _ := json.Marshal(SelectVenueRequest{Building: "Main", Room: "Room A", Date: "2025-07-10"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule/select", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Selection models.VenueSelection `json:"selection"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc", resp.Selection.ID)

	// Room with no record that day.
	svc.found = false
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/schedule/select", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSwitchFilterModeHandler(t *testing.T) {
	router := newTestRouter(&stubScheduleService{}, &stubCatalog{})

	state := schedule.NewFilterState().WithDuration(3)
	body, _ := json.Marshal(SwitchFilterModeRequest{State: &state, Mode: models.FilterModeWindow})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/schedule/filter/switch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		State schedule.FilterState `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.FilterModeWindow, resp.State.Filter.Mode)
	assert.Equal(t, 3.0, resp.State.Memory.Duration, "duration remembered for the round trip")
}

func TestGetFacetsHandler(t *testing.T) {
	cat := &stubCatalog{facets: models.FacetValues{
		RoomTypes: []string{"lecture", "studio"},
		Buildings: []string{"Annex", "Main"},
	}}
	router := newTestRouter(&stubScheduleService{}, cat)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/schedule/facets", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var facets models.FacetValues
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &facets))
	assert.Equal(t, []string{"lecture", "studio"}, facets.RoomTypes)
}
