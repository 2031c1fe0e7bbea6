package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clubroom/models"
	"clubroom/services/facet"
	"clubroom/services/schedule"
	"clubroom/utils"
)

// ScheduleHandler exposes the venue picker views over HTTP.
type ScheduleHandler struct {
	Service schedule.Service
	Facets  facet.Catalog
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.Service, facets facet.Catalog) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Facets: facets}
}

// bindFilter reads the filter fields shared by all view endpoints from the
// query string. An incomplete window (only one bound given) is rejected;
// everything else defaults to the permissive filter.
func bindFilter(c *gin.Context) (models.VenueFilter, bool) {
	f := models.VenueFilter{
		Search:   c.Query("search"),
		RoomType: c.Query("roomType"),
		Building: c.Query("building"),
		Mode:     models.FilterMode(c.DefaultQuery("mode", string(models.FilterModeDuration))),
	}
	if f.Mode != models.FilterModeDuration && f.Mode != models.FilterModeWindow {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter mode", string(f.Mode))
		return f, false
	}
	if h := c.Query("minDurationHours"); h != "" {
		v, err := strconv.ParseFloat(h, 64)
		if err != nil || v < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid minDurationHours", h)
			return f, false
		}
		f.MinDurationHours = v
	}
	ws, we := c.Query("windowStart"), c.Query("windowEnd")
	if (ws == "") != (we == "") {
		utils.JSONError(c, http.StatusBadRequest, "Window requires both windowStart and windowEnd", "")
		return f, false
	}
	if ws != "" {
		start, err := models.ParseClock(ws)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid windowStart", err.Error())
			return f, false
		}
		end, err := models.ParseClock(we)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid windowEnd", err.Error())
			return f, false
		}
		f.Window = &models.TimeWindow{Start: start, End: end}
	}
	return f, true
}

func bindDate(c *gin.Context, param string) (time.Time, bool) {
	raw := c.Query(param)
	d, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid "+param, raw)
		return time.Time{}, false
	}
	return d, true
}

// GetDailyViewHandler serves GET /api/schedule/day?date=YYYY-MM-DD.
func (h *ScheduleHandler) GetDailyViewHandler(c *gin.Context) {
	date, ok := bindDate(c, "date")
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	view, err := h.Service.DailyView(c.Request.Context(), date, filter)
	if err != nil {
		utils.GetLogger().Error("Failed to build daily view", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build daily view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetWeeklyViewHandler serves GET /api/schedule/week?start=YYYY-MM-DD, where
// start is the Monday of the requested week.
func (h *ScheduleHandler) GetWeeklyViewHandler(c *gin.Context) {
	start, ok := bindDate(c, "start")
	if !ok {
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	view, err := h.Service.WeeklyView(c.Request.Context(), start, filter)
	if err != nil {
		utils.GetLogger().Error("Failed to build weekly view", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build weekly view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetMonthlyViewHandler serves GET /api/schedule/month?month=YYYY-MM.
func (h *ScheduleHandler) GetMonthlyViewHandler(c *gin.Context) {
	raw := c.Query("month")
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid month", raw)
		return
	}
	filter, ok := bindFilter(c)
	if !ok {
		return
	}
	view, err := h.Service.MonthlyView(c.Request.Context(), month, filter)
	if err != nil {
		utils.GetLogger().Error("Failed to build monthly view", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build monthly view", err.Error())
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectVenueRequest is the click payload routed into a selection event.
type SelectVenueRequest struct {
	Building string `json:"building" binding:"required"`
	Room     string `json:"room" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

// SelectVenueHandler serves POST /api/schedule/select. The returned
// selection is handed to the event editor; persisting the event record is
// the caller's concern.
func (h *ScheduleHandler) SelectVenueHandler(c *gin.Context) {
	var req SelectVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid selection payload", err.Error())
		return
	}
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid selection date", req.Date)
		return
	}

	key := models.VenueKey{Building: req.Building, Room: req.Room}
	sel, found, err := h.Service.ResolveSelection(c.Request.Context(), key, date)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve selection", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to resolve selection", err.Error())
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, "Room has no availability on that date", req.Date)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

// SwitchFilterModeRequest carries the picker's current filter state plus the
// requested mode. The server holds no per-user state; the client round-trips
// the state machine value.
type SwitchFilterModeRequest struct {
	State *schedule.FilterState `json:"state"`
	Mode  models.FilterMode     `json:"mode" binding:"required"`
}

// SwitchFilterModeHandler serves POST /api/schedule/filter/switch.
func (h *ScheduleHandler) SwitchFilterModeHandler(c *gin.Context) {
	var req SwitchFilterModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter state payload", err.Error())
		return
	}
	if req.Mode != models.FilterModeDuration && req.Mode != models.FilterModeWindow {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter mode", string(req.Mode))
		return
	}
	state := schedule.NewFilterState()
	if req.State != nil {
		state = *req.State
	}
	c.JSON(http.StatusOK, gin.H{"state": state.SwitchMode(req.Mode)})
}

// GetFacetsHandler serves GET /api/schedule/facets.
func (h *ScheduleHandler) GetFacetsHandler(c *gin.Context) {
	facets, err := h.Facets.Facets(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to fetch facet catalog", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch facets", err.Error())
		return
	}
	c.JSON(http.StatusOK, facets)
}
