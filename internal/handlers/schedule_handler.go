package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnarosBeauty/salon-scheduler/internal/cache"
	"github.com/AnarosBeauty/salon-scheduler/internal/httperr"
	"github.com/AnarosBeauty/salon-scheduler/internal/middleware"
	"github.com/AnarosBeauty/salon-scheduler/internal/timezone"
	ucAppointment "github.com/AnarosBeauty/salon-scheduler/internal/usecase/appointment"
)

// ScheduleHandler sert l'agenda journalier par employé(e), avec un cache
// par (employé(e), date) invalidé à chaque mutation de rendez-vous.
type ScheduleHandler struct {
	dayUC *ucAppointment.DaySchedule
	cache *cache.ScheduleCache
	tz    string
}

func NewScheduleHandler(
	dayUC *ucAppointment.DaySchedule,
	cache *cache.ScheduleCache,
	tz string,
) *ScheduleHandler {
	return &ScheduleHandler{
		dayUC: dayUC,
		cache: cache,
		tz:    tz,
	}
}

func (h *ScheduleHandler) GetDay(c *gin.Context) {
	staffID := c.Query("staff_id")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	// un compte staff ne consulte que son propre agenda
	if middleware.UserRole(c).SeesOnlyOwnAgenda() {
		staffID = middleware.UserID(c)
	}
	if staffID == "" {
		httperr.BadRequest(c, "missing_staff_id", "Employé(e) obligatoire.")
		return
	}

	date, err := timezone.ParseLocalDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}

	ctx := c.Request.Context()

	if cached := h.cache.Get(ctx, staffID, date); cached != "" {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	day, err := h.dayUC.Execute(ctx, staffID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Impossible de charger l'agenda.")
		return
	}

	if payload, err := json.Marshal(day); err == nil {
		h.cache.Set(ctx, staffID, date, string(payload))
	}

	c.JSON(http.StatusOK, day)
}
