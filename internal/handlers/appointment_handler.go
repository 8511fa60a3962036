package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnarosBeauty/salon-scheduler/internal/domain/schedule"
	"github.com/AnarosBeauty/salon-scheduler/internal/httperr"
	"github.com/AnarosBeauty/salon-scheduler/internal/httpresp"
	"github.com/AnarosBeauty/salon-scheduler/internal/middleware"
	"github.com/AnarosBeauty/salon-scheduler/internal/timezone"
	ucAppointment "github.com/AnarosBeauty/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	updateUC   *ucAppointment.UpdateAppointment
	calendarUC *ucAppointment.ListCalendarEvents
	tz         string
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	calendarUC *ucAppointment.ListCalendarEvents,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		updateUC:   updateUC,
		calendarUC: calendarUC,
		tz:         tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  string `json:"client_id" binding:"required"`
	StaffID   string `json:"staff_id" binding:"required"`
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Notes     string `json:"notes"`
}

type PatchAppointmentRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Veuillez remplir tous les champs.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:  req.ClientID,
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.BadRequest(c, "client_not_found", "Cliente introuvable.")
		case httperr.IsBusiness(err, "staff_not_found"):
			httperr.BadRequest(c, "staff_not_found", "Employé(e) introuvable.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Prestation introuvable.")
		case httperr.IsBusiness(err, "staff_not_skilled"):
			httperr.BadRequest(c, "staff_not_skilled", "Cette employée ne couvre pas cette catégorie de prestations.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Date ou heure invalide.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Impossible de créer le rendez-vous.")
		}
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// PATCH (status / notes)
// ======================================================

func (h *AppointmentHandler) Patch(c *gin.Context) {
	var req PatchAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), ucAppointment.UpdateAppointmentInput{
		Status: req.Status,
		Notes:  req.Notes,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_not_found"):
			httperr.NotFound(c, "appointment_not_found", "Rendez-vous introuvable.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Statut inconnu.")
		case httperr.IsBusiness(err, "invalid_status_transition"):
			httperr.BadRequest(c, "invalid_status_transition", "Cette transition de statut n'est pas autorisée.")
		case httperr.IsBusiness(err, "empty_patch"):
			httperr.BadRequest(c, "empty_patch", "Aucune modification fournie.")
		default:
			httperr.Internal(c, "failed_to_update_appointment", "Impossible de modifier le rendez-vous.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CALENDAR
// ======================================================

// ListCalendar renvoie les événements visibles sur [from, to). Le filtre
// `staff` absent signifie "tout le personnel" ; présent, c'est la liste
// explicite d'identifiants (éventuellement vide). Un compte staff est
// toujours ramené à son propre agenda.
func (h *AppointmentHandler) ListCalendar(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_period", "Période obligatoire (from, to).")
		return
	}

	from, err := timezone.ParseLocalDate(h.tz, fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}
	to, err := timezone.ParseLocalDate(h.tz, toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date invalide.")
		return
	}
	// borne haute inclusive : la journée "to" entière
	to = to.AddDate(0, 0, 1)

	visibility := schedule.AllStaff()
	if c.Request.URL.Query().Has("staff") {
		var ids []string
		for _, id := range strings.Split(c.Query("staff"), ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
		visibility = schedule.ExplicitSet(ids...)
	}

	visibility = schedule.ForRole(middleware.UserRole(c), middleware.UserID(c), visibility)

	events, err := h.calendarUC.Execute(c.Request.Context(), visibility, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Impossible de lister les rendez-vous.")
		return
	}

	httpresp.List(c, events)
}
