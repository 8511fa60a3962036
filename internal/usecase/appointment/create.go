package appointment

import (
	"context"
	"time"

	"github.com/AnarosBeauty/salon-scheduler/internal/audit"
	"github.com/AnarosBeauty/salon-scheduler/internal/cache"
	domain "github.com/AnarosBeauty/salon-scheduler/internal/domain/appointment"
	"github.com/AnarosBeauty/salon-scheduler/internal/httperr"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
	"github.com/AnarosBeauty/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  string
	StaffID   string
	ServiceID string

	Date  string // "2006-01-02"
	Time  string // "15:04"
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.ScheduleCache
	tz    string
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.ScheduleCache,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
		tz:    tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Cliente
	// --------------------------------------------------
	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// --------------------------------------------------
	// 2. Employé(e)
	// --------------------------------------------------
	staff, err := uc.repo.GetStaffByID(ctx, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	// --------------------------------------------------
	// 3. Prestation
	// --------------------------------------------------
	service, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 4. Compétence : l'employé(e) doit couvrir la catégorie
	// --------------------------------------------------
	skilled, err := uc.repo.HasSkill(ctx, staff.ID, service.CategoryID)
	if err != nil {
		return nil, err
	}
	if !skilled {
		return nil, httperr.ErrBusiness("staff_not_skilled")
	}

	// --------------------------------------------------
	// 5. Heure murale locale, fin dérivée de la durée
	// --------------------------------------------------
	start, err := timezone.ParseLocalDateTime(uc.tz, in.Date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	end := start.Add(time.Duration(service.Duration) * time.Minute)

	// --------------------------------------------------
	// 6. Création, statut initial centralisé
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:  client.ID,
		StaffID:   staff.ID,
		ServiceID: service.ID,
		StartTime: start,
		EndTime:   end,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Audit + invalidation du planning en cache
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &staff.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.cache.Invalidate(ctx, staff.ID, start, end)

	return ap, nil
}
