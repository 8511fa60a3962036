package appointment

import (
	"context"

	"github.com/AnarosBeauty/salon-scheduler/internal/audit"
	"github.com/AnarosBeauty/salon-scheduler/internal/cache"
	domain "github.com/AnarosBeauty/salon-scheduler/internal/domain/appointment"
	"github.com/AnarosBeauty/salon-scheduler/internal/httperr"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
	"github.com/AnarosBeauty/salon-scheduler/internal/timezone"
)

// UpdateAppointmentInput est un patch partiel : un champ nil n'est pas
// touché. Un patch {status: "completed"} laisse donc les notes intactes.
type UpdateAppointmentInput struct {
	Status *string
	Notes  *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache *cache.ScheduleCache
	tz    string
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache *cache.ScheduleCache,
	tz string,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
		cache: cache,
		tz:    tz,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	var patch domain.Patch

	if in.Status != nil {
		status, ok := domain.ParseStatus(*in.Status)
		if !ok {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		patch.Status = &status
	}

	if in.Notes != nil {
		patch.Notes = in.Notes
	}

	if patch.Empty() {
		return nil, httperr.ErrBusiness("empty_patch")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Apply(ap, patch, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &ap.StaffID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"status": ap.Status},
	})

	uc.cache.Invalidate(ctx, ap.StaffID, ap.StartTime, ap.EndTime)

	return ap, nil
}
