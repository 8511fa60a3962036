package appointment

import (
	"context"
	"time"

	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetClientByID(
		ctx context.Context,
		id string,
	) (*models.Client, error)

	GetStaffByID(
		ctx context.Context,
		id string,
	) (*models.Profile, error)

	GetServiceByID(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Skills --------
	HasSkill(
		ctx context.Context,
		profileID string,
		categoryID uint,
	) (bool, error)

	ListServicesForProfile(
		ctx context.Context,
		profileID string,
	) ([]models.Service, error)

	// -------- Appointment (create / patch) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForStaffDay(
		ctx context.Context,
		staffID string,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
