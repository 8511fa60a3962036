package appointment

import (
	"context"
	"time"

	domain "github.com/AnarosBeauty/salon-scheduler/internal/domain/appointment"
	"github.com/AnarosBeauty/salon-scheduler/internal/dto"
)

type DaySchedule struct {
	repo domain.Repository
}

func NewDaySchedule(repo domain.Repository) *DaySchedule {
	return &DaySchedule{repo: repo}
}

// Execute construit l'agenda d'un(e) employé(e) pour la journée locale de
// `date` (minuit à minuit) : tri chronologique, annulés exclus, compteurs
// par statut.
func (uc *DaySchedule) Execute(
	ctx context.Context,
	staffID string,
	date time.Time,
) (*dto.DayScheduleDTO, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.AddDate(0, 0, 1)

	appointments, err := uc.repo.ListAppointmentsForStaffDay(ctx, staffID, start, end)
	if err != nil {
		return nil, err
	}

	out := &dto.DayScheduleDTO{
		StaffID:      staffID,
		Date:         start.Format("2006-01-02"),
		Appointments: make([]dto.DayAppointmentDTO, 0, len(appointments)),
	}

	for _, ap := range appointments {
		status := domain.Status(ap.Status)
		if status == domain.StatusCancelled {
			continue
		}

		out.Appointments = append(out.Appointments, dto.DayAppointmentDTO{
			ID:         ap.ID,
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			Status:     ap.Status,
			Notes:      ap.Notes,
			ClientName: ap.Client.FullName,
			Phone:      ap.Client.Phone,
			Service:    ap.Service.Name,
			Duration:   ap.Service.Duration,
			Price:      ap.Service.Price,
		})

		out.Total++
		switch status {
		case domain.StatusPending:
			out.Pending++
		case domain.StatusConfirmed:
			out.Confirmed++
		case domain.StatusCompleted:
			out.Completed++
		}
	}

	return out, nil
}
