package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/AnarosBeauty/salon-scheduler/internal/domain/appointment"
	"github.com/AnarosBeauty/salon-scheduler/internal/domain/schedule"
	"github.com/AnarosBeauty/salon-scheduler/internal/dto"
)

type ListCalendarEvents struct {
	repo domain.Repository
}

func NewListCalendarEvents(repo domain.Repository) *ListCalendarEvents {
	return &ListCalendarEvents{repo: repo}
}

// Execute retourne les événements du calendrier sur [from, to) : rendez-vous
// non annulés dont l'employé(e) est dans l'ensemble visible.
func (uc *ListCalendarEvents) Execute(
	ctx context.Context,
	visibility schedule.Visibility,
	from time.Time,
	to time.Time,
) ([]dto.CalendarEventDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CalendarEventDTO, 0, len(appointments))
	for _, ap := range appointments {
		if domain.Status(ap.Status) == domain.StatusCancelled {
			continue
		}
		if !visibility.Includes(ap.StaffID) {
			continue
		}

		out = append(out, dto.CalendarEventDTO{
			ID:         ap.ID,
			Title:      fmt.Sprintf("%s - %s", ap.Client.FullName, ap.Service.Name),
			StartTime:  ap.StartTime,
			EndTime:    ap.EndTime,
			Status:     ap.Status,
			ClientName: ap.Client.FullName,
			StaffID:    ap.StaffID,
			StaffName:  ap.Staff.FirstName,
			StaffColor: ap.Staff.ColorCode,
			Service:    ap.Service.Name,
			Category:   ap.Service.Category.Name,
		})
	}

	return out, nil
}
