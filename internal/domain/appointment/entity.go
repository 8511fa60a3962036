package appointment

import (
	"time"

	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Patch est une mise à jour partielle : un champ nil est laissé tel quel.
type Patch struct {
	Status *Status
	Notes  *string
}

func (p Patch) Empty() bool {
	return p.Status == nil && p.Notes == nil
}

// Apply applique un patch sur un rendez-vous en validant la machine à états.
// Les notes restent modifiables sur un rendez-vous terminé.
func Apply(ap *models.Appointment, p Patch, now time.Time) error {
	if p.Status != nil {
		current := Status(ap.Status)
		if err := CanTransition(current, *p.Status); err != nil {
			return err
		}

		ap.Status = string(*p.Status)
		switch *p.Status {
		case StatusCancelled:
			if ap.CancelledAt == nil {
				ap.CancelledAt = &now
			}
		case StatusCompleted:
			if ap.CompletedAt == nil {
				ap.CompletedAt = &now
			}
		}
	}

	if p.Notes != nil {
		ap.Notes = *p.Notes
	}

	return nil
}
