package seed

import (
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AnarosBeauty/salon-scheduler/internal/domain/role"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

type staffEntry struct {
	Name       string
	Categories []string
}

// L'effectif du salon et les catégories couvertes par chacune.
var staffRoster = []staffEntry{
	{"Karima", []string{"Coiffures"}},
	{"Malika", []string{"Coiffures"}},
	{"Farida", []string{"Coiffures"}},
	{"Meriem", []string{"Coiffures"}},
	{"Houda", []string{"Coiffures"}},
	{"Samira", []string{"Coiffures", "Formules Hammam"}},
	{"Dounia", []string{"Onglerie", "Manucure", "Pédicure"}},
	{"Safa", []string{"Onglerie", "Manucure", "Pédicure"}},
	{"Chanez", []string{"Onglerie", "Manucure", "Pédicure"}},
	{"Sara", []string{"Maquillages"}},
	{"Saliha", []string{"Soins Du Visage (Thalgo)", "Soins Du Visage (Esthemax)", "Hydrafacial"}},
	{"Amel", []string{"Soins Du Visage (Thalgo)", "Soins Du Visage (Esthemax)", "Hydrafacial"}},
}

// Couleurs d'agenda attribuées en boucle sur l'effectif.
var agendaColors = []string{
	"#EF4444", "#F97316", "#F59E0B", "#84CC16",
	"#10B981", "#14B8A6", "#06B6D4", "#3B82F6",
	"#8B5CF6", "#A855F7", "#EC4899", "#F43F5E",
}

// Staff crée les profils employées et leurs compétences. Chaque employée
// est traitée dans une transaction : profil, catégories et compétences
// arrivent ensemble ou pas du tout.
func (s *Seeder) Staff(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i, entry := range staffRoster {
		email := strings.ToLower(entry.Name) + "@anaros.com"
		color := agendaColors[i%len(agendaColors)]

		err := s.db.Transaction(func(tx *gorm.DB) error {
			var profile models.Profile
			if err := tx.
				Where(models.Profile{Email: email}).
				Attrs(models.Profile{
					FirstName:    entry.Name,
					LastName:     "Anaros",
					Email:        email,
					PasswordHash: string(hashed),
					Role:         string(role.Staff),
					ColorCode:    color,
				}).
				FirstOrCreate(&profile).Error; err != nil {
				return err
			}

			for _, catName := range entry.Categories {
				var category models.ServiceCategory
				if err := tx.
					Where(models.ServiceCategory{Name: catName}).
					FirstOrCreate(&category).Error; err != nil {
					return err
				}

				skill := models.StaffSkill{
					ProfileID:  profile.ID,
					CategoryID: category.ID,
				}
				if err := tx.
					Where(skill).
					FirstOrCreate(&models.StaffSkill{}).Error; err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return err
		}

		logrus.WithField("staff", entry.Name).Info("staff member seeded")
	}

	return nil
}
