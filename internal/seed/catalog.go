package seed

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

type catalogService struct {
	Name     string
	Price    int
	Duration int
}

type catalogGroup struct {
	Category string
	Services []catalogService
}

// Le menu ANAROS complet. Prix en dinars, durées en minutes.
var catalog = []catalogGroup{
	{
		Category: "Onglerie",
		Services: []catalogService{
			{"Vernis semi permanent mains", 3000, 45},
			{"Vernis semi permanent pieds", 3500, 45},
			{"Gel mains", 3500, 90},
			{"Gel pieds", 4000, 90},
			{"Capsules", 4500, 90},
			{"Extension chablon", 6000, 120},
			{"Remplissage", 3500, 90},
			{"Réparation ongle vsp", 200, 15},
			{"Réparation ongle gel", 300, 15},
			{"French ou Baby-boomer", 1000, 30},
		},
	},
	{
		Category: "Manucure",
		Services: []catalogService{
			{"Manucure Thuya", 3500, 45},
			{"Manucure à la paraffine", 4000, 60},
		},
	},
	{
		Category: "Pédicure",
		Services: []catalogService{
			{"Pédicure Thuya", 4500, 60},
			{"Pédicure complète à la paraffine", 5000, 90},
			{"Peeling pieds", 6500, 90},
		},
	},
	{
		Category: "Coiffures",
		Services: []catalogService{
			{"Coiffure enfant", 2500, 30},
			{"Coiffure simple", 5000, 45},
			{"Coiffure semi travaillée", 8000, 60},
			{"Coiffure travaillée", 12000, 90},
			{"Coiffure mariée", 15000, 180},
		},
	},
	{
		Category: "Maquillages",
		Services: []catalogService{
			{"Maquillage jour", 4500, 45},
			{"Maquillage soirée", 6000, 60},
			{"Maquillage mariée", 10000, 120},
			{"Faux cils", 1000, 15},
		},
	},
	{
		Category: "Soins Du Visage (Thalgo)",
		Services: []catalogService{
			{"Beauty flash visage et yeux", 4000, 30},
			{"Soin marin (3 algues)", 6000, 60},
			{"Rituel source marine", 6500, 60},
			{"Rituel cold cream (Sèche/Sensible)", 6500, 60},
			{"Soin combleur hyaluronique", 9500, 75},
			{"Soin silicium super lift", 10500, 90},
			{"Cure Peeling grade 1/2/3", 9500, 60},
		},
	},
	{
		Category: "Soins Du Visage (Esthemax)",
		Services: []catalogService{
			{"Egyptian rose / Hyaluronic Acid", 15000, 60},
			{"Illuminating orange / Brightening", 15000, 60},
			{"Antioxidant Goji / Spot diminishing", 15000, 60},
			{"Blue Glacier / Australian Placenta", 15000, 60},
			{"Resilience Caviar / Youthful Elixir", 20000, 90},
		},
	},
	{
		Category: "Hydrafacial",
		Services: []catalogService{
			{"Hydraskin coréen", 15000, 60},
			{"Hydraskin esthemax", 20000, 90},
		},
	},
	{
		Category: "Formules Hammam",
		Services: []catalogService{
			{"Rituel Traditionnel", 2800, 60},
			{"Rituel Royal", 3800, 90},
			{"Rituel Impérial", 4800, 120},
			{"Rituel Sultana", 7000, 150},
		},
	},
}

// Catalog importe le menu complet. Chaque groupe catégorie + prestations
// est inséré dans une seule transaction : pas de catégorie orpheline si une
// insertion échoue à mi-chemin.
func (s *Seeder) Catalog() error {
	for _, group := range catalog {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			var category models.ServiceCategory
			if err := tx.
				Where(models.ServiceCategory{Name: group.Category}).
				FirstOrCreate(&category).Error; err != nil {
				return err
			}

			for _, svc := range group.Services {
				service := models.Service{
					CategoryID: category.ID,
					Name:       svc.Name,
					Price:      svc.Price,
					Duration:   svc.Duration,
				}

				if err := tx.
					Where(models.Service{CategoryID: category.ID, Name: svc.Name}).
					Attrs(service).
					FirstOrCreate(&models.Service{}).Error; err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return err
		}

		logrus.WithField("category", group.Category).Info("catalog group seeded")
	}

	return nil
}
