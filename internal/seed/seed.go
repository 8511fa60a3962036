package seed

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AnarosBeauty/salon-scheduler/internal/domain/role"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

// Seeder alimente la base en données de départ. Toutes les insertions sont
// keyed sur l'unicité naturelle (e-mail, nom de catégorie, nom de
// prestation) : relancer le seed est un no-op pour les lignes existantes.
type Seeder struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run exécute l'intégralité du seed : comptes admin, catégories par défaut,
// catalogue de prestations, effectif et compétences.
func (s *Seeder) Run(adminPassword, staffPassword string) error {
	if err := s.Admins(adminPassword); err != nil {
		return err
	}
	if err := s.DefaultCategories(); err != nil {
		return err
	}
	if err := s.Catalog(); err != nil {
		return err
	}
	return s.Staff(staffPassword)
}

// ======================================================
// ADMINS
// ======================================================

var defaultAdmins = []struct {
	FirstName string
	LastName  string
	Email     string
}{
	{"Admin", "Anaros", "admin@anaros.com"},
	{"Super", "Admin", "nouveau@admin.com"},
}

// Admins crée les deux comptes administrateur par défaut. Le mot de passe
// vient de l'environnement et n'est stocké que haché.
func (s *Seeder) Admins(password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, admin := range defaultAdmins {
		profile := models.Profile{
			FirstName:    admin.FirstName,
			LastName:     admin.LastName,
			Email:        admin.Email,
			PasswordHash: string(hashed),
			Role:         string(role.SuperAdmin),
		}

		res := s.db.
			Where(models.Profile{Email: admin.Email}).
			Attrs(profile).
			FirstOrCreate(&models.Profile{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			logrus.WithField("email", admin.Email).Info("admin account created")
		}
	}

	return nil
}

// ======================================================
// DEFAULT CATEGORIES
// ======================================================

var defaultCategories = []string{"Coiffure", "Esthétique", "Massage", "Manucure"}

func (s *Seeder) DefaultCategories() error {
	for _, name := range defaultCategories {
		res := s.db.
			Where(models.ServiceCategory{Name: name}).
			FirstOrCreate(&models.ServiceCategory{})
		if res.Error != nil {
			return res.Error
		}
	}

	logrus.Info("default categories seeded")
	return nil
}
