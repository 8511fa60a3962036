package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/AnarosBeauty/salon-scheduler/internal/config"
	dbpkg "github.com/AnarosBeauty/salon-scheduler/internal/db"
	"github.com/AnarosBeauty/salon-scheduler/internal/seed"
)

// Seed complet et idempotent : tables, comptes admin, catégories, catalogue
// et effectif. Relancer la commande ne modifie aucune ligne existante.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// mots de passe fournis par l'environnement, valeurs de dev en repli
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
	viper.SetDefault("SEED_STAFF_PASSWORD", "anaros2026")
	adminPassword := viper.GetString("SEED_ADMIN_PASSWORD")
	staffPassword := viper.GetString("SEED_STAFF_PASSWORD")

	seeder := seed.New(db)
	if err := seeder.Run(adminPassword, staffPassword); err != nil {
		logrus.Fatalf("seed failed: %v", err)
	}

	logrus.Info("seed complete")
}
