package main

import (
	"github.com/sirupsen/logrus"

	"github.com/AnarosBeauty/salon-scheduler/internal/config"
	dbpkg "github.com/AnarosBeauty/salon-scheduler/internal/db"
	"github.com/AnarosBeauty/salon-scheduler/internal/seed"
)

// Supprime les catégories de prestations que plus aucun service ne
// référence.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	removed, err := seed.New(db).CleanupEmptyCategories()
	if err != nil {
		logrus.Fatalf("cleanup failed: %v", err)
	}

	logrus.WithField("removed", removed).Info("empty categories cleaned up")
}
