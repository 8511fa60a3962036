package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appdb "github.com/AnarosBeauty/salon-scheduler/internal/db"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, appdb.Migrate(gdb))
	return gdb
}

func TestListServicesForProfile(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewAppointmentGormRepository(gdb)

	onglerie := models.ServiceCategory{Name: "Onglerie"}
	manucure := models.ServiceCategory{Name: "Manucure"}
	coiffure := models.ServiceCategory{Name: "Coiffures"}
	require.NoError(t, gdb.Create(&onglerie).Error)
	require.NoError(t, gdb.Create(&manucure).Error)
	require.NoError(t, gdb.Create(&coiffure).Error)

	for _, svc := range []models.Service{
		{CategoryID: onglerie.ID, Name: "Gel mains", Price: 3500, Duration: 90},
		{CategoryID: onglerie.ID, Name: "Capsules", Price: 4500, Duration: 90},
		{CategoryID: manucure.ID, Name: "Manucure simple", Price: 1200, Duration: 30},
		{CategoryID: coiffure.ID, Name: "Brushing", Price: 1500, Duration: 30},
	} {
		svc := svc
		require.NoError(t, gdb.Create(&svc).Error)
	}

	dounia := models.Profile{
		FirstName: "Dounia", LastName: "Anaros",
		Email: "dounia@anaros.com", PasswordHash: "x",
	}
	require.NoError(t, gdb.Create(&dounia).Error)
	require.NoError(t, gdb.Create(&models.StaffSkill{ProfileID: dounia.ID, CategoryID: onglerie.ID}).Error)
	require.NoError(t, gdb.Create(&models.StaffSkill{ProfileID: dounia.ID, CategoryID: manucure.ID}).Error)

	services, err := repo.ListServicesForProfile(context.Background(), dounia.ID)
	require.NoError(t, err)

	// uniquement les catégories couvertes, triées par nom
	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name)
		assert.NotEmpty(t, svc.Category.Name, "category must be preloaded")
		assert.NotEqual(t, "Coiffures", svc.Category.Name)
	}
	assert.Equal(t, []string{"Capsules", "Gel mains", "Manucure simple"}, names)
}

func TestHasSkill(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewAppointmentGormRepository(gdb)

	onglerie := models.ServiceCategory{Name: "Onglerie"}
	coiffure := models.ServiceCategory{Name: "Coiffures"}
	require.NoError(t, gdb.Create(&onglerie).Error)
	require.NoError(t, gdb.Create(&coiffure).Error)

	dounia := models.Profile{
		FirstName: "Dounia", LastName: "Anaros",
		Email: "dounia@anaros.com", PasswordHash: "x",
	}
	require.NoError(t, gdb.Create(&dounia).Error)
	require.NoError(t, gdb.Create(&models.StaffSkill{ProfileID: dounia.ID, CategoryID: onglerie.ID}).Error)

	ok, err := repo.HasSkill(context.Background(), dounia.ID, onglerie.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasSkill(context.Background(), dounia.ID, coiffure.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
