package seed

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

func count(t *testing.T, gdb *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(model).Count(&n).Error)
	return n
}

func TestRun_PopulatesEverything(t *testing.T) {
	gdb := newTestDB(t)
	require.NoError(t, New(gdb).Run("admin123", "anaros2026"))

	// 2 admins + 12 employées
	assert.EqualValues(t, 14, count(t, gdb, &models.Profile{}))

	// 4 catégories par défaut + 9 du catalogue, "Manucure" en commun
	assert.EqualValues(t, 12, count(t, gdb, &models.ServiceCategory{}))

	assert.EqualValues(t, 42, count(t, gdb, &models.Service{}))

	var admin models.Profile
	require.NoError(t, gdb.First(&admin, "email = ?", "admin@anaros.com").Error)
	assert.Equal(t, "superadmin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.PasswordHash), []byte("admin123"),
	))

	// Dounia couvre l'onglerie, pas la coiffure
	var dounia models.Profile
	require.NoError(t, gdb.First(&dounia, "email = ?", "dounia@anaros.com").Error)
	assert.Equal(t, "staff", dounia.Role)
	assert.NotEmpty(t, dounia.ColorCode)

	var onglerie models.ServiceCategory
	require.NoError(t, gdb.First(&onglerie, "name = ?", "Onglerie").Error)

	var skills int64
	require.NoError(t, gdb.Model(&models.StaffSkill{}).
		Where("profile_id = ? AND category_id = ?", dounia.ID, onglerie.ID).
		Count(&skills).Error)
	assert.EqualValues(t, 1, skills)

	var gelMains models.Service
	require.NoError(t, gdb.First(&gelMains, "name = ?", "Gel mains").Error)
	assert.Equal(t, onglerie.ID, gelMains.CategoryID)
	assert.Equal(t, 3500, gelMains.Price)
	assert.Equal(t, 90, gelMains.Duration)
}

func TestRun_IsIdempotent(t *testing.T) {
	gdb := newTestDB(t)
	seeder := New(gdb)

	require.NoError(t, seeder.Run("admin123", "anaros2026"))

	profiles := count(t, gdb, &models.Profile{})
	categories := count(t, gdb, &models.ServiceCategory{})
	services := count(t, gdb, &models.Service{})
	skills := count(t, gdb, &models.StaffSkill{})

	// relancer le seed ne duplique rien
	require.NoError(t, seeder.Run("admin123", "anaros2026"))

	assert.Equal(t, profiles, count(t, gdb, &models.Profile{}))
	assert.Equal(t, categories, count(t, gdb, &models.ServiceCategory{}))
	assert.Equal(t, services, count(t, gdb, &models.Service{}))
	assert.Equal(t, skills, count(t, gdb, &models.StaffSkill{}))
}

func TestCleanupEmptyCategories(t *testing.T) {
	gdb := newTestDB(t)
	seeder := New(gdb)

	massage := models.ServiceCategory{Name: "Massage"}
	onglerie := models.ServiceCategory{Name: "Onglerie"}
	require.NoError(t, gdb.Create(&massage).Error)
	require.NoError(t, gdb.Create(&onglerie).Error)
	require.NoError(t, gdb.Create(&models.Service{
		CategoryID: onglerie.ID, Name: "Gel mains", Price: 3500, Duration: 90,
	}).Error)

	removed, err := seeder.CleanupEmptyCategories()
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	var remaining []string
	require.NoError(t, gdb.Model(&models.ServiceCategory{}).Pluck("name", &remaining).Error)
	assert.Equal(t, []string{"Onglerie"}, remaining)
}

func TestCleanupEmptyCategories_AfterFullSeed(t *testing.T) {
	gdb := newTestDB(t)
	seeder := New(gdb)
	require.NoError(t, seeder.Run("admin123", "anaros2026"))

	// seules Coiffure, Esthétique et Massage restent sans prestation
	removed, err := seeder.CleanupEmptyCategories()
	require.NoError(t, err)
	assert.EqualValues(t, 3, removed)

	var names []string
	require.NoError(t, gdb.Model(&models.ServiceCategory{}).
		Order("name ASC").Pluck("name", &names).Error)
	assert.NotContains(t, names, "Massage")
	assert.Contains(t, names, "Onglerie")
	assert.Contains(t, names, "Manucure")
	assert.Len(t, names, 9)

	// un second passage ne retire plus rien
	removed, err = seeder.CleanupEmptyCategories()
	require.NoError(t, err)
	assert.EqualValues(t, 0, removed)
}
