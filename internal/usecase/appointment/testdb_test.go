package appointment

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AnarosBeauty/salon-scheduler/internal/audit"
	appdb "github.com/AnarosBeauty/salon-scheduler/internal/db"
	"github.com/AnarosBeauty/salon-scheduler/internal/models"
)

const testTZ = "Africa/Algiers"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// base nommée pour que les connexions du pool partagent le même schéma
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

// bookingFixtures pose le minimum pour réserver : une cliente, une
// prothésiste ongulaire compétente, une coiffeuse qui ne l'est pas, et les
// prestations correspondantes.
type bookingFixtures struct {
	fatima models.Client

	dounia models.Profile
	karima models.Profile

	onglerie models.ServiceCategory
	coiffure models.ServiceCategory

	gelMains models.Service
	brushing models.Service
}

func seedBookingFixtures(t *testing.T, gdb *gorm.DB) bookingFixtures {
	t.Helper()

	fx := bookingFixtures{
		fatima: models.Client{FullName: "Fatima", Phone: "0550123456"},

		dounia: models.Profile{
			FirstName:    "Dounia",
			LastName:     "Anaros",
			Email:        "dounia@anaros.com",
			PasswordHash: "x",
			Role:         "staff",
			ColorCode:    "#EC4899",
		},
		karima: models.Profile{
			FirstName:    "Karima",
			LastName:     "Anaros",
			Email:        "karima@anaros.com",
			PasswordHash: "x",
			Role:         "staff",
			ColorCode:    "#EF4444",
		},

		onglerie: models.ServiceCategory{Name: "Onglerie"},
		coiffure: models.ServiceCategory{Name: "Coiffures"},
	}

	require.NoError(t, gdb.Create(&fx.fatima).Error)
	require.NoError(t, gdb.Create(&fx.dounia).Error)
	require.NoError(t, gdb.Create(&fx.karima).Error)
	require.NoError(t, gdb.Create(&fx.onglerie).Error)
	require.NoError(t, gdb.Create(&fx.coiffure).Error)

	fx.gelMains = models.Service{
		CategoryID: fx.onglerie.ID,
		Name:       "Gel mains",
		Price:      3500,
		Duration:   90,
	}
	fx.brushing = models.Service{
		CategoryID: fx.coiffure.ID,
		Name:       "Brushing",
		Price:      1500,
		Duration:   30,
	}
	require.NoError(t, gdb.Create(&fx.gelMains).Error)
	require.NoError(t, gdb.Create(&fx.brushing).Error)

	require.NoError(t, gdb.Create(&models.StaffSkill{
		ProfileID:  fx.dounia.ID,
		CategoryID: fx.onglerie.ID,
	}).Error)
	require.NoError(t, gdb.Create(&models.StaffSkill{
		ProfileID:  fx.karima.ID,
		CategoryID: fx.coiffure.ID,
	}).Error)

	return fx
}

func newTestDispatcher(gdb *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(gdb))
}
