package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/pkg/auth"
)

// newTestDB opens a per-test in-memory sqlite database with the full
// schema migrated. The shared-cache name keeps the database alive across
// pooled connections for the duration of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.Payment{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, role string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)

	user := models.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Password: hash,
		Role:     role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64) models.Service {
	t.Helper()

	service := models.Service{Name: name, Price: price, Availability: true}
	require.NoError(t, db.Create(&service).Error)
	return service
}

func identityOf(u models.User) auth.Identity {
	return auth.Identity{ID: u.ID, Role: u.Role}
}

func bookingRepo(db *gorm.DB) *repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func serviceRepo(db *gorm.DB) *repositories.ServiceRepository {
	return repositories.NewServiceRepository(db)
}
