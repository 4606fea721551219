package migrations

import (
	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000001_create_services_table", &CreateServicesTable{})
	migration.Register("20260301000002_create_bookings_table", &CreateBookingsTable{})
	migration.Register("20260301000003_create_payments_table", &CreatePaymentsTable{})
}

// -------- 0001: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0002: services --------

type CreateServicesTable struct{}

func (m *CreateServicesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Service{})
}

func (m *CreateServicesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("services")
}

// -------- 0003: bookings --------

type CreateBookingsTable struct{}

func (m *CreateBookingsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Booking{})
}

func (m *CreateBookingsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("bookings")
}

// -------- 0004: payments --------

type CreatePaymentsTable struct{}

func (m *CreatePaymentsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Payment{})
}

func (m *CreatePaymentsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("payments")
}
