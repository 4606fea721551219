package seeders

import (
	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/config"
	"github.com/trixtech/trixtech/pkg/auth"
)

func init() {
	Register("admin-user", SeedAdminUser)
	Register("demo-services", SeedDemoServices)
}

// SeedAdminUser creates the initial admin account if no admin exists yet.
// Credentials come from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("SEED_ADMIN_PASSWORD", "changeme-admin"))
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     "Administrator",
		Email:    config.Get("SEED_ADMIN_EMAIL", "admin@trixtech.local"),
		Password: hash,
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedDemoServices inserts a small demo catalog when the table is empty.
func SeedDemoServices(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []models.Service{
		{Name: "Tent Rental", Description: "Event tent, seats up to 40 guests", Category: "equipment", Price: 100, Availability: true},
		{Name: "Catering Package", Description: "Full-service catering, per table", Category: "food", Price: 250, Availability: true},
		{Name: "Sound System", Description: "PA system with two speakers and mixer", Category: "equipment", Price: 75, Availability: true},
		{Name: "Event Photography", Description: "4-hour photography session", Category: "media", Price: 400, Availability: true},
	}
	return db.Create(&demo).Error
}
