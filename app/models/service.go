package models

import "time"

// Service is a bookable catalog entry.
// Read by anyone; created, updated, and deleted only by admins.
type Service struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null;index" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Category     string    `gorm:"size:100;index" json:"category"`
	Price        float64   `gorm:"not null;default:0" json:"price"`
	Availability bool      `gorm:"not null;default:true" json:"availability"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
