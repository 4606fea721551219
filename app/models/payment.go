package models

import "time"

// Payment status values.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment records a charge against a booking. The amount is stored as
// submitted; it is not verified against the booking's total (known gap,
// see the gateway interface in app/services).
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"not null;index" json:"bookingId"`
	Amount    float64   `gorm:"not null;default:0" json:"amount"`
	Status    string    `gorm:"size:50;not null;default:pending" json:"status"`
	Method    string    `gorm:"size:50" json:"method"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
