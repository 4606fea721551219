package models

import "time"

// Booking status values. A booking starts pending and only moves forward:
// pending → approved → completed, or pending → cancelled.
// completed and cancelled are terminal.
const (
	BookingPending   = "pending"
	BookingApproved  = "approved"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// Booking is a reservation of a Service by a user at a snapshot price.
//
// UserID is set from the authenticated identity at creation and never
// changes. TotalPrice is service.price × quantity captured at creation;
// later price changes on the service do not affect it. Service references
// are weak: deleting a service leaves its bookings in place.
type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	User       *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ServiceID  uint      `gorm:"not null;index" json:"serviceId"`
	Service    *Service  `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Status     string    `gorm:"size:50;not null;default:pending" json:"status"`
	Date       string    `gorm:"size:32" json:"date"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	TotalPrice float64   `gorm:"not null;default:0" json:"totalPrice"`
	Notes      string    `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Terminal reports whether no further status transition is possible.
func (b Booking) Terminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}
