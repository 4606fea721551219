package repositories

import (
	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
)

// BookingRepository handles database operations for Booking.
type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create persists a new booking.
func (r *BookingRepository) Create(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

// FindByID looks up a booking by primary key.
func (r *BookingRepository) FindByID(id uint) (models.Booking, error) {
	var booking models.Booking
	err := r.db.First(&booking, id).Error
	return booking, err
}

// AllExpanded returns every booking with user and service preloaded,
// in creation order. Used for the admin listing.
func (r *BookingRepository) AllExpanded() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("User").Preload("Service").Order("id asc").Find(&bookings).Error
	return bookings, err
}

// AllByUser returns the bookings owned by userID with the service
// preloaded, in creation order.
func (r *BookingRepository) AllByUser(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Preload("Service").Where("user_id = ?", userID).Order("id asc").Find(&bookings).Error
	return bookings, err
}

// All returns every booking without expansion, in creation order.
func (r *BookingRepository) All() ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.Order("id asc").Find(&bookings).Error
	return bookings, err
}

// UpdateStatusFrom performs a conditional status update: the write only
// applies while the persisted status still equals from. Returns the number
// of rows changed; zero means another writer got there first or the
// booking is gone.
func (r *BookingRepository) UpdateStatusFrom(id uint, from, to string) (int64, error) {
	res := r.db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// Delete removes a booking by primary key (hard delete).
func (r *BookingRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Booking{}, id)
	return res.RowsAffected, res.Error
}

// Count returns the total number of bookings.
func (r *BookingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Booking{}).Count(&count).Error
	return count, err
}
