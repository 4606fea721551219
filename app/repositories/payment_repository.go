package repositories

import (
	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
)

// PaymentRepository handles database operations for Payment.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create persists a new payment.
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// All returns every payment, oldest first.
func (r *PaymentRepository) All() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Order("id asc").Find(&payments).Error
	return payments, err
}

// AllByStatus returns payments with the given status, oldest first.
func (r *PaymentRepository) AllByStatus(status string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("status = ?", status).Order("id asc").Find(&payments).Error
	return payments, err
}
