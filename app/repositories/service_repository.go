package repositories

import (
	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
)

// ServiceRepository handles database operations for Service.
type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

// All returns every service, oldest first.
func (r *ServiceRepository) All() ([]models.Service, error) {
	var services []models.Service
	err := r.db.Order("id asc").Find(&services).Error
	return services, err
}

// FindByID looks up a service by primary key.
func (r *ServiceRepository) FindByID(id uint) (models.Service, error) {
	var service models.Service
	err := r.db.First(&service, id).Error
	return service, err
}

// Create persists a new service.
func (r *ServiceRepository) Create(service *models.Service) error {
	return r.db.Create(service).Error
}

// Save persists changes to an existing service.
func (r *ServiceRepository) Save(service *models.Service) error {
	return r.db.Save(service).Error
}

// Delete removes a service by primary key (hard delete).
// Returns the number of rows removed.
func (r *ServiceRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Service{}, id)
	return res.RowsAffected, res.Error
}
