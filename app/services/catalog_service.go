package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/repositories"
	"github.com/trixtech/trixtech/pkg/cache"
)

const (
	catalogCacheKey = "catalog:services"
	catalogCacheTTL = 5 * time.Minute
)

// ServiceInput carries the fields an admin may set on a catalog entry.
// Pointer fields distinguish "absent" from "zero" so updates can merge
// only what was provided.
type ServiceInput struct {
	Name         *string  `json:"name" validate:"nullable,min=1,max=255"`
	Description  *string  `json:"description"`
	Category     *string  `json:"category" validate:"nullable,max=100"`
	Price        *float64 `json:"price" validate:"nullable,gte=0"`
	Availability *bool    `json:"availability"`
}

// CatalogService manages the bookable service catalog.
// Listings are cached in redis and invalidated on every admin mutation.
type CatalogService struct {
	services *repositories.ServiceRepository
}

func NewCatalogService(services *repositories.ServiceRepository) *CatalogService {
	return &CatalogService{services: services}
}

// List returns all services. Public.
func (s *CatalogService) List() ([]models.Service, error) {
	var cached []models.Service
	if cache.Get(catalogCacheKey, &cached) {
		return cached, nil
	}

	services, err := s.services.All()
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}

	_ = cache.Set(catalogCacheKey, services, catalogCacheTTL)
	return services, nil
}

// Get returns one service by id. Public. Returns ErrNotFound if absent.
func (s *CatalogService) Get(id uint) (models.Service, error) {
	service, err := s.services.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Service{}, ErrNotFound
		}
		return models.Service{}, fmt.Errorf("catalog: get %d: %w", id, err)
	}
	return service, nil
}

// Create adds a catalog entry. Caller must already be authorized as admin.
func (s *CatalogService) Create(in ServiceInput) (models.Service, error) {
	if in.Name == nil || *in.Name == "" {
		return models.Service{}, fmt.Errorf("%w: name is required", ErrValidation)
	}

	service := models.Service{
		Name:         *in.Name,
		Availability: true,
	}
	applyServiceInput(&service, in)

	if err := s.services.Create(&service); err != nil {
		return models.Service{}, fmt.Errorf("catalog: create: %w", err)
	}

	_ = cache.Del(catalogCacheKey)
	return service, nil
}

// Update merges the provided fields into an existing service.
// Absent fields keep their stored value.
func (s *CatalogService) Update(id uint, in ServiceInput) (models.Service, error) {
	service, err := s.Get(id)
	if err != nil {
		return models.Service{}, err
	}

	applyServiceInput(&service, in)

	if err := s.services.Save(&service); err != nil {
		return models.Service{}, fmt.Errorf("catalog: update %d: %w", id, err)
	}

	_ = cache.Del(catalogCacheKey)
	return service, nil
}

// Delete removes a service unconditionally. Bookings referencing it are
// left in place; the reference is weak.
func (s *CatalogService) Delete(id uint) error {
	rows, err := s.services.Delete(id)
	if err != nil {
		return fmt.Errorf("catalog: delete %d: %w", id, err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	_ = cache.Del(catalogCacheKey)
	return nil
}

func applyServiceInput(service *models.Service, in ServiceInput) {
	if in.Name != nil {
		service.Name = *in.Name
	}
	if in.Description != nil {
		service.Description = *in.Description
	}
	if in.Category != nil {
		service.Category = *in.Category
	}
	if in.Price != nil {
		service.Price = *in.Price
	}
	if in.Availability != nil {
		service.Availability = *in.Availability
	}
}
