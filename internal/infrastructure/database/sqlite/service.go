package sqlite

import (
	"context"
	"fmt"
	"time"

	"taller/internal/domain/entity"
	"taller/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new instance of ServiceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// FindByVehicle retrieves all services for a plate, most recent first.
func (r *serviceRepository) FindByVehicle(ctx context.Context, plate string) ([]*entity.Service, error) {
	var services []*entity.Service
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", plate).
		Order("date desc").
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find services for vehicle %s: %w", plate, err)
	}
	return services, nil
}

// FindDatesByVehicle retrieves only the service dates for a plate, most
// recent first.
func (r *serviceRepository) FindDatesByVehicle(ctx context.Context, plate string) ([]time.Time, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&entity.Service{}).
		Where("vehicle_id = ?", plate).
		Order("date desc").
		Pluck("date", &dates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find service dates for vehicle %s: %w", plate, err)
	}
	return dates, nil
}

// FindByClient retrieves all services recorded for a client, most recent first.
func (r *serviceRepository) FindByClient(ctx context.Context, clientID uint) ([]*entity.Service, error) {
	var services []*entity.Service
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date desc").
		Find(&services).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find services for client %d: %w", clientID, err)
	}
	return services, nil
}

// Create records a new service event. Returns the ID of the created row.
func (r *serviceRepository) Create(ctx context.Context, service *entity.Service) (uint, error) {
	if err := r.db.WithContext(ctx).Create(service).Error; err != nil {
		return 0, fmt.Errorf("failed to create service for vehicle %s: %w", service.VehicleID, err)
	}
	return service.ID, nil
}
