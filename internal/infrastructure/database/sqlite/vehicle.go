package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	appErrors "taller/internal/pkg/errors"

	"gorm.io/gorm"
)

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new instance of VehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

// FindByPlate retrieves a vehicle by its normalized plate, with client and
// category preloaded.
func (r *vehicleRepository) FindByPlate(ctx context.Context, plate string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Category").
		Where("plate = ?", plate).
		First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %s: %w", plate, appErrors.ErrVehicleNotFound)
		}
		return nil, fmt.Errorf("failed to find vehicle by plate %s: %w", plate, err)
	}
	return &vehicle, nil
}

// FindAll retrieves all vehicles ordered by plate, with client and category
// preloaded.
func (r *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Category").
		Order("plate asc").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find all vehicles: %w", err)
	}
	return vehicles, nil
}

// FindByClient retrieves all vehicles owned by a client, ordered by plate.
func (r *vehicleRepository) FindByClient(ctx context.Context, clientID uint) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("client_id = ?", clientID).
		Order("plate asc").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicles for client %d: %w", clientID, err)
	}
	return vehicles, nil
}

// Create registers a new vehicle.
func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return fmt.Errorf("failed to create vehicle %s: %w", vehicle.Plate, err)
	}
	return nil
}

// UpdateSchedule persists the derived schedule for a plate. A single Updates
// call keeps the write atomic; nil fields clear their columns explicitly.
func (r *vehicleRepository) UpdateSchedule(ctx context.Context, plate string, schedule entity.VehicleSchedule) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Vehicle{}).
		Where("plate = ?", plate).
		Updates(map[string]interface{}{
			"category_id":   schedule.CategoryID,
			"interval_days": schedule.IntervalDays,
			"last_service":  schedule.LastService,
			"next_reminder": schedule.NextReminder,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update schedule for vehicle %s: %w", plate, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vehicle %s: %w", plate, appErrors.ErrVehicleNotFound)
	}
	return nil
}

// UpdateNextReminder advances only the next reminder date for a plate.
func (r *vehicleRepository) UpdateNextReminder(ctx context.Context, plate string, next time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Vehicle{}).
		Where("plate = ?", plate).
		Update("next_reminder", next)
	if result.Error != nil {
		return fmt.Errorf("failed to advance reminder for vehicle %s: %w", plate, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vehicle %s: %w", plate, appErrors.ErrVehicleNotFound)
	}
	return nil
}
