package repository

import (
	"context"
	"time"

	"taller/internal/domain/entity"
)

// VehicleRepository defines the interface for vehicle data operations.
type VehicleRepository interface {
	// FindByPlate retrieves a vehicle by its normalized plate, with client and
	// category preloaded.
	FindByPlate(ctx context.Context, plate string) (*entity.Vehicle, error)
	// FindAll retrieves all vehicles ordered by plate, with client and
	// category preloaded (used by listings and the due-reminder scan).
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	// FindByClient retrieves all vehicles owned by a client, ordered by
	// plate, with category preloaded.
	FindByClient(ctx context.Context, clientID uint) ([]*entity.Vehicle, error)
	// Create registers a new vehicle.
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	// UpdateSchedule persists the derived schedule for a plate as a single
	// atomic update, so concurrent recomputations cannot interleave partial
	// writes.
	UpdateSchedule(ctx context.Context, plate string, schedule entity.VehicleSchedule) error
	// UpdateNextReminder advances only the next reminder date for a plate
	// (used after a confirmed notification).
	UpdateNextReminder(ctx context.Context, plate string, next time.Time) error
}
