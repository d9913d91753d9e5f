package repository

import (
	"context"
	"time"

	"taller/internal/domain/entity"
)

// ServiceRepository defines the interface for service-history operations.
// Services are append-only: the scheduler reads them, never mutates them.
type ServiceRepository interface {
	// FindByVehicle retrieves all services for a plate, most recent first.
	FindByVehicle(ctx context.Context, plate string) ([]*entity.Service, error)
	// FindDatesByVehicle retrieves only the service dates for a plate, most
	// recent first (the input of the interval classifier).
	FindDatesByVehicle(ctx context.Context, plate string) ([]time.Time, error)
	// FindByClient retrieves all services recorded for a client, most recent
	// first.
	FindByClient(ctx context.Context, clientID uint) ([]*entity.Service, error)
	// Create records a new service event. Returns the ID of the created row.
	Create(ctx context.Context, service *entity.Service) (uint, error)
}
