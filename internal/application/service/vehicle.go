package service

import (
	"context"

	"taller/internal/application/dto"
)

// VehicleService defines the interface for vehicle-related business logic,
// including the vehicle's service history.
type VehicleService interface {
	// Register registers a new vehicle under its normalized plate.
	Register(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	// Get retrieves a vehicle with its full service history.
	Get(ctx context.Context, plate string) (*dto.VehicleDetailResponse, error)
	// List retrieves all vehicles.
	List(ctx context.Context) ([]dto.VehicleResponse, error)
	// RecordService records a maintenance event for a vehicle and triggers
	// the reminder recomputation.
	RecordService(ctx context.Context, plate string, req dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	// ListServices retrieves the service history of a vehicle, most recent
	// first.
	ListServices(ctx context.Context, plate string) ([]dto.ServiceResponse, error)
}
