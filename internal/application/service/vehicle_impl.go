package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taller/internal/application/dto"
	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	clientRepo  repository.ClientRepository
	serviceRepo repository.ServiceRepository
	scheduleSvc ScheduleService
	log         logger.Logger
}

// NewVehicleService creates a new instance of VehicleService implementation.
func NewVehicleService(
	vehicleRepo repository.VehicleRepository,
	clientRepo repository.ClientRepository,
	serviceRepo repository.ServiceRepository,
	scheduleSvc ScheduleService,
	log logger.Logger,
) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		scheduleSvc: scheduleSvc,
		log:         log,
	}
}

// Register registers a new vehicle under its normalized plate.
func (s *vehicleService) Register(ctx context.Context, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	plate := entity.NormalizePlate(req.Plate)
	if plate == "" {
		return nil, fmt.Errorf("%w: plate is required", appErrors.ErrInvalidInput)
	}

	if req.ClientID != nil {
		if _, err := s.clientRepo.FindByID(ctx, *req.ClientID); err != nil {
			if errors.Is(err, appErrors.ErrClientNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
	}

	vehicle := &entity.Vehicle{
		Plate:      plate,
		ClientID:   req.ClientID,
		Brand:      req.Brand,
		Model:      req.Model,
		Year:       req.Year,
		CategoryID: req.CategoryID,
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Registered vehicle %s", plate))

	created, err := s.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	resp := dto.ToVehicleResponse(created)
	return &resp, nil
}

// Get retrieves a vehicle with its full service history.
func (s *vehicleService) Get(ctx context.Context, plate string) (*dto.VehicleDetailResponse, error) {
	plate = entity.NormalizePlate(plate)
	vehicle, err := s.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, appErrors.ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	services, err := s.serviceRepo.FindByVehicle(ctx, plate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	return &dto.VehicleDetailResponse{
		VehicleResponse: dto.ToVehicleResponse(vehicle),
		Services:        dto.ToServiceResponseList(services),
	}, nil
}

// List retrieves all vehicles.
func (s *vehicleService) List(ctx context.Context) ([]dto.VehicleResponse, error) {
	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToVehicleResponseList(vehicles), nil
}

// RecordService records a maintenance event and recomputes the schedule.
func (s *vehicleService) RecordService(ctx context.Context, plate string, req dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	plate = entity.NormalizePlate(plate)
	vehicle, err := s.vehicleRepo.FindByPlate(ctx, plate)
	if err != nil {
		if errors.Is(err, appErrors.ErrVehicleNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	date := time.Now()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	svc := &entity.Service{
		VehicleID: plate,
		ClientID:  vehicle.ClientID,
		Date:      date,
		Odometer:  req.Odometer,
		Summary:   req.Summary,
	}
	if _, err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Recorded service for vehicle %s on %s", plate, date.Format("2006-01-02")))

	if _, err := s.scheduleSvc.Recompute(ctx, plate); err != nil {
		return nil, err
	}

	resp := dto.ToServiceResponse(svc)
	return &resp, nil
}

// ListServices retrieves the service history of a vehicle.
func (s *vehicleService) ListServices(ctx context.Context, plate string) ([]dto.ServiceResponse, error) {
	services, err := s.serviceRepo.FindByVehicle(ctx, entity.NormalizePlate(plate))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToServiceResponseList(services), nil
}
