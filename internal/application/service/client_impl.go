package service

import (
	"context"
	"errors"
	"fmt"

	"taller/internal/application/dto"
	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"
)

type clientService struct {
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
	serviceRepo repository.ServiceRepository
	log         logger.Logger
}

// NewClientService creates a new instance of ClientService implementation.
func NewClientService(
	clientRepo repository.ClientRepository,
	vehicleRepo repository.VehicleRepository,
	serviceRepo repository.ServiceRepository,
	log logger.Logger,
) ClientService {
	return &clientService{
		clientRepo:  clientRepo,
		vehicleRepo: vehicleRepo,
		serviceRepo: serviceRepo,
		log:         log,
	}
}

// Create creates a new client.
func (s *clientService) Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, fmt.Errorf("%w: name and phone are required", appErrors.ErrInvalidInput)
	}

	client := &entity.Client{
		Name:     req.Name,
		Phone:    req.Phone,
		Birthday: req.Birthday,
		Notes:    req.Notes,
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created client %s (%d)", client.Name, client.ID))

	resp := dto.ToClientResponse(client)
	return &resp, nil
}

// Get retrieves a client with its vehicles and service history.
func (s *clientService) Get(ctx context.Context, id uint) (*dto.ClientDetailResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, appErrors.ErrClientNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	vehicles, err := s.vehicleRepo.FindByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	services, err := s.serviceRepo.FindByClient(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	return &dto.ClientDetailResponse{
		ClientResponse: dto.ToClientResponse(client),
		Vehicles:       dto.ToVehicleResponseList(vehicles),
		Services:       dto.ToServiceResponseList(services),
	}, nil
}

// List retrieves all clients ordered by name.
func (s *clientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToClientResponseList(clients), nil
}
