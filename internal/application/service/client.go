package service

import (
	"context"

	"taller/internal/application/dto"
)

// ClientService defines the interface for client-related business logic.
type ClientService interface {
	// Create creates a new client.
	Create(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	// Get retrieves a client with its vehicles and service history.
	Get(ctx context.Context, id uint) (*dto.ClientDetailResponse, error)
	// List retrieves all clients ordered by name.
	List(ctx context.Context) ([]dto.ClientResponse, error)
}
