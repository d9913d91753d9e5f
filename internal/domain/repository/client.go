package repository

import (
	"context"

	"taller/internal/domain/entity"
)

// ClientRepository defines the interface for client data operations.
type ClientRepository interface {
	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Client, error)
	// FindByPhone retrieves a client by its phone number (used by the CSV
	// import to upsert clients).
	FindByPhone(ctx context.Context, phone string) (*entity.Client, error)
	// FindAll retrieves all clients ordered by name.
	FindAll(ctx context.Context) ([]*entity.Client, error)
	// Create creates a new client.
	Create(ctx context.Context, client *entity.Client) error
	// UpdateNotes sets the notes field for an existing client.
	UpdateNotes(ctx context.Context, id uint, notes string) error
}
