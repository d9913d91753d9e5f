package sqlite

import (
	"context"
	"errors"
	"fmt"

	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	appErrors "taller/internal/pkg/errors"

	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uint) (*entity.Client, error) {
	var client entity.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %d: %w", id, appErrors.ErrClientNotFound)
		}
		return nil, fmt.Errorf("failed to find client by id %d: %w", id, err)
	}
	return &client, nil
}

// FindByPhone retrieves a client by its phone number.
func (r *clientRepository) FindByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	var client entity.Client
	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client with phone %s: %w", phone, appErrors.ErrClientNotFound)
		}
		return nil, fmt.Errorf("failed to find client by phone %s: %w", phone, err)
	}
	return &client, nil
}

// FindAll retrieves all clients ordered by name.
func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	var clients []*entity.Client
	if err := r.db.WithContext(ctx).Order("name asc").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to find all clients: %w", err)
	}
	return clients, nil
}

// Create creates a new client.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client %s: %w", client.Name, err)
	}
	return nil
}

// UpdateNotes sets the notes field for an existing client.
func (r *clientRepository) UpdateNotes(ctx context.Context, id uint, notes string) error {
	result := r.db.WithContext(ctx).
		Model(&entity.Client{}).
		Where("id = ?", id).
		Update("notes", notes)
	if result.Error != nil {
		return fmt.Errorf("failed to update notes for client %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client %d: %w", id, appErrors.ErrClientNotFound)
	}
	return nil
}
