package repository

import (
	"context"

	"taller/internal/domain/entity"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	// FindByName retrieves a category by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	// FindAll retrieves all categories ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)
	// Create creates a new category.
	Create(ctx context.Context, category *entity.Category) error
	// Upsert creates a category if no category with the same name exists
	// (used by the seed; existing rows are left untouched).
	Upsert(ctx context.Context, category *entity.Category) error
}
