package service

import (
	"context"

	"taller/internal/application/dto"
)

// CategoryService defines the interface for category-related business logic.
type CategoryService interface {
	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	// Create creates a new category.
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	// Seed ensures a category exists for every configured tier, leaving
	// existing rows untouched.
	Seed(ctx context.Context) error
}
