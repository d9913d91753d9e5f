package sqlite

import (
	"context"
	"errors"
	"fmt"

	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	appErrors "taller/internal/pkg/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindByName retrieves a category by its unique name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %s: %w", name, appErrors.ErrCategoryNotFound)
		}
		return nil, fmt.Errorf("failed to find category by name %s: %w", name, err)
	}
	return &category, nil
}

// FindAll retrieves all categories ordered by name.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to find all categories: %w", err)
	}
	return categories, nil
}

// Create creates a new category.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category %s: %w", category.Name, err)
	}
	return nil
}

// Upsert creates a category unless one with the same name already exists.
func (r *categoryRepository) Upsert(ctx context.Context, category *entity.Category) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(category).Error
	if err != nil {
		return fmt.Errorf("failed to upsert category %s: %w", category.Name, err)
	}
	return nil
}
