package service

import (
	"context"
	"fmt"

	"taller/internal/application/dto"
	"taller/internal/domain/entity"
	"taller/internal/domain/repository"
	"taller/internal/domain/schedule"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"
)

// Descriptions for the stock categories; custom tiers seed without one.
var categoryDescriptions = map[string]string{
	"ALTA":  "Uso intenso",
	"MEDIA": "Uso normal",
	"BAJA":  "Uso esporádico",
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	tiers        schedule.TierTable
	log          logger.Logger
}

// NewCategoryService creates a new instance of CategoryService implementation.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	tiers schedule.TierTable,
	log logger.Logger,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		tiers:        tiers,
		log:          log,
	}
}

// List retrieves all categories ordered by name.
func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return dto.ToCategoryResponseList(categories), nil
}

// Create creates a new category.
func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if req.Name == "" || req.EveryDays <= 0 {
		return nil, fmt.Errorf("%w: name and a positive every_days are required", appErrors.ErrInvalidInput)
	}

	category := &entity.Category{
		Name:        req.Name,
		EveryDays:   req.EveryDays,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	s.log.Info(fmt.Sprintf("Created category %s (every %d days)", category.Name, category.EveryDays))

	resp := dto.ToCategoryResponse(category)
	return &resp, nil
}

// Seed ensures a category exists for every configured tier.
func (s *categoryService) Seed(ctx context.Context) error {
	for _, tier := range s.tiers {
		category := &entity.Category{
			Name:      tier.Name,
			EveryDays: tier.IntervalDays,
		}
		if desc, ok := categoryDescriptions[tier.Name]; ok {
			category.Description = &desc
		}
		if err := s.categoryRepo.Upsert(ctx, category); err != nil {
			return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
		}
	}
	s.log.Info(fmt.Sprintf("Seeded %d categories from tier table", len(s.tiers)))
	return nil
}
