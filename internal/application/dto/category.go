package dto

import "taller/internal/domain/entity"

// CategoryResponse is the DTO for sending category information to the caller.
type CategoryResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	EveryDays   int     `json:"every_days"`
	Description *string `json:"description,omitempty"`
}

// ToCategoryResponse converts an entity.Category to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		EveryDays:   c.EveryDays,
		Description: c.Description,
	}
}

// ToCategoryResponseList converts a slice of entity.Category to DTOs.
func ToCategoryResponseList(categories []*entity.Category) []CategoryResponse {
	list := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		list[i] = ToCategoryResponse(c)
	}
	return list
}

// CreateCategoryRequest is the DTO for creating a new category.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	EveryDays   int     `json:"every_days"`
	Description *string `json:"description"`
}
