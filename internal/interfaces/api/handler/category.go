package handler

import (
	"fmt"
	"net/http"

	"taller/internal/application/dto"
	"taller/internal/application/service"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categorySvc service.CategoryService
	log         logger.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categorySvc service.CategoryService, log logger.Logger) *CategoryHandler {
	return &CategoryHandler{categorySvc: categorySvc, log: log}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categorySvc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, fmt.Errorf("%w: %v", appErrors.ErrInvalidInput, err))
	}
	category, err := h.categorySvc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

// Seed handles POST /api/categories/seed.
func (h *CategoryHandler) Seed(c echo.Context) error {
	if err := h.categorySvc.Seed(c.Request().Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
