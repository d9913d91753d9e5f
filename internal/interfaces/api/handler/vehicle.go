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

// VehicleHandler handles vehicle and service-history endpoints.
type VehicleHandler struct {
	vehicleSvc service.VehicleService
	log        logger.Logger
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicleSvc service.VehicleService, log logger.Logger) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, log: log}
}

// List handles GET /api/vehicles.
func (h *VehicleHandler) List(c echo.Context) error {
	vehicles, err := h.vehicleSvc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vehicles)
}

// Get handles GET /api/vehicles/:plate.
func (h *VehicleHandler) Get(c echo.Context) error {
	vehicle, err := h.vehicleSvc.Get(c.Request().Context(), c.Param("plate"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, vehicle)
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(c echo.Context) error {
	var req dto.CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, fmt.Errorf("%w: %v", appErrors.ErrInvalidInput, err))
	}
	vehicle, err := h.vehicleSvc.Register(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, vehicle)
}

// ListServices handles GET /api/vehicles/:plate/services.
func (h *VehicleHandler) ListServices(c echo.Context) error {
	services, err := h.vehicleSvc.ListServices(c.Request().Context(), c.Param("plate"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/vehicles/:plate/services.
func (h *VehicleHandler) CreateService(c echo.Context) error {
	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, fmt.Errorf("%w: %v", appErrors.ErrInvalidInput, err))
	}
	svc, err := h.vehicleSvc.RecordService(c.Request().Context(), c.Param("plate"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, svc)
}
