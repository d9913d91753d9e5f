package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"taller/internal/application/dto"
	"taller/internal/application/service"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	clientSvc service.ClientService
	log       logger.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientSvc service.ClientService, log logger.Logger) *ClientHandler {
	return &ClientHandler{clientSvc: clientSvc, log: log}
}

// List handles GET /api/clients.
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.clientSvc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /api/clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return respondError(c, fmt.Errorf("%w: invalid client id", appErrors.ErrInvalidInput))
	}
	client, err := h.clientSvc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /api/clients.
func (h *ClientHandler) Create(c echo.Context) error {
	var req dto.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, fmt.Errorf("%w: %v", appErrors.ErrInvalidInput, err))
	}
	client, err := h.clientSvc.Create(c.Request().Context(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, client)
}
