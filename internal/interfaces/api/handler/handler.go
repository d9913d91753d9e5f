package handler

import (
	"errors"
	"net/http"

	appErrors "taller/internal/pkg/errors"

	"github.com/labstack/echo/v4"
)

// respondError maps application sentinel errors to HTTP status codes and
// renders the standard error body.
func respondError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appErrors.ErrVehicleNotFound),
		errors.Is(err, appErrors.ErrClientNotFound),
		errors.Is(err, appErrors.ErrCategoryNotFound):
		status = http.StatusNotFound
	case errors.Is(err, appErrors.ErrInvalidInput),
		errors.Is(err, appErrors.ErrImport):
		status = http.StatusBadRequest
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}
