package handler

import (
	"fmt"
	"net/http"

	"taller/internal/application/service"
	appErrors "taller/internal/pkg/errors"
	"taller/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ImportHandler handles the CSV import endpoint.
type ImportHandler struct {
	importSvc service.ImportService
	log       logger.Logger
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importSvc service.ImportService, log logger.Logger) *ImportHandler {
	return &ImportHandler{importSvc: importSvc, log: log}
}

// ImportCSV handles POST /api/import/csv (multipart field "file").
func (h *ImportHandler) ImportCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fmt.Errorf("%w: CSV file is required (field \"file\")", appErrors.ErrInvalidInput))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, fmt.Errorf("%w: %v", appErrors.ErrImport, err))
	}
	defer file.Close()

	result, err := h.importSvc.ImportCSV(c.Request().Context(), file)
	if err != nil {
		h.log.Error("CSV import failed", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
