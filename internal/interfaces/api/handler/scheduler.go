package handler

import (
	"net/http"

	"taller/internal/application/dto"
	"taller/internal/application/service"
	"taller/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SchedulerHandler exposes the manual due-reminder scan trigger.
type SchedulerHandler struct {
	scheduleSvc service.ScheduleService
	log         logger.Logger
}

// NewSchedulerHandler creates a new SchedulerHandler.
func NewSchedulerHandler(scheduleSvc service.ScheduleService, log logger.Logger) *SchedulerHandler {
	return &SchedulerHandler{scheduleSvc: scheduleSvc, log: log}
}

// Run handles POST /api/scheduler/run. With ?simulate=true the scan reports
// what it would send without contacting the transport.
func (h *SchedulerHandler) Run(c echo.Context) error {
	opts := dto.ScanOptions{Simulate: c.QueryParam("simulate") == "true"}
	result, err := h.scheduleSvc.RunScan(c.Request().Context(), opts)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
