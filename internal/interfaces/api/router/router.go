package router

import (
	"fmt"
	"net/http"

	"taller/internal/interfaces/api/handler"
	"taller/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	VehicleHandler   *handler.VehicleHandler
	ClientHandler    *handler.ClientHandler
	CategoryHandler  *handler.CategoryHandler
	SchedulerHandler *handler.SchedulerHandler
	ImportHandler    *handler.ImportHandler
	Logger           logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		MaxAge:       300,
	}))

	// Routes
	api := e.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	api.GET("/categories", cfg.CategoryHandler.List)
	api.POST("/categories", cfg.CategoryHandler.Create)
	api.POST("/categories/seed", cfg.CategoryHandler.Seed)

	api.GET("/clients", cfg.ClientHandler.List)
	api.GET("/clients/:id", cfg.ClientHandler.Get)
	api.POST("/clients", cfg.ClientHandler.Create)

	api.GET("/vehicles", cfg.VehicleHandler.List)
	api.GET("/vehicles/:plate", cfg.VehicleHandler.Get)
	api.POST("/vehicles", cfg.VehicleHandler.Create)
	api.GET("/vehicles/:plate/services", cfg.VehicleHandler.ListServices)
	api.POST("/vehicles/:plate/services", cfg.VehicleHandler.CreateService)

	api.POST("/import/csv", cfg.ImportHandler.ImportCSV)
	api.POST("/scheduler/run", cfg.SchedulerHandler.Run)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
