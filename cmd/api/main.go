package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"taller/internal/application/service"
	"taller/internal/config"
	"taller/internal/domain/schedule"
	"taller/internal/infrastructure/database/sqlite"
	"taller/internal/infrastructure/scheduler"
	"taller/internal/infrastructure/whatsapp"
	"taller/internal/interfaces/api/handler"
	"taller/internal/interfaces/api/router"
	appLogger "taller/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, schedulerSvc service.SchedulerService, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the cron scheduler first so no scan starts mid-shutdown.
	log.Println("Stopping scheduler...")
	schedulerSvc.Stop()
	log.Println("Scheduler stopped.")

	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
		appLog.Warn("PORT environment variable not set, defaulting to 8080")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		appLog.Error("Invalid PORT environment variable", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		appLog.Error("Invalid configuration", err)
		os.Exit(1)
	}

	// --- Infrastructure ---
	db := sqlite.NewDB()
	clientRepo := sqlite.NewClientRepository(db)
	categoryRepo := sqlite.NewCategoryRepository(db)
	vehicleRepo := sqlite.NewVehicleRepository(db)
	serviceRepo := sqlite.NewServiceRepository(db)
	appLog.Info("Database and repositories initialized.")

	notifier := whatsapp.NewClient(appLog)
	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	classifier := schedule.NewClassifier(cfg.Tiers)
	calendar := schedule.NewCalendar(cfg.Holidays)
	scheduleSvc := service.NewScheduleService(vehicleRepo, serviceRepo, categoryRepo, classifier, calendar, notifier, appLog)
	vehicleSvc := service.NewVehicleService(vehicleRepo, clientRepo, serviceRepo, scheduleSvc, appLog)
	clientSvc := service.NewClientService(clientRepo, vehicleRepo, serviceRepo, appLog)
	categorySvc := service.NewCategoryService(categoryRepo, cfg.Tiers, appLog)
	importSvc := service.NewImportService(clientRepo, vehicleRepo, serviceRepo, scheduleSvc, appLog)
	schedulerSvc := service.NewSchedulerService(cronScheduler, scheduleSvc, appLog)
	appLog.Info("Application services initialized.")

	// --- Seed Categories ---
	if err := categorySvc.Seed(context.Background()); err != nil {
		// Log the error but continue starting the server
		appLog.Error("Failed to seed categories on startup", err)
	}

	// --- Periodic Scan ---
	if err := schedulerSvc.StartDailyScan(cfg.CronExpr); err != nil {
		appLog.Error("Failed to schedule the daily scan", err)
		os.Exit(1)
	}

	// --- API Handlers ---
	vehicleHandler := handler.NewVehicleHandler(vehicleSvc, appLog)
	clientHandler := handler.NewClientHandler(clientSvc, appLog)
	categoryHandler := handler.NewCategoryHandler(categorySvc, appLog)
	schedulerHandler := handler.NewSchedulerHandler(scheduleSvc, appLog)
	importHandler := handler.NewImportHandler(importSvc, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		VehicleHandler:   vehicleHandler,
		ClientHandler:    clientHandler,
		CategoryHandler:  categoryHandler,
		SchedulerHandler: schedulerHandler,
		ImportHandler:    importHandler,
		Logger:           appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}
