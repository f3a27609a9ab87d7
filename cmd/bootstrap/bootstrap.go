package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medcare-booking/config"
	deliveryHttp "medcare-booking/internal/delivery/http"
	"medcare-booking/internal/delivery/http/handler"
	"medcare-booking/internal/delivery/http/middleware"
	"medcare-booking/internal/infrastructure/metrics"
	"medcare-booking/internal/infrastructure/storage"
	"medcare-booking/internal/repository"
	"medcare-booking/internal/service"
	"medcare-booking/internal/usecase"
	"medcare-booking/pkg/jwt"
	"medcare-booking/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Store  storage.KVStore
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	// Initialize storage
	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}
	app.Store = store
	log.Infof("Storage %s opened successfully", cfg.Storage.Driver)

	// Initialize all layers
	httpHandler, err := initializeHandler(ctx, cfg, log, store, metrics.New(), time.Now)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Unknown log level %q, using info", level)
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return logrus.StandardLogger()
}

// initializeHandler wires repositories, usecases and handlers over store and
// seeds sample data when enabled
func initializeHandler(ctx context.Context, cfg *config.Config, log *logrus.Logger, store storage.KVStore, m *metrics.Metrics, now func() time.Time) (http.Handler, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	entityStore := repository.NewEntityStore(store, cfg.Storage.KeyPrefix, log, m)
	userRepo := repository.NewUserRepository(entityStore)
	appointmentRepo := repository.NewAppointmentRepository(entityStore)
	recordRepo := repository.NewMedicalRecordRepository(entityStore)
	availabilityRepo := repository.NewAvailabilityRepository(entityStore)
	sessionRepo := repository.NewSessionRepository(entityStore)
	auditLogRepo := repository.NewAuditLogRepository(entityStore)
	doctorRepo := repository.NewDoctorRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo, now)

	if cfg.App.SeedSample {
		seedService := service.NewSeedService(log, userRepo, appointmentRepo, recordRepo)
		if err := seedService.SeedOnStartup(ctx); err != nil {
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	// Initialize usecases
	policy := usecase.ParseTransitionPolicy(cfg.Appointment.TransitionPolicy)
	log.Infof("Appointment transition policy: %s", policy)

	directory := usecase.NewAppointmentDirectory(doctorRepo, userRepo)
	authUsecase := usecase.NewAuthUsecase(log, userRepo, doctorRepo, sessionRepo, auditService, jwtService, now)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, availabilityRepo, auditService, now)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, auditService, m, policy, now)
	dashboardUsecase := usecase.NewDashboardUsecase(log, appointmentUsecase, directory, now)
	recordUsecase := usecase.NewMedicalRecordUsecase(log, recordRepo, doctorRepo, userRepo, auditService, now)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, dashboardUsecase, directory, customValidator)
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	recordHandler := handler.NewMedicalRecordHandler(recordUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		appointmentHandler,
		dashboardHandler,
		recordHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		m.Handler(),
	)
	return router.Setup(), nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes the key-value store
func (app *App) Close() {
	if app.Store != nil {
		if err := app.Store.Close(); err != nil {
			logrus.Errorf("Failed to close storage: %v", err)
		}
	}
}
