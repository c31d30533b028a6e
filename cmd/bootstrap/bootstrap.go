package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vet-clinic-booking/config"
	deliveryHttp "vet-clinic-booking/internal/delivery/http"
	"vet-clinic-booking/internal/delivery/http/handler"
	"vet-clinic-booking/internal/delivery/http/middleware"
	"vet-clinic-booking/internal/infrastructure/cache"
	"vet-clinic-booking/internal/infrastructure/database"
	"vet-clinic-booking/internal/repository"
	"vet-clinic-booking/internal/service"
	"vet-clinic-booking/internal/usecase"
	"vet-clinic-booking/pkg/clock"
	"vet-clinic-booking/pkg/jwt"
	"vet-clinic-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	petRepo := repository.NewPetRepository()
	vetRepo := repository.NewVeterinarianProfileRepository()
	serviceRepo := repository.NewVetServiceRepository()
	bookingRepo := repository.NewBookingRepository()
	scheduleRepo := repository.NewScheduleEntryRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	slotReserver := service.NewSlotReservationService(redisClient, log, cfg.Booking.SlotHoldTTL)

	// Confirmation emails go through SendGrid when a key is configured,
	// otherwise they land in the log.
	var notifier service.Notifier
	if cfg.Mail.SendGridAPIKey != "" {
		notifier = service.NewSendGridNotifier(cfg.Mail, log)
	} else {
		notifier = service.NewLogNotifier(log)
	}

	clk := clock.Real{}

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, vetRepo, jwtService, redisClient, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, cfg.Booking, clk, userRepo, petRepo, vetRepo, serviceRepo, bookingRepo, scheduleRepo, slotReserver, notifier, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, cfg.Booking, clk, vetRepo, scheduleRepo)
	veterinarianUsecase := usecase.NewVeterinarianUsecase(db, log, vetRepo, auditService)
	petUsecase := usecase.NewPetUsecase(db, log, petRepo, userRepo, auditService)
	vetServiceUsecase := usecase.NewVetServiceUsecase(db, log, serviceRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	veterinarianHandler := handler.NewVeterinarianHandler(veterinarianUsecase, customValidator)
	petHandler := handler.NewPetHandler(petUsecase, customValidator)
	vetServiceHandler := handler.NewVetServiceHandler(vetServiceUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		bookingHandler,
		availabilityHandler,
		veterinarianHandler,
		petHandler,
		vetServiceHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
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

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
