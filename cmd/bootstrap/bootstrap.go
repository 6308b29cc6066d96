package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextcare-api/config"
	deliveryHttp "nextcare-api/internal/delivery/http"
	"nextcare-api/internal/delivery/http/handler"
	"nextcare-api/internal/delivery/http/middleware"
	"nextcare-api/internal/infrastructure/cache"
	"nextcare-api/internal/infrastructure/database"
	"nextcare-api/internal/repository"
	"nextcare-api/internal/service"
	"nextcare-api/internal/usecase"
	"nextcare-api/pkg/jwt"
	"nextcare-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New loads configuration and opens the database and optional Redis connections.
// The HTTP server is only built by Serve.
func New() (*App, error) {
	app := &App{}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log = setupLogger(cfg.App.LogLevel)
	app.Log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	if redisClient != nil {
		app.Log.Info("Redis connected successfully")
	}

	return app, nil
}

// setupLogger configures the standard logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// NewHandler wires repositories, usecases, handlers and middleware into the HTTP router.
func NewHandler(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log *logrus.Logger) http.Handler {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	carePlanRepo := repository.NewCarePlanRepository()
	doctorRepo := repository.NewDoctorRepository()
	resourceRepo := repository.NewHealthResourceRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	catalogCache := service.NewCatalogCache(redisClient, log, cfg.Redis.CacheTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditService, jwtService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, userRepo, auditService)
	carePlanUsecase := usecase.NewCarePlanUsecase(db, log, carePlanRepo, userRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, auditService, catalogCache)
	resourceUsecase := usecase.NewHealthResourceUsecase(db, log, resourceRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	router := deliveryHttp.NewRouter(deliveryHttp.RouterDeps{
		Log:                   log,
		AuthHandler:           handler.NewAuthHandler(authUsecase, customValidator),
		UserHandler:           handler.NewUserHandler(userUsecase, customValidator),
		AppointmentHandler:    handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		CarePlanHandler:       handler.NewCarePlanHandler(carePlanUsecase, customValidator),
		DoctorHandler:         handler.NewDoctorHandler(doctorUsecase, customValidator),
		HealthResourceHandler: handler.NewHealthResourceHandler(resourceUsecase, customValidator),
		AuditLogHandler:       handler.NewAuditLogHandler(auditLogUsecase),
		AuthMiddleware:        middleware.NewAuthMiddleware(jwtService),
		CORSMiddleware:        middleware.NewCORSMiddleware(cfg.App.AllowedOrigins),
		LoginLimiter:          middleware.NewRateLimiter(cfg.RateLimit),
	})

	return router.Setup()
}

// SeedUsecase exposes the operator bootstrap commands over the app's connections.
func (app *App) SeedUsecase() usecase.SeedUsecase {
	return usecase.NewSeedUsecase(
		app.DB,
		app.Log,
		repository.NewUserRepository(),
		repository.NewDoctorRepository(),
		repository.NewHealthResourceRepository(),
		service.NewCatalogCache(app.RedisClient, app.Log, app.Config.Redis.CacheTTL),
	)
}

// Migrate creates or updates every table.
func (app *App) Migrate() error {
	return database.AutoMigrate(app.DB)
}

// Serve starts the HTTP server and blocks until shutdown
func (app *App) Serve() {
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", app.Config.App.Port),
		Handler:           NewHandler(app.Config, app.DB, app.RedisClient, app.Log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
