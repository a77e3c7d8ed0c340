package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/karthik/printdesk/docs" // generated swagger docs
	appControllers "github.com/karthik/printdesk/internal/app/controllers"
	appMigrations "github.com/karthik/printdesk/internal/app/migrations"
	appRepos "github.com/karthik/printdesk/internal/app/repositories"
	appRoutes "github.com/karthik/printdesk/internal/app/routes"
	appServices "github.com/karthik/printdesk/internal/app/services"
	"github.com/karthik/printdesk/internal/config"
	"github.com/karthik/printdesk/internal/db"
	appMiddleware "github.com/karthik/printdesk/internal/middleware"
	pkgAuth "github.com/karthik/printdesk/internal/pkg/auth"
	"github.com/karthik/printdesk/internal/pkg/filestorage"
	"github.com/karthik/printdesk/internal/pkg/helpers"
	"github.com/karthik/printdesk/internal/pkg/logger"
	"github.com/karthik/printdesk/internal/pkg/payment"
	"github.com/karthik/printdesk/internal/pkg/printer"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	OrderService      appServices.OrderService
	StatsService      appServices.StatsService
	PrintService      appServices.PrintService
	StudentService    appServices.StudentService
	PaymentService    appServices.PaymentService
	AuthController    *appControllers.AuthController
	OrderController   *appControllers.OrderController
	StatsController   *appControllers.StatsController
	StudentController *appControllers.StudentController
	PaymentController *appControllers.PaymentController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// baseURL must match the static file serving path on the server
	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	spooler := printer.NewCommandSpooler(cfg.Printer.Command, cfg.Printer.Name)

	// The payment gateway is optional: without credentials the service
	// still starts and online checkout reports the gateway unavailable.
	var gateway payment.Gateway
	rzp, err := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	switch {
	case err == nil:
		gateway = rzp
	case errors.Is(err, payment.ErrGatewayNotConfigured):
		lgr.Warn().Msg("Razorpay credentials not set, online checkout disabled")
	default:
		return nil, fmt.Errorf("failed to initialize payment gateway: %w", err)
	}

	deps.OrderService = appServices.NewOrderService(deps.Repos.OrderRepository, deps.FileStorage, lgr)
	deps.StatsService = appServices.NewStatsService(deps.Repos.OrderRepository)
	deps.PrintService = appServices.NewPrintService(deps.Repos.OrderRepository, deps.FileStorage, spooler, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.PaymentService = appServices.NewPaymentService(gateway, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.StudentService, deps.JWTService, cfg.Admin.Username, cfg.Admin.Password)
	deps.OrderController = appControllers.NewOrderController(deps.OrderService, deps.PrintService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.OrderController,
		deps.StatsController,
		deps.StudentController,
		deps.PaymentController,
		deps.AuthMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
