package bootstrap

import (
	"context"
	"fmt"
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

	_ "github.com/GHAITHBT/Projet-Master-2025/docs" // generated swagger docs
	appControllers "github.com/GHAITHBT/Projet-Master-2025/internal/app/controllers"
	appMigrations "github.com/GHAITHBT/Projet-Master-2025/internal/app/migrations"
	appRepos "github.com/GHAITHBT/Projet-Master-2025/internal/app/repositories"
	appRoutes "github.com/GHAITHBT/Projet-Master-2025/internal/app/routes"
	appServices "github.com/GHAITHBT/Projet-Master-2025/internal/app/services"
	"github.com/GHAITHBT/Projet-Master-2025/internal/config"
	"github.com/GHAITHBT/Projet-Master-2025/internal/db"
	appMiddleware "github.com/GHAITHBT/Projet-Master-2025/internal/middleware"
	pkgAuth "github.com/GHAITHBT/Projet-Master-2025/internal/pkg/auth"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/email"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/filestorage"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/helpers"
	"github.com/GHAITHBT/Projet-Master-2025/internal/pkg/logger"
	"github.com/GHAITHBT/Projet-Master-2025/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos *appRepos.Repositories

	AuthService       *appServices.AuthService
	StudentService    *appServices.StudentService
	AdmissionService  *appServices.AdmissionService
	MasterService     *appServices.MasterService
	UniversityService *appServices.UniversityService
	FeedbackService   *appServices.FeedbackService

	AuthController        *appControllers.AuthController
	StudentController     *appControllers.StudentController
	MasterController      *appControllers.MasterController
	ApplicationController *appControllers.ApplicationController
	UniversityController  *appControllers.UniversityController
	FeedbackController    *appControllers.FeedbackController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Notifier       *email.AsyncNotifier
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations
// and seeds the default super-admin account.
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		FromName:   cfg.SMTP.FromName,
		FromEmail:  cfg.SMTP.FromEmail,
		AdminEmail: cfg.SMTP.AdminEmail,
		UseTLS:     cfg.SMTP.UseTLS,
	}, lgr)
	deps.Notifier = email.NewAsyncNotifier(sender, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.FileStorage)
	deps.AdmissionService = appServices.NewAdmissionService(
		deps.Repos.ApplicationRepository,
		deps.Repos.MasterRepository,
		deps.Repos.StudentRepository,
		deps.Notifier,
	)
	deps.MasterService = appServices.NewMasterService(
		deps.Repos.MasterRepository,
		deps.Repos.UserRepository,
		deps.Repos.ApplicationRepository,
	)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UserRepository, deps.Notifier)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Notifier, cfg.SMTP.AdminEmail)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.AdmissionService)
	deps.MasterController = appControllers.NewMasterController(deps.MasterService)
	deps.ApplicationController = appControllers.NewApplicationController(deps.AdmissionService, deps.StudentService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService, deps.MasterService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.MasterController,
		deps.ApplicationController,
		deps.UniversityController,
		deps.FeedbackController,
		deps.AuthMiddleware,
	)

	return router
}
