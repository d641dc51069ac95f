package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/siperdin/siperdin_api/internal/cache"
	"github.com/siperdin/siperdin_api/internal/config"
	"github.com/siperdin/siperdin_api/internal/database"
	"github.com/siperdin/siperdin_api/internal/handler"
	"github.com/siperdin/siperdin_api/internal/middleware"
	"github.com/siperdin/siperdin_api/internal/models"
	"github.com/siperdin/siperdin_api/internal/repository"
	"github.com/siperdin/siperdin_api/internal/service"
	"github.com/siperdin/siperdin_api/internal/worker"
)

// main is the application entrypoint for the SIPERDIN API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting siperdin api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	collections := cache.NewCollectionCache(redisClient)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	signatoryRepo := repository.NewSignatoryRepository(db)
	cityRepo := repository.NewCityRepository(db)
	transportRepo := repository.NewTransportModeRepository(db)
	fundingRepo := repository.NewFundingSourceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	sppdRepo := repository.NewSPPDRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// 5. Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, collections)
	sppdSvc := service.NewSPPDService(sppdRepo, assignmentRepo, collections)
	receiptSvc := service.NewReceiptService(receiptRepo, collections)
	reportSvc := service.NewReportService(reportRepo, receiptRepo, collections)
	importSvc := service.NewImportService(employeeRepo)

	storageSvc, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		log.Warn().Err(err).Msg("Storage service initialization failed - file uploads will be disabled")
	}

	documentSvc := service.NewDocumentService(
		assignmentRepo, sppdRepo, receiptRepo,
		employeeRepo, signatoryRepo,
		cityRepo, transportRepo, fundingRepo, settingsRepo,
		cfg.IssuedAtCity, cfg.Document.LetterheadFetchTimeout,
	)

	// 6. Initialize handlers
	handlers := &Handlers{
		Health:        handler.NewHealthHandler(db, redisClient),
		Auth:          handler.NewAuthHandler(authSvc),
		User:          handler.NewUserHandler(userRepo),
		Employee:      handler.NewEmployeeHandler(employeeRepo, importSvc),
		Signatory:     handler.NewSignatoryHandler(signatoryRepo),
		City:          handler.NewCityHandler(cityRepo),
		TransportMode: handler.NewTransportModeHandler(transportRepo),
		FundingSource: handler.NewFundingSourceHandler(fundingRepo),
		Settings:      handler.NewSettingsHandler(settingsRepo, storageSvc),
		Assignment:    handler.NewAssignmentHandler(assignmentSvc, documentSvc),
		SPPD:          handler.NewSPPDHandler(sppdSvc, documentSvc),
		Receipt:       handler.NewReceiptHandler(receiptSvc, documentSvc, storageSvc),
		Report:        handler.NewReportHandler(reportSvc),
	}

	// 7. Initialize middleware
	jwtMw := middleware.NewJWTMiddleware(cfg.JWTSecret)

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, jwtMw)

	// 9. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 10. Start workers
	go worker.NewStatsWorker(reportSvc, cfg.Worker.StatsRefreshInterval).Start(ctx)

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health        *handler.HealthHandler
	Auth          *handler.AuthHandler
	User          *handler.UserHandler
	Employee      *handler.EmployeeHandler
	Signatory     *handler.SignatoryHandler
	City          *handler.CityHandler
	TransportMode *handler.TransportModeHandler
	FundingSource *handler.FundingSourceHandler
	Settings      *handler.SettingsHandler
	Assignment    *handler.AssignmentHandler
	SPPD          *handler.SPPDHandler
	Receipt       *handler.ReceiptHandler
	Report        *handler.ReportHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)
	router.POST("/v1/auth/login", handlers.Auth.Login)

	v1 := router.Group("/v1")
	v1.Use(jwtMiddleware.Handle())
	{
		v1.GET("/auth/me", handlers.Auth.Me)

		// Account management (Admin)
		admin := v1.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.POST("/auth/register", handlers.Auth.Register)
			admin.GET("/users", handlers.User.List)
			admin.PUT("/users/:id", handlers.User.Update)
			admin.DELETE("/users/:id", handlers.User.Delete)
			admin.PUT("/settings", handlers.Settings.Update)
			admin.POST("/settings/letterhead", handlers.Settings.UploadLetterhead)
		}

		v1.GET("/settings", handlers.Settings.Get)

		// Master data: reads for everyone, writes for Admin and Operator
		v1.GET("/employees", handlers.Employee.List)
		v1.GET("/employees/:id", handlers.Employee.Get)
		v1.GET("/employees/import/template", handlers.Employee.Template)
		v1.GET("/signatories", handlers.Signatory.List)
		v1.GET("/cities", handlers.City.List)
		v1.GET("/transport-modes", handlers.TransportMode.List)
		v1.GET("/funding-sources", handlers.FundingSource.List)

		masterWrite := v1.Group("")
		masterWrite.Use(middleware.RequireRole(models.RoleAdmin, models.RoleOperator))
		{
			masterWrite.POST("/employees", handlers.Employee.Create)
			masterWrite.PUT("/employees/:id", handlers.Employee.Update)
			masterWrite.DELETE("/employees/:id", handlers.Employee.Delete)
			masterWrite.POST("/employees/import", handlers.Employee.Import)

			masterWrite.POST("/signatories", handlers.Signatory.Create)
			masterWrite.PUT("/signatories/:id", handlers.Signatory.Update)
			masterWrite.DELETE("/signatories/:id", handlers.Signatory.Delete)

			masterWrite.POST("/cities", handlers.City.Create)
			masterWrite.PUT("/cities/:id", handlers.City.Update)
			masterWrite.DELETE("/cities/:id", handlers.City.Delete)

			masterWrite.POST("/transport-modes", handlers.TransportMode.Create)
			masterWrite.PUT("/transport-modes/:id", handlers.TransportMode.Update)
			masterWrite.DELETE("/transport-modes/:id", handlers.TransportMode.Delete)

			masterWrite.POST("/funding-sources", handlers.FundingSource.Create)
			masterWrite.PUT("/funding-sources/:id", handlers.FundingSource.Update)
			masterWrite.DELETE("/funding-sources/:id", handlers.FundingSource.Delete)
		}

		// Assignment letters: fine-grained rules live in the services
		v1.GET("/assignment-letters", handlers.Assignment.List)
		v1.GET("/assignment-letters/:id", handlers.Assignment.Get)
		v1.POST("/assignment-letters", handlers.Assignment.Create)
		v1.PUT("/assignment-letters/:id", handlers.Assignment.Update)
		v1.DELETE("/assignment-letters/:id", handlers.Assignment.Delete)
		v1.PATCH("/assignment-letters/:id/status", handlers.Assignment.ChangeStatus)
		v1.GET("/assignment-letters/:id/print", handlers.Assignment.Print)
		v1.GET("/assignment-letters/:id/export", handlers.Assignment.Export)

		// SPPD
		v1.GET("/sppd", handlers.SPPD.List)
		v1.GET("/sppd/ready", handlers.SPPD.Ready)
		v1.GET("/sppd/:id", handlers.SPPD.Get)
		v1.POST("/sppd", handlers.SPPD.Create)
		v1.PUT("/sppd/:id", handlers.SPPD.Update)
		v1.DELETE("/sppd/:id", handlers.SPPD.Delete)
		v1.GET("/sppd/:id/print", handlers.SPPD.Print)
		v1.GET("/sppd/:id/export", handlers.SPPD.Export)

		// Receipts
		v1.GET("/receipts", handlers.Receipt.List)
		v1.GET("/receipts/:id", handlers.Receipt.Get)
		v1.POST("/receipts", handlers.Receipt.Create)
		v1.PUT("/receipts/:id", handlers.Receipt.Update)
		v1.DELETE("/receipts/:id", handlers.Receipt.Delete)
		v1.PATCH("/receipts/:id/pay", handlers.Receipt.Pay)
		v1.POST("/receipts/:id/attachments", handlers.Receipt.UploadAttachment)
		v1.GET("/receipts/:id/print", handlers.Receipt.Print)
		v1.GET("/receipts/:id/export", handlers.Receipt.Export)

		// Reports
		v1.GET("/reports/dashboard", handlers.Report.Dashboard)
		v1.GET("/reports/recap", handlers.Report.Recap)
		v1.GET("/reports/recap/export", handlers.Report.RecapExport)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
