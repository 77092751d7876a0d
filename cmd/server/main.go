package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	briefingapp "github.com/kyrec/backend/internal/application/briefing"
	identityapp "github.com/kyrec/backend/internal/application/identity"
	"github.com/kyrec/backend/internal/infrastructure/auth"
	"github.com/kyrec/backend/internal/infrastructure/config"
	"github.com/kyrec/backend/internal/infrastructure/logger"
	"github.com/kyrec/backend/internal/infrastructure/migration"
	"github.com/kyrec/backend/internal/infrastructure/persistence"
	"github.com/kyrec/backend/internal/infrastructure/rendering"
	"github.com/kyrec/backend/internal/infrastructure/seeding"
	"github.com/kyrec/backend/internal/interfaces/http/handler"
	"github.com/kyrec/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting KY record backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if err := runMigrations(db, cfg, log); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()

	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	candidateRepo := persistence.NewGormNameCandidateRepository(db.DB)
	recordRepo := persistence.NewGormRecordRepository(db.DB)

	seeder := seeding.NewSeeder(db.DB, companyRepo, cfg.Seed, log)
	if err := seeder.SeedIfEmpty(ctx); err != nil {
		log.Fatal("Failed to seed store", zap.Error(err))
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	renderer := rendering.NewTemplateRenderer(cfg.Render.TemplatePath, log)

	recordService := briefingapp.NewRecordService(recordRepo, candidateRepo, cfg.Retention.Years, log)
	// The sweep also reruns at every login so long-lived processes purge
	// records that cross the boundary between restarts
	authService := identityapp.NewAuthService(companyRepo, jwtService, recordService, log)
	accountService := identityapp.NewAccountService(companyRepo, candidateRepo, log)
	exportService := briefingapp.NewExportService(recordRepo, renderer, log)

	if _, err := recordService.ApplyRetention(ctx, time.Now()); err != nil {
		log.Fatal("Failed to apply retention", zap.Error(err))
	}

	engine := router.Setup(router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Record:  handler.NewRecordHandler(recordService),
		Export:  handler.NewExportHandler(exportService),
		Company: handler.NewCompanyHandler(accountService),
		System:  handler.NewSystemHandler(db),
	}, jwtService, log)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func runMigrations(db *persistence.Database, cfg *config.Config, log *zap.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}

	migrator, err := migration.New(sqlDB, cfg.Database.Driver, config.MigrationsPath, log)
	if err != nil {
		return err
	}
	return migrator.Up()
}
