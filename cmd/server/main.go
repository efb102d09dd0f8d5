package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pi-verify.backend/internal/config"
	"pi-verify.backend/internal/infrastructure/models"
	"pi-verify.backend/internal/infrastructure/repositories"
	"pi-verify.backend/internal/interfaces/http/handlers"
	"pi-verify.backend/internal/interfaces/http/middleware"
	"pi-verify.backend/internal/usecases"
	"pi-verify.backend/pkg/logger"
	"pi-verify.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis only backs the idempotency replay cache; the service stays up
	// without it.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, idempotency replay disabled", zap.Error(err))
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else if err := db.AutoMigrate(&models.BusinessVerification{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	verificationRepo := repositories.NewVerificationRepository(db)
	metricsProvider := usecases.NewHashMetricsProvider()
	verificationUsecase := usecases.NewVerificationUsecase(verificationRepo, metricsProvider)
	verificationHandler := handlers.NewVerificationHandler(verificationUsecase)

	var authMiddleware gin.HandlerFunc
	if cfg.Auth.Required {
		if cfg.Auth.ServiceKey == "" {
			return errors.New("AUTH_REQUIRED is set but AUTH_SERVICE_KEY is empty")
		}
		authMiddleware = middleware.ServiceKeyAuthMiddleware(cfg.Auth.ServiceKey)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		verificationHandler: verificationHandler,
		authMiddleware:      authMiddleware,
	})

	log.Printf("🚀 Pi Verify Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
