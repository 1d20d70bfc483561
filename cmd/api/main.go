package main

// @title POI Catalog Service API
// @version 1.0.0
// @description Каталог точек интереса (POI). JSON API для создания, чтения,
// @description обновления, удаления, пакетного импорта и поиска POI с
// @description Bearer-аутентификацией.
// @description
// @description Основные возможности:
// @description - CRUD точек интереса с частичным обновлением
// @description - Постраничный листинг с фильтрами по типу и verified
// @description - Поиск по подстроке имени/описания и по тегам
// @description - Bulk import с поэлементным отчётом
// @description - Файловая пакетная загрузка с повалидационной изоляцией записей
// @description - Метаданные медиа-вложений POI

// @contact.name API Support
// @contact.email support@poi-catalog.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/poi-catalog/docs"
	"github.com/poi-catalog/internal/config"
	httpDelivery "github.com/poi-catalog/internal/delivery/http"
	"github.com/poi-catalog/internal/delivery/http/handler"
	"github.com/poi-catalog/internal/infrastructure/identity"
	"github.com/poi-catalog/internal/pkg/logger"
	"github.com/poi-catalog/internal/repository/cache"
	"github.com/poi-catalog/internal/repository/document"
	"github.com/poi-catalog/internal/repository/postgres"
	"github.com/poi-catalog/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting POI Catalog Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (document store backend)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Schema + health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	docStore := postgres.NewDocumentStore(db)
	poiRepo := document.NewPOIRepository(docStore, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	mediaUC := usecase.NewMediaUseCase(cfg.Storage.BaseURL, log)

	poiUC := usecase.NewPOIUseCase(
		poiRepo,
		cacheRepo,
		mediaUC,
		log,
		cfg.Cache.POICacheTTL,
	)

	uploadUC := usecase.NewUploadUseCase(poiRepo, log)

	log.Info("Use cases initialized")

	// 8. Identity verifier (external token issuer)
	verifier := identity.NewVerifier(cfg.Auth.JWTSecret, log)

	// 9. Initialize HTTP Handlers
	poiHandler := handler.NewPOIHandler(poiUC, log)
	mediaHandler := handler.NewMediaHandler(mediaUC, poiUC, log)
	uploadHandler := handler.NewUploadHandler(uploadUC, log)
	authHandler := handler.NewAuthHandler()

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		verifier,
		poiHandler,
		mediaHandler,
		uploadHandler,
		authHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
