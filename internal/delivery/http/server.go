package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/poi-catalog/internal/config"
	"github.com/poi-catalog/internal/delivery/http/handler"
	"github.com/poi-catalog/internal/delivery/http/middleware"
	"github.com/poi-catalog/internal/pkg/errors"
	"github.com/poi-catalog/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	verifier middleware.TokenVerifier

	// Handlers
	poiHandler    *handler.POIHandler
	mediaHandler  *handler.MediaHandler
	uploadHandler *handler.UploadHandler
	authHandler   *handler.AuthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	verifier middleware.TokenVerifier,
	poiHandler *handler.POIHandler,
	mediaHandler *handler.MediaHandler,
	uploadHandler *handler.UploadHandler,
	authHandler *handler.AuthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "POI Catalog Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    12 * 1024 * 1024, // upload-file checks its own 10 MiB bound
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		verifier:      verifier,
		poiHandler:    poiHandler,
		mediaHandler:  mediaHandler,
		uploadHandler: uploadHandler,
		authHandler:   authHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Health check - открытый путь
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	v1 := s.app.Group("/v1")

	// Auth info routes - открытые пути
	auth := v1.Group("/auth")
	auth.Post("/login", s.authHandler.Login)
	auth.Get("/info", s.authHandler.Info)

	// POI routes - всё за аутентификацией
	pois := v1.Group("/pois", middleware.Auth(s.verifier, s.logger))
	pois.Post("/", s.poiHandler.Create)
	pois.Get("/", s.poiHandler.List)
	pois.Get("/search", s.poiHandler.Search)
	pois.Post("/bulk-import", s.poiHandler.BulkImport)
	pois.Post("/upload-file", s.uploadHandler.UploadFile)
	pois.Get("/:poiId", s.poiHandler.Get)
	pois.Put("/:poiId", s.poiHandler.Update)
	pois.Delete("/:poiId", s.poiHandler.Delete)

	// Media routes
	pois.Post("/:poiId/media", s.mediaHandler.Upload)
	pois.Delete("/:poiId/media/:mediaId", s.mediaHandler.Delete)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		if e, ok := err.(*fiber.Error); ok {
			return utils.SendError(c, errors.New("HTTP_ERROR", e.Message, e.Code))
		}
		return utils.SendError(c, err)
	}
}
