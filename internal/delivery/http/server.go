package http

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/planning-docs-service/internal/config"
	"github.com/planning-docs-service/internal/delivery/http/handler"
	"github.com/planning-docs-service/internal/delivery/http/middleware"
	"github.com/planning-docs-service/internal/domain"
	apperrors "github.com/planning-docs-service/internal/pkg/errors"
	"github.com/planning-docs-service/internal/pkg/metrics"
	"github.com/planning-docs-service/internal/pkg/utils"
	"github.com/planning-docs-service/internal/usecase"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Handlers - набор обработчиков, которые монтирует Server
type Handlers struct {
	Coordinate *handler.CoordinateHandler
	Document   *handler.DocumentHandler
	Catalog    *handler.CatalogHandler
	Link       *handler.LinkHandler
	Session    *handler.SessionHandler
	Stats      *handler.StatsHandler
	Health     *handler.HealthHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	authUC   *usecase.AuthUseCase
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, authUC *usecase.AuthUseCase, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Planning Documents Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		authUC:   authUC,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the Fiber app for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())
	s.app.Get("/health", h.Health.Health)

	loggedIn := middleware.RequireAuth(s.authUC, s.config.Session.CookieName)
	planner := []fiber.Handler{loggedIn, middleware.RequireRole(domain.RolePlanner)}

	// Coordinates
	coords := s.app.Group("/coordinates")
	coords.Get("/", h.Coordinate.GetAll)
	coords.Get("/georeferences", append(planner, h.Coordinate.GetExistingGeoreferences)...)
	coords.Post("/", append(planner, h.Coordinate.Set)...)
	coords.Post("/update", append(planner, h.Coordinate.Update)...)
	coords.Delete("/:id", append(planner, h.Coordinate.Delete)...)

	// Sessions
	s.app.Post("/sessions", h.Session.Login)
	s.app.Get("/sessions/current", loggedIn, h.Session.Current)
	s.app.Delete("/sessions/current", loggedIn, h.Session.Logout)

	// Documents
	s.app.Get("/documents", h.Document.List)
	s.app.Get("/documents/:id", h.Document.Get)
	s.app.Post("/documents", append(planner, h.Document.Create)...)
	s.app.Patch("/documents/:id/description", append(planner, h.Document.UpdateDescription)...)

	// Catalogs
	s.app.Get("/stakeholders", h.Catalog.GetStakeholders)
	s.app.Post("/stakeholders", append(planner, h.Catalog.CreateStakeholder)...)
	s.app.Get("/scales", h.Catalog.GetScales)
	s.app.Post("/scales", append(planner, h.Catalog.AddScale)...)
	s.app.Get("/types", h.Catalog.GetTypes)
	s.app.Post("/types", append(planner, h.Catalog.AddType)...)

	// Links
	s.app.Get("/links/:id", h.Link.GetByDocument)
	s.app.Post("/links", append(planner, h.Link.Create)...)
	s.app.Delete("/links/:id", append(planner, h.Link.Delete)...)

	// Stats
	s.app.Get("/stats/georeferences", h.Stats.GetGeoreferenceStats)
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

// customErrorHandler - fiber.Error отдаёт свой код, остальное - 503
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(utils.ErrorResponse{
				Error: apperrors.New("HTTP_ERROR", fiberErr.Message, fiberErr.Code),
			})
		}

		logger.Error("Unhandled HTTP error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}
