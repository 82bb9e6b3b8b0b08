package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"socialink/internal/config"
	"socialink/internal/handler"
	"socialink/internal/middleware"
	"socialink/internal/redis"
	"socialink/internal/services"
	"socialink/internal/transport/httpdto"
	"socialink/pkg/logger"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ProductionEnv = "production"
	TestEnv       = "test"
)

type Handlers struct {
	Auth *handler.AuthHandler
	User *handler.UserHandler
	Post *handler.PostHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.Server.Environment == ProductionEnv {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.Server.Environment == TestEnv {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// SetupRoutes registers the middleware pipeline and all routes. The pipeline
// order is fixed: request id, security headers, CORS, body limit, logging,
// then per-group rate limiting, auth and upload extraction.
func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, uploadService *services.UploadService, limiter *redis.RateLimiter, healthCheck func(ctx context.Context) error) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.SecurityHeadersMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.BodyLimitMiddleware(s.config.Server.MaxBodyBytes))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))

	s.engine.Static(s.config.Uploads.PublicPath, s.config.Uploads.Dir)

	s.engine.GET("/health", func(c *gin.Context) {
		if err := healthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	requireAuth := middleware.AuthMiddleware(authService)
	upload := middleware.UploadMiddleware(uploadService)

	auth := s.engine.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(limiter))
	{
		auth.POST("/register", upload, handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)
	}

	users := s.engine.Group("/users", requireAuth)
	{
		users.GET("/:id", handlers.User.Get)
		users.GET("/:id/friends", handlers.User.GetFriends)
		users.PATCH("/:id/:friendId", handlers.User.ToggleFriend)
	}

	posts := s.engine.Group("/posts", requireAuth)
	{
		posts.GET("", handlers.Post.Feed)
		posts.GET("/:userId", handlers.Post.ByUser)
		posts.POST("", upload, handlers.Post.Create)
		posts.PATCH("/:id/like", handlers.Post.ToggleLike)
	}
}

// Engine exposes the underlying gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.Server.Port)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Infof("Server stopped gracefully")
	}

	return nil
}
