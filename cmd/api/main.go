package main

import (
	"context"
	"log"
	"time"

	"socialink/internal/config"
	"socialink/internal/handler"
	rediscli "socialink/internal/redis"
	"socialink/internal/repository"
	"socialink/internal/server"
	"socialink/internal/services"
	"socialink/pkg/database"
	"socialink/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logMode := logger.DevelopmentMode
	if cfg.Server.Environment == server.ProductionEnv {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	// The listener only binds after the database connection succeeds.
	client, db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		l.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		l.Fatalf("Failed to create indexes: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)

	authService := services.NewAuthService(userRepo, cfg)
	userService := services.NewUserService(userRepo)
	postService := services.NewPostService(postRepo, userRepo)

	uploadService, err := services.NewUploadService(cfg.Uploads.Dir)
	if err != nil {
		l.Fatalf("Failed to prepare upload directory: %v", err)
	}

	var limiter *rediscli.RateLimiter
	if cfg.Redis.Enabled {
		limiter = rediscli.NewRateLimiter(rediscli.NewClient(cfg.Redis), rediscli.RateLimitConfig{
			AuthLimit:  cfg.Auth.AuthRateLimit,
			AuthWindow: time.Duration(cfg.Auth.AuthRateWindow) * time.Second,
		})
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(&server.Handlers{
		Auth: handler.NewAuthHandler(authService),
		User: handler.NewUserHandler(userService),
		Post: handler.NewPostHandler(postService),
	}, authService, uploadService, limiter, func(ctx context.Context) error {
		return healthCheck(ctx, client)
	})

	if err := srv.Start(); err != nil {
		l.Errorf("Server exited with error: %v", err)
	}
}

func healthCheck(ctx context.Context, client *mongo.Client) error {
	return database.HealthCheck(ctx, client)
}
