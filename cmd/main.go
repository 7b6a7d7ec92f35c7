package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/arvndkumar/UserService/config"
	"github.com/arvndkumar/UserService/db"
	"github.com/arvndkumar/UserService/internal/auth/handler"
	repo "github.com/arvndkumar/UserService/internal/auth/repository/postgres"
	"github.com/arvndkumar/UserService/internal/auth/service"
	"github.com/arvndkumar/UserService/internal/notify"
	"github.com/arvndkumar/UserService/internal/sweeper"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	notifier := notify.NewRedisPublisher(cfg.RedisAddr)
	defer notifier.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.SigningSecret, cfg.Issuer, cfg.AccessExpiry(), cfg.RefreshExpiry())
	userService := service.NewUserService(userRepo, userRepo, tokenService, notifier, logger)
	authHandler := handler.NewAuthHandler(userService, tokenService)

	resetSweeper := sweeper.New(userRepo, cfg.SweepInterval(), logger)
	go resetSweeper.Run(ctx)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("starting server", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
