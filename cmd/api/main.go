package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/userauth/auth-api/internal/api"
	"github.com/userauth/auth-api/internal/core/service"
	"github.com/userauth/auth-api/internal/core/token"
	"github.com/userauth/auth-api/internal/infrastructure/config"
	mongodb "github.com/userauth/auth-api/internal/infrastructure/db/mongo"
	redisdb "github.com/userauth/auth-api/internal/infrastructure/db/redis"
	"github.com/userauth/auth-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The user store is a hard dependency: without it the listener never starts.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("mongo index creation failed")
	}

	// The cache is best-effort: start without it if Redis is unreachable.
	var userService *service.UserService
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Warn().Err(err).Msg("redis unavailable, profile cache disabled")
		userService = service.NewUserService(userRepo, nil, logg)
	} else {
		defer rdb.Close()
		cache := redisdb.NewProfileCache(rdb, cfg.Redis.ProfileCacheTTL)
		userService = service.NewUserService(userRepo, cache, logg)
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)

	e := api.NewRouter(api.Deps{
		Auth:   authService,
		Users:  userService,
		Tokens: tokens,
		Log:    logg,
		Mongo:  db,
		Redis:  rdb,
	})

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("shutdown failed")
	}
}
