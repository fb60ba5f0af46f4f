package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lottery-backend/config"
	"lottery-backend/internal/api"
	"lottery-backend/internal/database"
	"lottery-backend/internal/storage"
	"lottery-backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// @title lottery-backend API
// @version 1.0
// @description Promotions, lottery tickets and user sessions for the lottery app.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		zap.L().Fatal("failed to load config", zap.Error(err))
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.NewString()
		logger.Log.Warn("JWT_SECRET is not set; using a random secret, tokens will not survive a restart")
	}

	ctx := context.Background()

	store, err := newStore(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialise storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}
	if err := storage.Seed(ctx, store); err != nil {
		logger.Log.Fatal("failed to seed storage", zap.Error(err))
	}

	redisClient, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		logger.Log.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisFullAddr()), zap.Error(err))
	}
	if redisClient == nil {
		logger.Log.Info("REDIS_HOST is not set; token denylist kept in memory, user cache and verification codes disabled")
	} else {
		defer redisClient.Close()
	}

	router := api.NewRouter(api.Dependencies{
		Config: cfg,
		Store:  store,
		Redis:  redisClient,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("serving", zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown", zap.Error(err))
	}
}

// newStore builds the entity store selected by STORAGE_DRIVER.
func newStore(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == "memory" {
		return storage.NewMemStorage(), nil
	}

	db, err := database.Connect(cfg.StorageDriver, cfg.DSN())
	if err != nil {
		return nil, err
	}
	store := storage.NewGormStorage(db)
	if err := store.AutoMigrate(); err != nil {
		return nil, err
	}
	return store, nil
}
