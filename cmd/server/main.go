package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"blog-service/internal/application/services"
	"blog-service/internal/config"
	"blog-service/internal/db"
	"blog-service/internal/delivery/handler"
	"blog-service/internal/infrastructure"
	"blog-service/internal/infrastructure/db/mongodb"

	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := infrastructure.NewLogger("info", false)
		logger.Fatal().Err(err).Msg("❌ Invalid configuration")
	}
	logger := infrastructure.NewLogger(cfg.LogLevel, cfg.LogPretty)

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("❌ Server stopped with error")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := db.Connect(ctx, cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Disconnect(context.Background(), client, cfg.ShutdownTimeout); err != nil {
			logger.Error().Err(err).Msg("disconnect mongo")
		}
	}()
	logger.Info().Str("database", cfg.MongoDatabase).Msg("✅ Connected to MongoDB")

	database := client.Database(cfg.MongoDatabase)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		return err
	}

	metrics := infrastructure.NewMetrics()
	userService := services.NewUserService(
		mongodb.NewUserRepository(database),
		infrastructure.NewPasswordService(cfg.BcryptCost),
		infrastructure.NewJWTService(cfg.SecretKey, cfg.AccessTokenTTL),
		metrics,
		logger,
	)
	postService := services.NewPostService(mongodb.NewPostRepository(database), logger)

	e := handler.NewRouter(handler.NewHandler(userService, postService), metrics, logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr()).Msg("🚀 Server running")
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
