package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"pcbuilder/internal/buildgen"
	"pcbuilder/internal/cache"
	"pcbuilder/internal/config"
	"pcbuilder/internal/database"
	"pcbuilder/internal/server"
	"pcbuilder/internal/services"
	"pcbuilder/pkg/gemini"
	"pcbuilder/pkg/logger"
	"pcbuilder/pkg/rabbitmq"
	"pcbuilder/pkg/youtube"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "pcbuilder:", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	_, restore, err := logger.Setup(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return err
	}
	defer restore()

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer closeDB(db)
	if err := database.Migrate(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Domain events (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			zap.L().Warn("Domain events disabled", zap.Error(err))
		} else {
			defer mqClient.Close()
			events = mqClient
			if err := mqClient.ConsumeEvents(rabbitmq.DefaultQueue, rabbitmq.LogEvent); err != nil {
				zap.L().Warn("Failed to start event consumer", zap.Error(err))
			}
		}
	}

	// --- Build generator ---
	generator, cleanup := newGenerator(ctx, cfg)
	defer cleanup()

	app := server.New(cfg, server.Deps{
		DB:        db,
		Generator: generator,
		Events:    events,
	})

	// --- Start HTTP Server ---
	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("Starting server", zap.String("addr", cfg.ListenAddr()), zap.String("environment", cfg.Environment))
		errCh <- app.Listen(cfg.ListenAddr())
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	zap.L().Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zap.L().Warn("Error during Fiber shutdown", zap.Error(err))
	}
	zap.L().Info("Server gracefully stopped")
	return nil
}

// newGenerator wires the completion and review-search clients. Missing keys
// leave the corresponding stage disabled.
func newGenerator(ctx context.Context, cfg *config.Config) (*buildgen.Generator, func()) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var completer buildgen.Completer
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewClient(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
		if err != nil {
			zap.L().Error("Gemini client unavailable", zap.Error(err))
		} else {
			completer = client
			closers = append(closers, func() { _ = client.Close() })
		}
	} else {
		zap.L().Warn("GEMINI_API_KEY is not set; build generation is disabled")
	}

	var searcher buildgen.ReviewSearcher
	if cfg.YouTubeAPIKey != "" {
		s, err := youtube.NewSearcher(ctx, youtube.Config{APIKey: cfg.YouTubeAPIKey})
		if err != nil {
			zap.L().Error("YouTube client unavailable", zap.Error(err))
		} else {
			searcher = s
		}
	} else {
		zap.L().Warn("YOUTUBE_API_KEY is not set; recommendations will carry no reviews")
	}

	if searcher != nil && cfg.RedisAddr != "" {
		rdb, err := cache.Connect(ctx, cache.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			zap.L().Warn("Review cache disabled", zap.Error(err))
		} else {
			searcher = cache.NewCachedSearcher(searcher, rdb, cfg.ReviewCacheTTL)
			closers = append(closers, func() { _ = rdb.Close() })
		}
	}

	return buildgen.NewGenerator(completer, searcher), cleanup
}

func closeDB(db *gorm.DB) {
	if err := database.Close(db); err != nil {
		zap.L().Warn("Failed to close database", zap.Error(err))
	}
}
