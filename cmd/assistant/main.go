package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/config"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/observability"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/server"
	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openSnapshotStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	// Use case
	svc := operations.NewService(store, operations.Config{
		IDStrategy:     aggregate.IDStrategy(cfg.Notes.IDStrategy),
		SearchMode:     entity.SearchMode(cfg.Notes.SearchMode),
		StorageTimeout: cfg.Storage.Timeout,
	}, logger)

	summary, err := svc.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load data", zap.Error(err))
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		ContactHandler: handler.NewContactHandler(svc),
		NoteHandler:    handler.NewNoteHandler(svc),
		SearchHandler:  handler.NewSearchHandler(svc),
		Logger:         logger,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Executor: router,
		Input:    os.Stdin,
		Output:   os.Stdout,
		Logger:   logger,
	})

	logger.Info("assistant ready",
		zap.String("environment", cfg.App.Environment),
		zap.String("driver", cfg.Storage.Driver),
		zap.Int("contacts", summary.Contacts),
		zap.Int("notes", summary.Notes),
	)

	if err := srv.Serve(ctx); err != nil {
		logger.Error("command loop stopped", zap.Error(err))
	}

	// Unsaved changes get one more chance before exit.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := svc.Flush(shutdownCtx); err != nil {
		logger.Error("failed to save data on shutdown", zap.Error(err))
	}

	logger.Info("assistant stopped")
}
