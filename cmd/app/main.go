package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/organizador-api/internal/config"
	"github.com/BuzzLyutic/organizador-api/internal/handler"
	"github.com/BuzzLyutic/organizador-api/internal/server"
	"github.com/BuzzLyutic/organizador-api/internal/service"
	"github.com/BuzzLyutic/organizador-api/internal/storage"
)

func main() {
	// Загрузка конфигурации
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Подключаем хранилище
	taskRepo, closeStorage, err := storage.Open(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.String("driver", cfg.StorageDriver), zap.Error(err))
	}

	taskService := service.NewTaskService(taskRepo)
	taskHandler := handler.NewTaskHandler(taskService, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewRouter(taskHandler, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown: сначала HTTP, потом хранилище
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				logger.Info("Shutting down server...")
				err := srv.Shutdown(ctx)
				closeStorage()
				return err
			},
		},
	)

	exitCode := <-wait
	if exitCode != 0 {
		logger.Error("Shutdown finished with errors", zap.Int("exit_code", exitCode))
		logger.Sync()
		os.Exit(exitCode)
	}
	logger.Info("Server stopped successfully!")
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
