package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BuzzLyutic/organizador-api/internal/config"
	"github.com/BuzzLyutic/organizador-api/internal/repo"
)

// Open подключает хранилище, выбранное в конфиге, и возвращает функцию закрытия
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (repo.TaskRepository, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DatabaseURL, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg.SQLitePath, log)
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, dsn string, log *zap.Logger) (repo.TaskRepository, func(), error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}
	log.Info("Successfully connected to the Database!", zap.String("driver", config.DriverPostgres))

	return repo.NewTaskRepo(pool), pool.Close, nil
}

func openSQLite(ctx context.Context, path string, log *zap.Logger) (repo.TaskRepository, func(), error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	closeDB := func() {
		if err := sqlDB.Close(); err != nil {
			log.Error("failed to close sqlite", zap.Error(err))
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("ping sqlite: %w", err)
	}

	taskRepo := repo.NewGormTaskRepo(db)
	if err := taskRepo.EnsureSchema(ctx); err != nil {
		closeDB()
		return nil, nil, err
	}
	log.Info("Successfully connected to the Database!",
		zap.String("driver", config.DriverSQLite),
		zap.String("path", path),
	)

	return taskRepo, closeDB, nil
}
