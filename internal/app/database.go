package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/storefront-gateway/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	dbPingTimeout     = 5 * time.Second
	dbApplicationName = "storefront-gateway"
	// соединения сверх воркеров синхронизации: HTTP чтения снимка и health
	dbSpareConns = 4
)

// poolConfig разбирает URI и дополняет его настройками шлюза.
// Каждый воркер синхронизации держит транзакцию, поэтому пул не меньше
// syncWorkers + dbSpareConns. Явный application_name в URI сохраняется.
func poolConfig(databaseURI string, syncWorkers int) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URI: %w", err)
	}

	if _, ok := cfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		cfg.ConnConfig.RuntimeParams["application_name"] = dbApplicationName
	}

	if need := int32(syncWorkers + dbSpareConns); cfg.MaxConns < need {
		cfg.MaxConns = need
	}
	return cfg, nil
}

// initDatabase создает пул соединений с базой снимка каталога и выполняет миграции
func initDatabase(ctx context.Context, databaseURI string, syncWorkers int, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(databaseURI, syncWorkers)
	if err != nil {
		return nil, err
	}

	dbPool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := dbPool.Ping(pingCtx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully", zap.Int32("max_conns", cfg.MaxConns))

	return dbPool, nil
}
