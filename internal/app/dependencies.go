package app

import (
	"fmt"

	"github.com/avc/storefront-gateway/internal/backend"
	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/config"
	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/avc/storefront-gateway/internal/events"
	"github.com/avc/storefront-gateway/internal/handlers"
	"github.com/avc/storefront-gateway/internal/repository/postgres"
	"github.com/avc/storefront-gateway/internal/service"
	"github.com/avc/storefront-gateway/internal/utils/jwt"
	"github.com/avc/storefront-gateway/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	snapshot  domain.SnapshotRepository
	syncState domain.SyncStateRepository
}

// services содержит все сервисы приложения
type services struct {
	auth      domain.AuthService
	catalog   *service.CatalogService
	purchases *service.PurchaseService
	admin     *service.AdminService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth      *handlers.AuthHandler
	catalog   *handlers.CatalogHandler
	purchases *handlers.PurchasesHandler
	admin     *handlers.AdminHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	natsConn   *nats.Conn
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		snapshot:  postgres.NewSnapshotRepository(dbPool),
		syncState: postgres.NewSyncStateRepository(dbPool),
	}

	// Клиент бэкенда
	backendClient := backend.NewClient(backend.Config{
		BaseURL:  cfg.BackendAddress,
		Timeout:  cfg.BackendTimeout,
		RetryMax: cfg.BackendRetryMax,
	}, logger)

	// Публикация событий необязательна
	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		conn, err := events.Connect(cfg.NATSURL, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		natsConn = conn
		logger.Info("connected to NATS", zap.String("url", cfg.NATSURL))
	}
	publisher := events.NewPublisher(natsConn, logger)

	// Создание утилит
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)
	resolver := catalog.NewResolver(cfg.CollationLocale)

	// Создание сервисов
	catalogService := service.NewCatalogService(backendClient, repos.snapshot, resolver, logger)
	svcs := &services{
		auth:      service.NewAuthService(backendClient, jwtManager, cfg.MinPasswordLength),
		catalog:   catalogService,
		purchases: service.NewPurchaseService(backendClient, catalogService, resolver, publisher, logger),
		admin:     service.NewAdminService(backendClient, logger),
	}

	// nil *nats.Conn внутри интерфейса не равен nil
	var connStatus handlers.ConnStatus
	if natsConn != nil {
		connStatus = natsConn
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:      handlers.NewAuthHandler(svcs.auth, logger),
		catalog:   handlers.NewCatalogHandler(svcs.catalog, logger),
		purchases: handlers.NewPurchasesHandler(svcs.purchases, logger),
		admin:     handlers.NewAdminHandler(svcs.admin, logger),
		health:    handlers.NewHealthHandler(dbPool, connStatus, logger),
	}

	// Создание worker pool синхронизации снимка
	workerPool := worker.NewPool(
		cfg.SyncWorkers,
		cfg.SyncQueueSize,
		cfg.SyncScanInterval,
		backendClient,
		repos.snapshot,
		repos.syncState,
		logger,
	)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
		natsConn:   natsConn,
	}, nil
}
