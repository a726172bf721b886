package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc/storefront-gateway/internal/backend"
	"github.com/avc/storefront-gateway/internal/domain"
	"go.uber.org/zap"
)

// Pool представляет пул воркеров синхронизации снимка каталога
type Pool struct {
	workers      int
	queue        chan string
	backend      domain.BackendClient
	snapshot     domain.SnapshotRepository
	syncState    domain.SyncStateRepository
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	backendClient domain.BackendClient,
	snapshot domain.SnapshotRepository,
	syncState domain.SyncStateRepository,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      workers,
		queue:        make(chan string, queueSize),
		backend:      backendClient,
		snapshot:     snapshot,
		syncState:    syncState,
		logger:       logger,
		scanInterval: scanInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	// Запускаем воркеры
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер бизнесов
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool. Контекст, переданный в Start,
// должен быть отменен до вызова.
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// SyncNow синхронно проходит по всем бизнесам, которым нужна синхронизация
func (p *Pool) SyncNow(ctx context.Context) error {
	ids, err := p.businessesToSync(ctx)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		p.syncBusiness(ctx, id)
	}
	p.logger.Info("snapshot sync pass finished", zap.Int("businesses", len(ids)))
	return nil
}

// worker обрабатывает бизнесы из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case businessID, ok := <-p.queue:
			if !ok {
				return
			}
			p.syncBusiness(ctx, businessID)
		}
	}
}

// scanner периодически ставит в очередь бизнесы с устаревшим снимком
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scan(ctx)
		}
	}
}

// scan отправляет бизнесы в очередь
func (p *Pool) scan(ctx context.Context) {
	ids, err := p.businessesToSync(ctx)
	if err != nil {
		p.logger.Error("failed to list businesses to sync", zap.Error(err))
		return
	}

	for _, id := range ids {
		select {
		case p.queue <- id:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, пропускаем
			p.logger.Warn("queue is full, skipping business", zap.String("business_id", id))
		}
	}
}

// businessesToSync возвращает одобренные бизнесы без свежей синхронизации
// и удаляет из снимка строки бизнесов, которых больше нет среди одобренных
func (p *Pool) businessesToSync(ctx context.Context) ([]string, error) {
	approved := true
	accounts, err := p.backend.ListAccounts(ctx, domain.AccountKindBusiness, &approved)
	if err != nil {
		return nil, fmt.Errorf("worker: list approved businesses: %w", err)
	}

	ids := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		if acc.ID != "" {
			ids = append(ids, acc.ID)
		}
	}

	// Пустой ответ бэкенда не очищает снимок
	if len(ids) > 0 {
		removed, err := p.snapshot.RetainBusinesses(ctx, ids)
		if err != nil {
			p.logger.Warn("failed to prune snapshot", zap.Error(err))
		} else if removed > 0 {
			p.logger.Info("pruned snapshot rows of removed businesses", zap.Int64("rows", removed))
		}
	}

	fresh, err := p.syncState.ListFresh(ctx, p.scanInterval)
	if err != nil {
		p.logger.Warn("failed to read sync state, syncing every business", zap.Error(err))
		return ids, nil
	}

	skip := make(map[string]struct{}, len(fresh))
	for _, id := range fresh {
		skip[id] = struct{}{}
	}

	stale := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := skip[id]; !ok {
			stale = append(stale, id)
		}
	}
	return stale, nil
}

// syncBusiness заменяет строки снимка одного бизнеса
func (p *Pool) syncBusiness(ctx context.Context, businessID string) {
	p.logger.Debug("syncing business", zap.String("business_id", businessID))

	products, err := p.backend.ListProducts(ctx, businessID, "")
	if err != nil {
		// Обработка rate limiting
		var rateLimitErr *backend.RateLimitError
		if errors.As(err, &rateLimitErr) {
			p.logger.Warn("rate limit exceeded",
				zap.String("business_id", businessID),
				zap.Duration("retry_after", rateLimitErr.RetryAfter),
			)
			sleep(ctx, rateLimitErr.RetryAfter)
			return
		}

		p.logger.Error("failed to list products",
			zap.String("business_id", businessID),
			zap.Error(err),
		)
		p.recordFailure(ctx, businessID, err)
		return
	}

	if err := p.snapshot.ReplaceBusinessProducts(ctx, businessID, products); err != nil {
		p.logger.Error("failed to replace snapshot",
			zap.String("business_id", businessID),
			zap.Error(err),
		)
		p.recordFailure(ctx, businessID, err)
		return
	}

	if err := p.syncState.RecordSuccess(ctx, businessID, len(products)); err != nil {
		p.logger.Error("failed to record sync state",
			zap.String("business_id", businessID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("business synced",
		zap.String("business_id", businessID),
		zap.Int("products", len(products)),
	)
}

func (p *Pool) recordFailure(ctx context.Context, businessID string, syncErr error) {
	if err := p.syncState.RecordFailure(ctx, businessID, syncErr); err != nil {
		p.logger.Error("failed to record sync failure",
			zap.String("business_id", businessID),
			zap.Error(err),
		)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
