package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"go.uber.org/zap"
)

// CatalogService отдает каталог покупателям и управляет товарами бизнеса
type CatalogService struct {
	backend  domain.BackendClient
	snapshot domain.SnapshotRepository
	resolver *catalog.Resolver
	logger   *zap.Logger
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(
	backend domain.BackendClient,
	snapshot domain.SnapshotRepository,
	resolver *catalog.Resolver,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		backend:  backend,
		snapshot: snapshot,
		resolver: resolver,
		logger:   logger,
	}
}

// Products возвращает общий список товаров из снимка.
// Пустой или недоступный снимок заменяется запросом к бэкенду.
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.snapshot.ListProducts(ctx)
	if err != nil {
		s.logger.Warn("snapshot unavailable, falling back to backend", zap.Error(err))
	}
	if len(products) > 0 {
		return products, nil
	}

	products, err = s.backend.ListAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to list products: %w", err)
	}
	return products, nil
}

// Options возвращает варианты уровня каскада для текущего выбора
func (s *CatalogService) Options(ctx context.Context, level catalog.Level, sel catalog.Selection) ([]string, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolver.OptionsFor(level, sel, products), nil
}

// Price возвращает цену полностью выбранного товара
func (s *CatalogService) Price(ctx context.Context, sel catalog.Selection) (int64, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return 0, err
	}
	return s.resolver.ResolvePrice(sel, products), nil
}

// BusinessTree возвращает дерево категорий товаров бизнеса
func (s *CatalogService) BusinessTree(ctx context.Context, session domain.Session, search string) (catalog.CategoryTree, error) {
	if session.BusinessID == "" {
		return catalog.CategoryTree{}, ErrSessionWithoutScope
	}

	products, err := s.backend.ListProducts(ctx, session.BusinessID, strings.TrimSpace(search))
	if err != nil {
		return catalog.CategoryTree{}, fmt.Errorf("catalog service: failed to list products of %q: %w", session.BusinessID, err)
	}
	return catalog.GroupByCategory(products), nil
}

// CreateProduct добавляет товар от имени бизнеса сессии
func (s *CatalogService) CreateProduct(ctx context.Context, session domain.Session, in domain.ProductInput) (*domain.Product, error) {
	if session.BusinessID == "" {
		return nil, ErrSessionWithoutScope
	}
	in, err := cleanProductInput(in)
	if err != nil {
		return nil, err
	}

	product, err := s.backend.CreateProduct(ctx, session.BusinessID, session.BusinessName, in)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to create product: %w", err)
	}

	s.refreshSnapshot(ctx, session.BusinessID)
	return product, nil
}

// UpdateProduct изменяет товар, принадлежащий бизнесу сессии
func (s *CatalogService) UpdateProduct(ctx context.Context, session domain.Session, id string, in domain.ProductInput) (*domain.Product, error) {
	in, err := cleanProductInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.ensureOwnProduct(ctx, session, id); err != nil {
		return nil, err
	}

	product, err := s.backend.UpdateProduct(ctx, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to update product %q: %w", id, err)
	}

	s.refreshSnapshot(ctx, session.BusinessID)
	return product, nil
}

// DeleteProduct удаляет товар, принадлежащий бизнесу сессии
func (s *CatalogService) DeleteProduct(ctx context.Context, session domain.Session, id string) error {
	if err := s.ensureOwnProduct(ctx, session, id); err != nil {
		return err
	}

	if err := s.backend.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("catalog service: failed to delete product %q: %w", id, err)
	}

	s.refreshSnapshot(ctx, session.BusinessID)
	return nil
}

// ensureOwnProduct товар чужого бизнеса выглядит как отсутствующий
func (s *CatalogService) ensureOwnProduct(ctx context.Context, session domain.Session, id string) error {
	if session.BusinessID == "" {
		return ErrSessionWithoutScope
	}

	products, err := s.backend.ListProducts(ctx, session.BusinessID, "")
	if err != nil {
		return fmt.Errorf("catalog service: failed to list products of %q: %w", session.BusinessID, err)
	}
	for _, p := range products {
		if p.ID == id {
			return nil
		}
	}
	return domain.ErrNotFound
}

// refreshSnapshot обновляет строки снимка бизнеса после изменения товаров.
// Ошибка только логируется: следующий проход синхронизации повторит обновление.
func (s *CatalogService) refreshSnapshot(ctx context.Context, businessID string) {
	products, err := s.backend.ListProducts(ctx, businessID, "")
	if err == nil {
		err = s.snapshot.ReplaceBusinessProducts(ctx, businessID, products)
	}
	if err != nil {
		s.logger.Warn("failed to refresh snapshot after product change",
			zap.String("business_id", businessID),
			zap.Error(err),
		)
	}
}

func cleanProductInput(in domain.ProductInput) (domain.ProductInput, error) {
	in.ItemCategory = strings.TrimSpace(in.ItemCategory)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Option = strings.TrimSpace(in.Option)
	if in.ItemCategory == "" || in.ProductName == "" || in.Price == nil {
		return in, domain.ErrIncompleteProduct
	}
	if *in.Price < 0 {
		return in, fmt.Errorf("%w: negative price", ErrInvalidInput)
	}
	return in, nil
}
