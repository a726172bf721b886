package handlers

import (
	"context"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/avc/storefront-gateway/internal/service"
)

// CatalogService определяет методы каталога, которые нужны обработчикам
type CatalogService interface {
	Options(ctx context.Context, level catalog.Level, sel catalog.Selection) ([]string, error)
	Price(ctx context.Context, sel catalog.Selection) (int64, error)
	BusinessTree(ctx context.Context, session domain.Session, search string) (catalog.CategoryTree, error)
	CreateProduct(ctx context.Context, session domain.Session, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, session domain.Session, id string, in domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, session domain.Session, id string) error
}

// PurchaseService определяет методы работы с покупками
type PurchaseService interface {
	Quote(ctx context.Context, draft catalog.Draft, actions []catalog.Action) (catalog.DraftView, error)
	Create(ctx context.Context, session domain.Session, draft catalog.Draft) (*domain.Purchase, error)
	Get(ctx context.Context, session domain.Session, id string) (*domain.Purchase, error)
	Update(ctx context.Context, session domain.Session, id string, edit domain.PurchaseEdit) (*domain.Purchase, error)
	Delete(ctx context.Context, session domain.Session, id string) error
	ListForBuyer(ctx context.Context, session domain.Session, q catalog.Query) (catalog.PurchaseView, error)
	ListForOption(ctx context.Context, session domain.Session, opt service.OptionFilter, q catalog.Query) (catalog.PurchaseView, error)
	ListAll(ctx context.Context, q catalog.Query) (catalog.PurchaseView, error)
	UpdateStatus(ctx context.Context, session domain.Session, id string, status domain.PurchaseStatus) (*domain.Purchase, error)
}

// AdminService определяет методы управления учетными записями
type AdminService interface {
	Accounts(ctx context.Context, kind domain.AccountKind, approved *bool, q catalog.Query) (catalog.AccountView, error)
	Account(ctx context.Context, kind domain.AccountKind, id string) (*domain.Account, error)
	Approve(ctx context.Context, kind domain.AccountKind, id string) error
}

var (
	_ CatalogService  = (*service.CatalogService)(nil)
	_ PurchaseService = (*service.PurchaseService)(nil)
	_ AdminService    = (*service.AdminService)(nil)
)
