package domain

import (
	"context"
	"time"
)

// BackendClient определяет методы удаленного REST бэкенда витрины.
// Все списки возвращаются уже нормализованными.
type BackendClient interface {
	Login(ctx context.Context, userID, password string) (*LoginResult, error)
	RegisterBuyer(ctx context.Context, reg BuyerRegistration) error
	RegisterBusiness(ctx context.Context, reg BusinessRegistration) error
	GetBuyerProfile(ctx context.Context, backendToken string) (*BuyerProfile, error)
	UpdateBuyerProfile(ctx context.Context, backendToken string, upd BuyerProfileUpdate) error

	ListProducts(ctx context.Context, businessID, search string) ([]Product, error)
	ListAllProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, businessID, businessName string, in ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, id string, in ProductInput) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListPurchases(ctx context.Context, filter PurchaseFilter) ([]Purchase, error)
	GetPurchase(ctx context.Context, id string) (*Purchase, error)
	GetAdminPurchase(ctx context.Context, id string) (*Purchase, error)
	CreatePurchase(ctx context.Context, p Purchase) (*Purchase, error)
	UpdatePurchase(ctx context.Context, p Purchase) (*Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
	UpdatePurchaseStatus(ctx context.Context, id string, status PurchaseStatus) error

	ListAccounts(ctx context.Context, kind AccountKind, approved *bool) ([]Account, error)
	GetAccount(ctx context.Context, kind AccountKind, id string) (*Account, error)
	ApproveAccount(ctx context.Context, kind AccountKind, id string) error
}

// SnapshotRepository определяет методы работы с локальным снимком каталога
type SnapshotRepository interface {
	ReplaceBusinessProducts(ctx context.Context, businessID string, products []Product) error
	ListProducts(ctx context.Context) ([]Product, error)
	RetainBusinesses(ctx context.Context, businessIDs []string) (int64, error)
}

// SyncStateRepository определяет методы учета синхронизации снимка
type SyncStateRepository interface {
	RecordSuccess(ctx context.Context, businessID string, productCount int) error
	RecordFailure(ctx context.Context, businessID string, syncErr error) error
	ListFresh(ctx context.Context, within time.Duration) ([]string, error)
}

// EventPublisher публикует события изменения покупок
type EventPublisher interface {
	PurchaseStatusChanged(ctx context.Context, p Purchase, from PurchaseStatus, actor string)
}

// AuthService определяет методы аутентификации и профиля
type AuthService interface {
	Login(ctx context.Context, userID, password string) (*AuthResult, error)
	RegisterBuyer(ctx context.Context, reg BuyerRegistration) error
	RegisterBusiness(ctx context.Context, reg BusinessRegistration) error
	Me(ctx context.Context, s Session) (*BuyerProfile, error)
	UpdateProfile(ctx context.Context, s Session, change BuyerProfileChange) error
}
