package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"go.uber.org/zap"
)

// OptionFilter товар и опция, по которым бизнес смотрит покупки
type OptionFilter struct {
	ItemCategory string
	ProductName  string
	Option       string
}

// PurchaseService оформляет покупки и строит их табличные представления
type PurchaseService struct {
	backend   domain.BackendClient
	catalog   *CatalogService
	resolver  *catalog.Resolver
	publisher domain.EventPublisher
	logger    *zap.Logger
}

// NewPurchaseService создает новый PurchaseService
func NewPurchaseService(
	backend domain.BackendClient,
	catalogService *CatalogService,
	resolver *catalog.Resolver,
	publisher domain.EventPublisher,
	logger *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		backend:   backend,
		catalog:   catalogService,
		resolver:  resolver,
		publisher: publisher,
		logger:    logger,
	}
}

// Quote применяет действия к черновику по порядку и пересчитывает его
func (s *PurchaseService) Quote(ctx context.Context, draft catalog.Draft, actions []catalog.Action) (catalog.DraftView, error) {
	for _, a := range actions {
		draft = draft.Apply(a)
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return catalog.DraftView{}, err
	}
	return s.resolver.Recompute(draft, products), nil
}

// Create оформляет покупку. Цена и суммы платежей всегда пересчитываются
// по каталогу, присланные клиентом значения не используются.
func (s *PurchaseService) Create(ctx context.Context, session domain.Session, draft catalog.Draft) (*domain.Purchase, error) {
	if !draft.Selection.Complete() {
		return nil, domain.ErrIncompleteProduct
	}

	contractDate, err := optionalDate(draft.ContractDate)
	if err != nil {
		return nil, err
	}
	installationDate, err := optionalDate(draft.InstallationDate)
	if err != nil {
		return nil, err
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}
	match, ok := catalog.UniqueMatch(draft.Selection, products)
	if !ok {
		return nil, domain.ErrIncompleteProduct
	}

	p := domain.Purchase{
		BuyerID:             session.UserID,
		BusinessID:          match.BusinessID,
		ItemCategory:        match.ItemCategory,
		BusinessName:        match.BusinessName,
		ProductName:         match.ProductName,
		Option:              match.Option,
		Price:               match.Price,
		DiscountOrSurcharge: draft.DiscountOrSurcharge,
		ContractDate:        contractDate,
		InstallationDate:    installationDate,
		Note:                strings.TrimSpace(draft.Note),
		Status:              domain.PurchaseStatusPending,
	}
	p.RecomputeFinalPrice()

	amounts := draft.Payments.Amounts(p.FinalPrice)
	p.Deposit = amounts.Deposit
	p.MiddlePayment = amounts.MiddlePayment
	p.FinalPayment = amounts.FinalPayment

	created, err := s.backend.CreatePurchase(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("purchase service: failed to create purchase for %q: %w", session.UserID, err)
	}

	s.logger.Info("purchase created",
		zap.String("purchase_id", created.ID),
		zap.String("buyer_id", created.BuyerID),
		zap.String("business_id", created.BusinessID),
		zap.Int64("final_price", created.FinalPrice),
	)
	return created, nil
}

// Get возвращает покупку, если сессия имеет к ней доступ
func (s *PurchaseService) Get(ctx context.Context, session domain.Session, id string) (*domain.Purchase, error) {
	if session.Role == domain.RoleAdmin {
		p, err := s.backend.GetAdminPurchase(ctx, id)
		if err != nil {
			return nil, s.wrapGet(id, err)
		}
		return p, nil
	}

	p, err := s.backend.GetPurchase(ctx, id)
	if err != nil {
		return nil, s.wrapGet(id, err)
	}
	if !canAccess(session, p) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// Update применяет правку покупателя и пересчитывает итоговую цену
func (s *PurchaseService) Update(ctx context.Context, session domain.Session, id string, edit domain.PurchaseEdit) (*domain.Purchase, error) {
	p, err := s.Get(ctx, session, id)
	if err != nil {
		return nil, err
	}

	p.DiscountOrSurcharge = edit.DiscountOrSurcharge
	p.Deposit = edit.Deposit
	p.MiddlePayment = edit.MiddlePayment
	p.FinalPayment = edit.FinalPayment
	p.ContractDate = edit.ContractDate
	p.InstallationDate = edit.InstallationDate
	p.Note = strings.TrimSpace(edit.Note)
	p.RecomputeFinalPrice()

	updated, err := s.backend.UpdatePurchase(ctx, *p)
	if err != nil {
		return nil, fmt.Errorf("purchase service: failed to update purchase %q: %w", id, err)
	}
	return updated, nil
}

// Delete удаляет покупку покупателя
func (s *PurchaseService) Delete(ctx context.Context, session domain.Session, id string) error {
	if _, err := s.Get(ctx, session, id); err != nil {
		return err
	}

	if err := s.backend.DeletePurchase(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("purchase service: failed to delete purchase %q: %w", id, err)
	}
	return nil
}

// ListForBuyer возвращает покупки покупателя сессии
func (s *PurchaseService) ListForBuyer(ctx context.Context, session domain.Session, q catalog.Query) (catalog.PurchaseView, error) {
	return s.view(ctx, domain.PurchaseFilter{BuyerID: session.UserID}, q)
}

// ListForOption возвращает покупки конкретной опции товара бизнеса сессии
func (s *PurchaseService) ListForOption(ctx context.Context, session domain.Session, opt OptionFilter, q catalog.Query) (catalog.PurchaseView, error) {
	if session.BusinessID == "" {
		return catalog.PurchaseView{}, ErrSessionWithoutScope
	}
	if opt.ItemCategory == "" || opt.ProductName == "" {
		return catalog.PurchaseView{}, fmt.Errorf("%w: item category and product name are required", ErrInvalidInput)
	}

	return s.view(ctx, domain.PurchaseFilter{
		BusinessID:   session.BusinessID,
		ItemCategory: opt.ItemCategory,
		ProductName:  opt.ProductName,
		Option:       opt.Option,
		ByOption:     true,
	}, q)
}

// ListAll возвращает все покупки для администратора. Поиск передается
// бэкенду и повторяется локально с той же семантикой.
func (s *PurchaseService) ListAll(ctx context.Context, q catalog.Query) (catalog.PurchaseView, error) {
	filter := domain.PurchaseFilter{}
	if strings.TrimSpace(q.Term) != "" {
		filter.Field = q.SearchField
		filter.Keyword = q.Term
	}
	return s.view(ctx, filter, q)
}

// UpdateStatus подтверждает или отменяет покупку. Повторная установка
// текущего статуса ничего не меняет и не публикует событие.
func (s *PurchaseService) UpdateStatus(ctx context.Context, session domain.Session, id string, status domain.PurchaseStatus) (*domain.Purchase, error) {
	if !status.Settable() {
		return nil, domain.ErrInvalidStatus
	}

	p, err := s.Get(ctx, session, id)
	if err != nil {
		return nil, err
	}
	if p.Status == status {
		return p, nil
	}

	if err := s.backend.UpdatePurchaseStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("purchase service: failed to set status %s on %q: %w", status, id, err)
	}

	from := p.Status
	p.Status = status
	s.publisher.PurchaseStatusChanged(ctx, *p, from, session.UserID)

	s.logger.Info("purchase status changed",
		zap.String("purchase_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(status)),
	)
	return p, nil
}

func (s *PurchaseService) view(ctx context.Context, filter domain.PurchaseFilter, q catalog.Query) (catalog.PurchaseView, error) {
	purchases, err := s.backend.ListPurchases(ctx, filter)
	if err != nil {
		return catalog.PurchaseView{}, fmt.Errorf("purchase service: failed to list purchases: %w", err)
	}
	return catalog.ViewPurchases(purchases, q), nil
}

func (s *PurchaseService) wrapGet(id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrForbidden) {
		return err
	}
	return fmt.Errorf("purchase service: failed to get purchase %q: %w", id, err)
}

// canAccess покупатель видит свои покупки, бизнес видит покупки своих товаров
func canAccess(session domain.Session, p *domain.Purchase) bool {
	switch session.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleBuyer:
		return p.BuyerID == session.UserID
	case domain.RoleBusiness:
		return session.BusinessID != "" && p.BusinessID == session.BusinessID
	}
	return false
}

func optionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t := catalog.ParseDate(s)
	if t == nil {
		return nil, fmt.Errorf("%w: unrecognized date %q", ErrInvalidInput, s)
	}
	return t, nil
}
