package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"go.uber.org/zap"
)

// AdminService управляет учетными записями бизнесов и покупателей
type AdminService struct {
	backend domain.BackendClient
	logger  *zap.Logger
}

// NewAdminService создает новый AdminService
func NewAdminService(backend domain.BackendClient, logger *zap.Logger) *AdminService {
	return &AdminService{
		backend: backend,
		logger:  logger,
	}
}

// Accounts возвращает таблицу учетных записей. approved == nil означает все записи.
func (s *AdminService) Accounts(ctx context.Context, kind domain.AccountKind, approved *bool, q catalog.Query) (catalog.AccountView, error) {
	accounts, err := s.backend.ListAccounts(ctx, kind, approved)
	if err != nil {
		return catalog.AccountView{}, fmt.Errorf("admin service: failed to list %s accounts: %w", kind, err)
	}
	return catalog.ViewAccounts(accounts, q), nil
}

// Account возвращает учетную запись без служебных полей
func (s *AdminService) Account(ctx context.Context, kind domain.AccountKind, id string) (*domain.Account, error) {
	acc, err := s.backend.GetAccount(ctx, kind, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("admin service: failed to get %s %q: %w", kind, id, err)
	}
	return acc, nil
}

// Approve одобряет учетную запись. Одобрение необратимо,
// повторное одобрение возвращает ErrAlreadyApproved.
func (s *AdminService) Approve(ctx context.Context, kind domain.AccountKind, id string) error {
	acc, err := s.Account(ctx, kind, id)
	if err != nil {
		return err
	}
	if acc.Approved {
		return domain.ErrAlreadyApproved
	}

	if err := s.backend.ApproveAccount(ctx, kind, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
			return err
		}
		return fmt.Errorf("admin service: failed to approve %s %q: %w", kind, id, err)
	}

	s.logger.Info("account approved", zap.String("kind", string(kind)), zap.String("id", id))
	return nil
}
