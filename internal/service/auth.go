package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/avc/storefront-gateway/internal/utils/bizno"
	"github.com/avc/storefront-gateway/internal/utils/jwt"
)

// AuthService реализует domain.AuthService
type AuthService struct {
	backend           domain.BackendClient
	jwtManager        *jwt.Manager
	minPasswordLength int
}

var _ domain.AuthService = (*AuthService)(nil)

// NewAuthService создает новый AuthService
func NewAuthService(
	backend domain.BackendClient,
	jwtManager *jwt.Manager,
	minPasswordLength int,
) *AuthService {
	return &AuthService{
		backend:           backend,
		jwtManager:        jwtManager,
		minPasswordLength: minPasswordLength,
	}
}

// Login проверяет учетные данные на бэкенде и выдает токен сессии
func (s *AuthService) Login(ctx context.Context, userID, password string) (*domain.AuthResult, error) {
	// Валидация входных данных
	userID = strings.TrimSpace(userID)
	if userID == "" || password == "" {
		return nil, fmt.Errorf("%w: empty user id or password", ErrInvalidInput)
	}

	res, err := s.backend.Login(ctx, userID, password)
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrAccountNotApproved) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to login %q: %w", userID, err)
	}

	if !res.Role.Valid() {
		return nil, fmt.Errorf("auth service: backend returned unknown role %q for %q", res.Role, userID)
	}
	if res.Role != domain.RoleAdmin && res.Approved != nil && !*res.Approved {
		return nil, domain.ErrAccountNotApproved
	}

	// Идентификатор бэкенда служит ключом покупателя в покупках,
	// введенный логин используется только если бэкенд его не вернул
	accountID := res.UserID
	if accountID == "" {
		accountID = userID
	}

	session := domain.Session{
		Role:         res.Role,
		UserID:       accountID,
		BackendToken: res.Token,
	}
	if res.Role == domain.RoleBusiness {
		session.BusinessID = res.UserID
		session.BusinessName = res.BusinessName
	}

	token, err := s.jwtManager.Generate(session)
	if err != nil {
		return nil, fmt.Errorf("auth service: failed to generate token for %q: %w", userID, err)
	}

	return &domain.AuthResult{
		Token:        token,
		Role:         session.Role,
		UserID:       session.UserID,
		BusinessName: session.BusinessName,
	}, nil
}

// RegisterBuyer проверяет анкету покупателя и передает ее бэкенду
func (s *AuthService) RegisterBuyer(ctx context.Context, reg domain.BuyerRegistration) error {
	reg.UserID = strings.TrimSpace(reg.UserID)
	if err := required(reg.UserID, reg.Password, reg.Name, reg.PhoneNumber, reg.Dong, reg.Ho); err != nil {
		return err
	}
	if err := s.checkPassword(reg.Password); err != nil {
		return err
	}
	if reg.HouseholdCount < 0 {
		return ErrInvalidHousehold
	}
	if !reg.PersonalInfoAgreement {
		return ErrConsentRequired
	}

	if err := s.backend.RegisterBuyer(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return err
		}
		return fmt.Errorf("auth service: failed to register buyer %q: %w", reg.UserID, err)
	}
	return nil
}

// RegisterBusiness проверяет анкету бизнеса и номер регистрации
func (s *AuthService) RegisterBusiness(ctx context.Context, reg domain.BusinessRegistration) error {
	reg.UserID = strings.TrimSpace(reg.UserID)
	if err := required(reg.UserID, reg.Password, reg.Name, reg.BusinessNumber); err != nil {
		return err
	}
	if err := s.checkPassword(reg.Password); err != nil {
		return err
	}

	reg.BusinessNumber = bizno.Normalize(reg.BusinessNumber)
	if !bizno.Validate(reg.BusinessNumber) {
		return domain.ErrInvalidBusinessNumber
	}

	if err := s.backend.RegisterBusiness(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return err
		}
		return fmt.Errorf("auth service: failed to register business %q: %w", reg.UserID, err)
	}
	return nil
}

// Me возвращает профиль покупателя текущей сессии
func (s *AuthService) Me(ctx context.Context, session domain.Session) (*domain.BuyerProfile, error) {
	if session.Role != domain.RoleBuyer {
		return nil, domain.ErrForbidden
	}

	profile, err := s.backend.GetBuyerProfile(ctx, session.BackendToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth service: failed to get profile of %q: %w", session.UserID, err)
	}
	if profile.UserID == "" {
		profile.UserID = session.UserID
	}
	return profile, nil
}

// UpdateProfile разбирает введенные покупателем поля и сохраняет профиль.
// Пароль меняется, только если указан новый.
func (s *AuthService) UpdateProfile(ctx context.Context, session domain.Session, change domain.BuyerProfileChange) error {
	if session.Role != domain.RoleBuyer {
		return domain.ErrForbidden
	}
	if err := required(change.Name, change.PhoneNumber); err != nil {
		return err
	}

	dongHo, err := domain.ParseDongHo(change.DongHo)
	if err != nil {
		return err
	}

	household, err := parseHouseholdCount(change.HouseholdCount)
	if err != nil {
		return err
	}

	upd := domain.BuyerProfileUpdate{
		Name:           strings.TrimSpace(change.Name),
		PhoneNumber:    strings.TrimSpace(change.PhoneNumber),
		Dong:           dongHo.Dong,
		Ho:             dongHo.Ho,
		BirthDate:      change.BirthDate,
		Gender:         change.Gender,
		HouseholdCount: household,
	}

	if change.NewPassword != "" || change.ConfirmPassword != "" {
		if err := s.checkPassword(change.NewPassword); err != nil {
			return err
		}
		if change.NewPassword != change.ConfirmPassword {
			return ErrPasswordMismatch
		}
		upd.Password = change.NewPassword
	}

	if err := s.backend.UpdateBuyerProfile(ctx, session.BackendToken, upd); err != nil {
		return fmt.Errorf("auth service: failed to update profile of %q: %w", session.UserID, err)
	}
	return nil
}

func (s *AuthService) checkPassword(password string) error {
	if utf8.RuneCountInString(password) < s.minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func required(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%w: required field is empty", ErrInvalidInput)
		}
	}
	return nil
}

// parseHouseholdCount пустая строка означает 0
func parseHouseholdCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrInvalidHousehold
	}
	return n, nil
}
