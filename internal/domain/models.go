package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Role представляет роль пользователя витрины
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleBusiness Role = "BUSINESS"
	RoleBuyer    Role = "BUYER"
)

// Valid сообщает, известна ли роль
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleBusiness, RoleBuyer:
		return true
	}
	return false
}

// PurchaseStatus представляет статус покупки
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusConfirmed PurchaseStatus = "CONFIRMED"
	PurchaseStatusCanceled  PurchaseStatus = "CANCELED"
)

// Settable сообщает, может ли статус быть выставлен явным действием.
// PENDING только начальный.
func (s PurchaseStatus) Settable() bool {
	return s == PurchaseStatusConfirmed || s == PurchaseStatusCanceled
}

// AccountKind тип учетной записи, которую одобряет администратор
type AccountKind string

const (
	AccountKindBusiness AccountKind = "business"
	AccountKindBuyer    AccountKind = "buyer"
)

// ParseAccountKind разбирает тип учетной записи из параметра пути
func ParseAccountKind(s string) (AccountKind, bool) {
	switch AccountKind(strings.ToLower(s)) {
	case AccountKindBusiness:
		return AccountKindBusiness, true
	case AccountKindBuyer:
		return AccountKindBuyer, true
	}
	return "", false
}

// Product представляет позицию каталога (одна строка SKU)
type Product struct {
	ID           string `json:"id"`
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	ItemCategory string `json:"itemCategory"`
	ProductName  string `json:"productName"`
	Option       string `json:"option"`
	Price        int64  `json:"price"`
}

// Purchase представляет покупку, оформленную покупателем
type Purchase struct {
	ID                  string         `json:"id"`
	BuyerID             string         `json:"buyerId"`
	BusinessID          string         `json:"businessId"`
	ItemCategory        string         `json:"itemCategory"`
	BusinessName        string         `json:"businessName"`
	ProductName         string         `json:"productName"`
	Option              string         `json:"option"`
	Price               int64          `json:"price"`
	DiscountOrSurcharge int64          `json:"discountOrSurcharge"`
	FinalPrice          int64          `json:"finalPrice"`
	Deposit             int64          `json:"deposit"`
	MiddlePayment       int64          `json:"middlePayment"`
	FinalPayment        int64          `json:"finalPayment"`
	ContractDate        *time.Time     `json:"contractDate"`
	InstallationDate    *time.Time     `json:"installationDate"`
	Note                string         `json:"note"`
	Status              PurchaseStatus `json:"status"`
	CreatedAt           *time.Time     `json:"createdAt"`

	// Поля отображения, которые бэкенд присоединяет к покупке
	BuyerName string `json:"buyerName,omitempty"`
	DongHo    string `json:"dongHo,omitempty"`
}

// RecomputeFinalPrice пересчитывает итоговую цену: price - discountOrSurcharge
func (p *Purchase) RecomputeFinalPrice() {
	p.FinalPrice = p.Price - p.DiscountOrSurcharge
}

// Account представляет учетную запись (бизнес, покупатель или админ)
type Account struct {
	ID       string      `json:"id"`
	UserID   string      `json:"userId"`
	Kind     AccountKind `json:"kind"`
	Name     string      `json:"name"`
	Phone    string      `json:"phoneNumber,omitempty"`
	Approved bool        `json:"approved"`

	// Профиль бизнеса
	BusinessNumber     string `json:"businessNumber,omitempty"`
	RepresentativeName string `json:"representativeName,omitempty"`
	Address            string `json:"address,omitempty"`

	// Профиль покупателя
	Dong           string `json:"dong,omitempty"`
	Ho             string `json:"ho,omitempty"`
	HouseholdCount int    `json:"householdCount,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`

	// Details содержит прочие поля профиля как есть
	Details map[string]any `json:"details,omitempty"`
}

// Session типизированная сессия, которая создается при входе
// и передается через контекст запроса
type Session struct {
	Role         Role   `json:"role"`
	UserID       string `json:"userId"`
	BusinessID   string `json:"businessId,omitempty"`
	BusinessName string `json:"businessName,omitempty"`

	// BackendToken токен удаленного бэкенда, если тот его выдал
	BackendToken string `json:"-"`
}

// Scope возвращает идентификатор, которым ограничены данные сессии:
// businessId для бизнеса, userId для остальных ролей
func (s Session) Scope() string {
	if s.Role == RoleBusiness && s.BusinessID != "" {
		return s.BusinessID
	}
	return s.UserID
}

// AuthResult результат входа, который получает клиент
type AuthResult struct {
	Token        string `json:"token"`
	Role         Role   `json:"role"`
	UserID       string `json:"userId"`
	BusinessName string `json:"businessName,omitempty"`
}

// LoginResult ответ бэкенда на вход
type LoginResult struct {
	Role         Role   `json:"role"`
	UserID       string `json:"userId"`
	BusinessName string `json:"businessName,omitempty"`
	Approved     *bool  `json:"approved,omitempty"`
	Token        string `json:"token,omitempty"`
}

// BuyerRegistration данные регистрации покупателя
type BuyerRegistration struct {
	UserID                string `json:"userId"`
	Password              string `json:"password"`
	Name                  string `json:"name"`
	PhoneNumber           string `json:"phoneNumber"`
	Dong                  string `json:"dong"`
	Ho                    string `json:"ho"`
	BirthDate             string `json:"birthDate,omitempty"`
	Gender                string `json:"gender"`
	HouseholdCount        int    `json:"householdCount"`
	PersonalInfoAgreement bool   `json:"personalInfoAgreement"`
}

// BusinessRegistration данные регистрации бизнеса
type BusinessRegistration struct {
	UserID             string `json:"userId"`
	Password           string `json:"password"`
	Name               string `json:"name"`
	BusinessNumber     string `json:"businessNumber"`
	RepresentativeName string `json:"representativeName"`
	Address            string `json:"address"`
	BusinessType       string `json:"businessType"`
	BusinessCategory   string `json:"businessCategory"`
	ManagerName        string `json:"managerName"`
	PhoneNumber        string `json:"phoneNumber"`
}

// BuyerProfile профиль покупателя
type BuyerProfile struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	PhoneNumber    string `json:"phoneNumber"`
	Dong           string `json:"dong"`
	Ho             string `json:"ho"`
	BirthDate      string `json:"birthDate,omitempty"`
	Gender         string `json:"gender"`
	HouseholdCount int    `json:"householdCount"`
}

// BuyerProfileUpdate изменение профиля покупателя
type BuyerProfileUpdate struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phoneNumber"`
	Dong           string `json:"dong"`
	Ho             string `json:"ho"`
	BirthDate      string `json:"birthDate,omitempty"`
	Gender         string `json:"gender"`
	HouseholdCount int    `json:"householdCount"`
	Password       string `json:"password,omitempty"`
}

// BuyerProfileChange изменение профиля в том виде, в котором его вводит покупатель
type BuyerProfileChange struct {
	Name            string `json:"name"`
	PhoneNumber     string `json:"phoneNumber"`
	DongHo          string `json:"dongHo"`
	BirthDate       string `json:"birthDate,omitempty"`
	Gender          string `json:"gender"`
	HouseholdCount  string `json:"householdCount"`
	NewPassword     string `json:"newPassword,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// PurchaseEdit поля покупки, которые покупатель может изменить после оформления
type PurchaseEdit struct {
	DiscountOrSurcharge int64      `json:"discountOrSurcharge"`
	Deposit             int64      `json:"deposit"`
	MiddlePayment       int64      `json:"middlePayment"`
	FinalPayment        int64      `json:"finalPayment"`
	ContractDate        *time.Time `json:"contractDate"`
	InstallationDate    *time.Time `json:"installationDate"`
	Note                string     `json:"note"`
}

// PurchaseFilter условия выборки покупок у бэкенда
type PurchaseFilter struct {
	BuyerID      string
	BusinessID   string
	ItemCategory string
	ProductName  string
	Option       string
	// ByOption включает выборку по конкретной опции товара
	ByOption bool
	// Field и Keyword серверный поиск админской таблицы
	Field   string
	Keyword string
}

// ProductInput поля товара, которые задает бизнес
type ProductInput struct {
	ItemCategory string `json:"itemCategory"`
	ProductName  string `json:"productName"`
	Option       string `json:"option"`
	Price        *int64 `json:"price"`
}

// DongHo адрес в формате "корпус / квартира"
type DongHo struct {
	Dong string
	Ho   string
}

var dongHoPattern = regexp.MustCompile(`^(\d+)동\s*(\d+)호$`)

// ParseDongHo разбирает строку вида "123동 456호"
func ParseDongHo(s string) (DongHo, error) {
	m := dongHoPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return DongHo{}, fmt.Errorf("%w: %q", ErrInvalidDongHo, s)
	}
	return DongHo{Dong: m[1], Ho: m[2]}, nil
}

// String форматирует адрес обратно в "123동 456호"
func (d DongHo) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s동 %s호", d.Dong, d.Ho))
}
