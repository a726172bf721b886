// Package catalog содержит чистые функции, которые превращают плоские списки
// записей бэкенда в производные представления экранов: каскадные фильтры,
// дерево категорий, расчет платежей и табличную сортировку с поиском.
//
// Пакет не хранит состояние и не выполняет ввод-вывод. Все функции тотальны:
// для любого корректно типизированного входа возвращают значение по умолчанию
// (0, пустой список) вместо ошибки или паники.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// RawRecord запись бэкенда в слабо типизированном виде.
// Числа ожидаются как json.Number (декодер с UseNumber), но float64 тоже допустим.
type RawRecord map[string]any

// NormalizeResult результат нормализации пачки записей
type NormalizeResult[T any] struct {
	Records []T
	// Dropped количество записей без обязательных идентификаторов
	Dropped int
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NormalizeProducts приводит записи товаров к каноническому виду.
// Запись без businessId или productName отбрасывается и учитывается в Dropped.
func NormalizeProducts(raw []RawRecord) NormalizeResult[domain.Product] {
	res := NormalizeResult[domain.Product]{Records: make([]domain.Product, 0, len(raw))}
	for _, r := range raw {
		p, ok := NormalizeProduct(r)
		if !ok {
			res.Dropped++
			continue
		}
		res.Records = append(res.Records, p)
	}
	return res
}

// NormalizeProduct приводит одну запись товара. Отрицательная цена становится 0.
func NormalizeProduct(r RawRecord) (domain.Product, bool) {
	businessID := r.str("businessId")
	productName := r.str("productName")
	if businessID == "" || productName == "" {
		return domain.Product{}, false
	}

	price := r.amount("price")
	if price < 0 {
		price = 0
	}

	return domain.Product{
		ID:           r.id(),
		BusinessID:   businessID,
		BusinessName: r.str("businessName"),
		ItemCategory: r.str("itemCategory"),
		ProductName:  productName,
		Option:       r.str("option"),
		Price:        price,
	}, true
}

// NormalizePurchases приводит записи покупок к каноническому виду.
// Запись без идентификатора отбрасывается.
func NormalizePurchases(raw []RawRecord) NormalizeResult[domain.Purchase] {
	res := NormalizeResult[domain.Purchase]{Records: make([]domain.Purchase, 0, len(raw))}
	for _, r := range raw {
		p, ok := NormalizePurchase(r)
		if !ok {
			res.Dropped++
			continue
		}
		res.Records = append(res.Records, p)
	}
	return res
}

// NormalizePurchase нормализует одну покупку
func NormalizePurchase(r RawRecord) (domain.Purchase, bool) {
	id := r.id()
	if id == "" {
		return domain.Purchase{}, false
	}

	status := domain.PurchaseStatus(strings.ToUpper(r.str("status")))
	switch status {
	case domain.PurchaseStatusPending, domain.PurchaseStatusConfirmed, domain.PurchaseStatusCanceled:
	default:
		status = domain.PurchaseStatusPending
	}

	return domain.Purchase{
		ID:                  id,
		BuyerID:             r.str("buyerId"),
		BusinessID:          r.str("businessId"),
		ItemCategory:        r.str("itemCategory"),
		BusinessName:        r.str("businessName"),
		ProductName:         r.str("productName"),
		Option:              r.str("option"),
		Price:               r.amount("price"),
		DiscountOrSurcharge: r.amount("discountOrSurcharge"),
		FinalPrice:          r.amount("finalPrice"),
		Deposit:             r.amount("deposit"),
		MiddlePayment:       r.amount("middlePayment"),
		FinalPayment:        r.amount("finalPayment"),
		ContractDate:        r.date("contractDate"),
		InstallationDate:    r.date("installationDate"),
		Note:                r.str("note"),
		Status:              status,
		CreatedAt:           r.date("createdAt"),
		BuyerName:           r.str("buyerName"),
		DongHo:              r.str("dongHo"),
	}, true
}

// hiddenAccountFields поля, которые не показываются в карточке учетной записи
var hiddenAccountFields = map[string]struct{}{
	"_id":                   {},
	"role":                  {},
	"approved":              {},
	"updatedAt":             {},
	"__v":                   {},
	"personalInfoAgreement": {},
	"password":              {},
}

// NormalizeAccounts приводит учетные записи к каноническому виду.
// Запись без идентификатора или userId отбрасывается.
func NormalizeAccounts(kind domain.AccountKind, raw []RawRecord) NormalizeResult[domain.Account] {
	res := NormalizeResult[domain.Account]{Records: make([]domain.Account, 0, len(raw))}
	for _, r := range raw {
		a, ok := NormalizeAccount(kind, r)
		if !ok {
			res.Dropped++
			continue
		}
		res.Records = append(res.Records, a)
	}
	return res
}

// NormalizeAccount нормализует одну учетную запись
func NormalizeAccount(kind domain.AccountKind, r RawRecord) (domain.Account, bool) {
	id := r.id()
	userID := r.str("userId")
	if id == "" || userID == "" {
		return domain.Account{}, false
	}

	details := make(map[string]any)
	for k, v := range r {
		if _, hidden := hiddenAccountFields[k]; hidden || k == "id" || v == nil {
			continue
		}
		details[k] = v
	}

	return domain.Account{
		ID:                 id,
		UserID:             userID,
		Kind:               kind,
		Name:               r.str("name"),
		Phone:              r.str("phoneNumber"),
		Approved:           r.boolean("approved"),
		BusinessNumber:     r.str("businessNumber"),
		RepresentativeName: r.str("representativeName"),
		Address:            r.str("address"),
		Dong:               r.str("dong"),
		Ho:                 r.str("ho"),
		HouseholdCount:     int(r.amount("householdCount")),
		CreatedAt:          r.date("createdAt"),
		Details:            details,
	}, true
}

// NormalizeBuyerProfile приводит профиль покупателя. birthDate обрезается до даты.
func NormalizeBuyerProfile(r RawRecord) domain.BuyerProfile {
	birth := r.str("birthDate")
	if len(birth) > 10 {
		birth = birth[:10]
	}
	return domain.BuyerProfile{
		UserID:         r.str("userId"),
		Name:           r.str("name"),
		PhoneNumber:    r.str("phoneNumber"),
		Dong:           r.str("dong"),
		Ho:             r.str("ho"),
		BirthDate:      birth,
		Gender:         r.str("gender"),
		HouseholdCount: int(r.amount("householdCount")),
	}
}

func (r RawRecord) id() string {
	if id := r.str("_id"); id != "" {
		return id
	}
	return r.str("id")
}

func (r RawRecord) str(key string) string {
	switch v := r[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

func (r RawRecord) boolean(key string) bool {
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	}
	return false
}

// amount разбирает денежное поле в целые единицы валюты.
// Дробная часть отбрасывается в сторону минус бесконечности.
func (r RawRecord) amount(key string) int64 {
	var (
		d   decimal.Decimal
		err error
	)
	switch v := r[key].(type) {
	case json.Number:
		d, err = decimal.NewFromString(v.String())
	case float64:
		d = decimal.NewFromFloat(v)
	case int:
		return int64(v)
	case int64:
		return v
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if s == "" {
			return 0
		}
		d, err = decimal.NewFromString(s)
	default:
		return 0
	}
	if err != nil {
		return 0
	}
	return d.Floor().IntPart()
}

func (r RawRecord) date(key string) *time.Time {
	s := r.str(key)
	if s == "" {
		return nil
	}
	return ParseDate(s)
}

// ParseDate разбирает дату в одном из поддерживаемых форматов.
// Нераспознанная строка дает nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
