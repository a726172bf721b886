package catalog

import (
	"strconv"
	"time"

	"github.com/avc/storefront-gateway/internal/domain"
)

func formatMoney(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// PurchaseTable колонки таблиц покупок
func PurchaseTable() *Table[domain.Purchase] {
	return NewTable(
		Column[domain.Purchase]{Name: "contractDate", Kind: KindDate, Value: func(p domain.Purchase) string { return formatDate(p.ContractDate) }},
		Column[domain.Purchase]{Name: "installationDate", Kind: KindDate, Value: func(p domain.Purchase) string { return formatDate(p.InstallationDate) }},
		Column[domain.Purchase]{Name: "createdAt", Kind: KindDate, Value: func(p domain.Purchase) string { return formatDate(p.CreatedAt) }},
		Column[domain.Purchase]{Name: "buyerName", Value: func(p domain.Purchase) string { return p.BuyerName }},
		Column[domain.Purchase]{Name: "dongHo", Value: func(p domain.Purchase) string { return p.DongHo }},
		Column[domain.Purchase]{Name: "businessName", Value: func(p domain.Purchase) string { return p.BusinessName }},
		Column[domain.Purchase]{Name: "itemCategory", Value: func(p domain.Purchase) string { return p.ItemCategory }},
		Column[domain.Purchase]{Name: "productName", Value: func(p domain.Purchase) string { return p.ProductName }},
		Column[domain.Purchase]{Name: "option", Value: func(p domain.Purchase) string { return p.Option }},
		Column[domain.Purchase]{Name: "status", Value: func(p domain.Purchase) string { return string(p.Status) }},
		Column[domain.Purchase]{Name: "note", Value: func(p domain.Purchase) string { return p.Note }},
		Column[domain.Purchase]{Name: "id", Value: func(p domain.Purchase) string { return p.ID }},
		Column[domain.Purchase]{Name: "buyerId", Value: func(p domain.Purchase) string { return p.BuyerID }},
		Column[domain.Purchase]{Name: "businessId", Value: func(p domain.Purchase) string { return p.BusinessID }},
		// Денежные поля сравниваются как строки, как и все не-даты
		Column[domain.Purchase]{Name: "price", Value: func(p domain.Purchase) string { return formatMoney(p.Price) }},
		Column[domain.Purchase]{Name: "discountOrSurcharge", Value: func(p domain.Purchase) string { return formatMoney(p.DiscountOrSurcharge) }},
		Column[domain.Purchase]{Name: "finalPrice", Value: func(p domain.Purchase) string { return formatMoney(p.FinalPrice) }},
		Column[domain.Purchase]{Name: "deposit", Value: func(p domain.Purchase) string { return formatMoney(p.Deposit) }},
		Column[domain.Purchase]{Name: "middlePayment", Value: func(p domain.Purchase) string { return formatMoney(p.MiddlePayment) }},
		Column[domain.Purchase]{Name: "finalPayment", Value: func(p domain.Purchase) string { return formatMoney(p.FinalPayment) }},
	)
}

// AccountTable колонки таблиц учетных записей
func AccountTable() *Table[domain.Account] {
	return NewTable(
		Column[domain.Account]{Name: "userId", Value: func(a domain.Account) string { return a.UserID }},
		Column[domain.Account]{Name: "name", Value: func(a domain.Account) string { return a.Name }},
		Column[domain.Account]{Name: "businessNumber", Value: func(a domain.Account) string { return a.BusinessNumber }},
		Column[domain.Account]{Name: "representativeName", Value: func(a domain.Account) string { return a.RepresentativeName }},
		Column[domain.Account]{Name: "address", Value: func(a domain.Account) string { return a.Address }},
		Column[domain.Account]{Name: "phoneNumber", Value: func(a domain.Account) string { return a.Phone }},
		Column[domain.Account]{Name: "dong", Value: func(a domain.Account) string { return a.Dong }},
		Column[domain.Account]{Name: "ho", Value: func(a domain.Account) string { return a.Ho }},
		Column[domain.Account]{Name: "householdCount", Value: func(a domain.Account) string { return strconv.Itoa(a.HouseholdCount) }},
		Column[domain.Account]{Name: "createdAt", Kind: KindDate, Value: func(a domain.Account) string { return formatDate(a.CreatedAt) }},
	)
}

// Totals суммы по текущему отфильтрованному набору
type Totals struct {
	FinalPrice int64 `json:"finalPrice"`
	Deposit    int64 `json:"deposit"`
}

// PurchaseTotals суммирует finalPrice и deposit по переданным строкам
func PurchaseTotals(rows []domain.Purchase) Totals {
	var t Totals
	for _, p := range rows {
		t.FinalPrice += p.FinalPrice
		t.Deposit += p.Deposit
	}
	return t
}

// Query параметры табличного представления
type Query struct {
	SearchField string
	Term        string
	Sort        SortState
}

// PurchaseView строки и итоги таблицы покупок
type PurchaseView struct {
	Rows     []domain.Purchase `json:"rows"`
	Totals   Totals            `json:"totals"`
	Sort     SortState         `json:"sort"`
	NextSort SortState         `json:"next_sort"`
}

// appliedSort возвращает состояние сортировки, которое действительно применено.
// Неизвестное поле не сортирует, поэтому отдается пустое состояние.
func appliedSort[T any](t *Table[T], s SortState) (applied, next SortState) {
	if !t.HasColumn(s.Field) {
		return SortState{}, SortState{}
	}
	return s, s.Toggle(s.Field)
}

// ViewPurchases применяет поиск, затем сортировку, затем считает итоги
// по получившемуся набору
func ViewPurchases(records []domain.Purchase, q Query) PurchaseView {
	t := PurchaseTable()
	rows := t.SortBy(t.Search(records, q.SearchField, q.Term), q.Sort.Field, q.Sort.Order)
	applied, next := appliedSort(t, q.Sort)
	return PurchaseView{
		Rows:     rows,
		Totals:   PurchaseTotals(rows),
		Sort:     applied,
		NextSort: next,
	}
}

// AccountView строки таблицы учетных записей
type AccountView struct {
	Rows     []domain.Account `json:"rows"`
	Sort     SortState        `json:"sort"`
	NextSort SortState        `json:"next_sort"`
}

// ViewAccounts применяет поиск и сортировку к учетным записям
func ViewAccounts(records []domain.Account, q Query) AccountView {
	t := AccountTable()
	rows := t.SortBy(t.Search(records, q.SearchField, q.Term), q.Sort.Field, q.Sort.Order)
	applied, next := appliedSort(t, q.Sort)
	return AccountView{
		Rows:     rows,
		Sort:     applied,
		NextSort: next,
	}
}
