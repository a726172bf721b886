package catalog

import (
	"github.com/avc/storefront-gateway/internal/domain"
)

// Draft состояние формы покупки до отправки
type Draft struct {
	Selection           Selection `json:"selection"`
	DiscountOrSurcharge int64     `json:"discountOrSurcharge"`
	Payments            Split     `json:"payments"`
	ContractDate        string    `json:"contractDate,omitempty"`
	InstallationDate    string    `json:"installationDate,omitempty"`
	Note                string    `json:"note,omitempty"`
}

// DraftView производное состояние формы покупки
type DraftView struct {
	Draft      Draft               `json:"draft"`
	Options    map[string][]string `json:"options"`
	Price      int64               `json:"price"`
	FinalPrice int64               `json:"finalPrice"`
	Amounts    SplitAmounts        `json:"amounts"`
	// Matched найдена ли ровно одна строка каталога
	Matched bool `json:"matched"`
}

// ActionKind вид изменения формы
type ActionKind string

const (
	ActionSelect       ActionKind = "select"
	ActionDiscount     ActionKind = "discount"
	ActionPayment      ActionKind = "payment"
	ActionManualAmount ActionKind = "manual_amount"
	ActionBackToSelect ActionKind = "back_to_select"
	ActionReset        ActionKind = "reset"
)

// PaymentSlot какое из трех полей платежа меняется
type PaymentSlot string

const (
	SlotDeposit PaymentSlot = "deposit"
	SlotMiddle  PaymentSlot = "middlePayment"
	SlotFinal   PaymentSlot = "finalPayment"
)

// Action одно изменение формы
type Action struct {
	Kind   ActionKind  `json:"kind"`
	Level  string      `json:"level,omitempty"`
	Value  string      `json:"value,omitempty"`
	Slot   PaymentSlot `json:"slot,omitempty"`
	Amount int64       `json:"amount,omitempty"`
}

// Apply применяет действие и возвращает новый черновик.
// Неизвестное действие оставляет черновик без изменений.
func (d Draft) Apply(a Action) Draft {
	switch a.Kind {
	case ActionSelect:
		lvl, ok := ParseLevel(a.Level)
		if !ok {
			return d
		}
		d.Selection = d.Selection.With(lvl, a.Value)
	case ActionDiscount:
		d.DiscountOrSurcharge = a.Amount
	case ActionPayment:
		d.Payments = d.Payments.update(a.Slot, func(f PaymentField) PaymentField { return f.Choose(a.Value) })
	case ActionManualAmount:
		d.Payments = d.Payments.update(a.Slot, func(f PaymentField) PaymentField { return f.SetManual(a.Amount) })
	case ActionBackToSelect:
		d.Payments = d.Payments.update(a.Slot, PaymentField.BackToSelect)
	case ActionReset:
		return Draft{}
	}
	return d
}

func (s Split) update(slot PaymentSlot, fn func(PaymentField) PaymentField) Split {
	switch slot {
	case SlotDeposit:
		s.Deposit = fn(s.Deposit)
	case SlotMiddle:
		s.Middle = fn(s.Middle)
	case SlotFinal:
		s.Final = fn(s.Final)
	}
	return s
}

// Recompute вычисляет производное состояние черновика:
// price -> finalPrice -> суммы платежей, плюс варианты каждого уровня каскада.
func (r *Resolver) Recompute(d Draft, products []domain.Product) DraftView {
	view := DraftView{
		Draft:   d,
		Options: make(map[string][]string, len(Levels)),
	}
	for _, lvl := range Levels {
		view.Options[lvl.String()] = r.OptionsFor(lvl, d.Selection, products)
	}

	if match, ok := UniqueMatch(d.Selection, products); ok {
		view.Price = match.Price
		view.Matched = true
	}
	view.FinalPrice = view.Price - d.DiscountOrSurcharge
	view.Amounts = d.Payments.Amounts(view.FinalPrice)
	return view
}
