package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PaymentMode режим поля платежа
type PaymentMode int

const (
	// ModeSelect сумма считается от процента
	ModeSelect PaymentMode = iota
	// ModeCustom сумма вводится вручную
	ModeCustom
)

func (m PaymentMode) String() string {
	if m == ModeCustom {
		return "manual"
	}
	return "percent"
}

// CustomOption значение выпадающего списка, которое переключает поле в ручной режим
const CustomOption = "custom"

// PercentChoices допустимые проценты
var PercentChoices = []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// ValidPercent сообщает, входит ли процент в допустимый набор
func ValidPercent(p int) bool {
	return p >= 10 && p <= 100 && p%10 == 0
}

// PaymentField поле платежа (задаток, промежуточный или финальный платеж).
// Это размеченный вариант: в режиме Select хранится только процент,
// в режиме Custom только ручная сумма. Нулевое значение: Select без процента.
type PaymentField struct {
	mode    PaymentMode
	percent int
	manual  int64
}

// Percent создает поле в режиме процента
func Percent(p int) PaymentField {
	return PaymentField{}.SelectPercent(p)
}

// Manual создает поле с ручной суммой
func Manual(amount int64) PaymentField {
	return PaymentField{}.ChooseCustom().SetManual(amount)
}

// Mode текущий режим
func (f PaymentField) Mode() PaymentMode { return f.mode }

// PercentValue выбранный процент, 0 если не выбран или режим ручной
func (f PaymentField) PercentValue() int { return f.percent }

// SelectPercent выбирает процент. Значение вне набора означает "не выбрано".
// В ручном режиме выбор процента возвращает поле в режим Select.
func (f PaymentField) SelectPercent(p int) PaymentField {
	if !ValidPercent(p) {
		p = 0
	}
	return PaymentField{mode: ModeSelect, percent: p}
}

// Choose обрабатывает значение выпадающего списка: проценты или "custom"
func (f PaymentField) Choose(value string) PaymentField {
	if value == CustomOption {
		return f.ChooseCustom()
	}
	p, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return f.SelectPercent(0)
	}
	return f.SelectPercent(p)
}

// ChooseCustom переключает поле в ручной режим. Процент отбрасывается.
func (f PaymentField) ChooseCustom() PaymentField {
	if f.mode == ModeCustom {
		return f
	}
	return PaymentField{mode: ModeCustom}
}

// SetManual задает ручную сумму. В режиме Select игнорируется.
func (f PaymentField) SetManual(amount int64) PaymentField {
	if f.mode != ModeCustom {
		return f
	}
	f.manual = amount
	return f
}

// BackToSelect возвращает поле в режим Select, очищая процент и сумму
func (f PaymentField) BackToSelect() PaymentField {
	return PaymentField{mode: ModeSelect}
}

// Amount вычисляет сумму поля от базовой суммы
func (f PaymentField) Amount(base int64) int64 {
	if f.mode == ModeCustom {
		return f.manual
	}
	if f.percent == 0 {
		return 0
	}
	return ComputeSplit(base, f.percent)
}

// ComputeSplit возвращает floor(base * percent / 100).
// Процент вне допустимого набора дает 0.
func ComputeSplit(base int64, percent int) int64 {
	if !ValidPercent(percent) {
		return 0
	}
	if percent == 100 {
		return base
	}
	// base = 100*q + r, 0 <= r < 100: произведение base*percent не вычисляется,
	// поэтому переполнения нет на всем диапазоне int64
	p := int64(percent)
	q := floorDiv(base, 100)
	r := base % 100
	if r < 0 {
		r += 100
	}
	return q*p + r*p/100
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

type paymentFieldJSON struct {
	Mode    string `json:"mode"`
	Percent int    `json:"percent,omitempty"`
	Amount  int64  `json:"amount,omitempty"`
}

// MarshalJSON кодирует поле как {"mode":"percent","percent":30}
// или {"mode":"manual","amount":50000}
func (f PaymentField) MarshalJSON() ([]byte, error) {
	out := paymentFieldJSON{Mode: f.mode.String()}
	if f.mode == ModeCustom {
		out.Amount = f.manual
	} else {
		out.Percent = f.percent
	}
	return json.Marshal(out)
}

// UnmarshalJSON декодирует поле. Пустой режим трактуется как percent.
func (f *PaymentField) UnmarshalJSON(data []byte) error {
	var in paymentFieldJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Mode {
	case "", "percent", "select":
		*f = Percent(in.Percent)
	case "manual", "custom":
		*f = Manual(in.Amount)
	default:
		return fmt.Errorf("catalog: unknown payment mode %q", in.Mode)
	}
	return nil
}

// Split три независимых поля платежа
type Split struct {
	Deposit PaymentField `json:"deposit"`
	Middle  PaymentField `json:"middlePayment"`
	Final   PaymentField `json:"finalPayment"`
}

// SplitAmounts вычисленные суммы платежей
type SplitAmounts struct {
	Deposit       int64 `json:"deposit"`
	MiddlePayment int64 `json:"middlePayment"`
	FinalPayment  int64 `json:"finalPayment"`
}

// Amounts вычисляет все три суммы от базовой суммы
func (s Split) Amounts(base int64) SplitAmounts {
	return SplitAmounts{
		Deposit:       s.Deposit.Amount(base),
		MiddlePayment: s.Middle.Amount(base),
		FinalPayment:  s.Final.Amount(base),
	}
}
