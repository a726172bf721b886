package catalog

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name    string
		base    int64
		percent int
		want    int64
	}{
		{name: "Floors instead of rounding", base: 123456, percent: 30, want: 37036},
		{name: "Exact", base: 100000, percent: 10, want: 10000},
		{name: "Full amount", base: 999, percent: 100, want: 999},
		{name: "Negative base floors down", base: -1001, percent: 30, want: -301},
		{name: "Percent outside the set", base: 1000, percent: 15, want: 0},
		{name: "Zero percent", base: 1000, percent: 0, want: 0},
		{name: "Over one hundred", base: 1000, percent: 110, want: 0},
		{name: "Largest base", base: math.MaxInt64, percent: 50, want: math.MaxInt64 / 2},
		{name: "Largest base full amount", base: math.MaxInt64, percent: 100, want: math.MaxInt64},
		{name: "Smallest base", base: math.MinInt64, percent: 90, want: -8301034833169298228},
		{name: "Smallest base full amount", base: math.MinInt64, percent: 100, want: math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSplit(tt.base, tt.percent))
		})
	}
}

func TestPaymentField(t *testing.T) {
	t.Run("Zero value is select without percent", func(t *testing.T) {
		var f PaymentField
		assert.Equal(t, ModeSelect, f.Mode())
		assert.Equal(t, int64(0), f.Amount(100000))
	})

	t.Run("Percent mode", func(t *testing.T) {
		f := PaymentField{}.Choose("30")
		assert.Equal(t, int64(37036), f.Amount(123456))
	})

	t.Run("Custom sentinel switches to manual", func(t *testing.T) {
		f := PaymentField{}.Choose("30").Choose(CustomOption)
		assert.Equal(t, ModeCustom, f.Mode())
		assert.Equal(t, 0, f.PercentValue())
		assert.Equal(t, int64(0), f.Amount(123456))

		f = f.SetManual(50000)
		assert.Equal(t, int64(50000), f.Amount(123456))
	})

	t.Run("Back to select discards the old percent", func(t *testing.T) {
		f := Percent(30).ChooseCustom().BackToSelect()
		assert.Equal(t, ModeSelect, f.Mode())
		assert.Equal(t, int64(0), f.Amount(123456))
	})

	t.Run("Back to select discards the manual amount", func(t *testing.T) {
		f := Manual(70000).BackToSelect()
		assert.Equal(t, int64(0), f.Amount(123456))
	})

	t.Run("Manual amount is ignored in select mode", func(t *testing.T) {
		f := Percent(10).SetManual(5)
		assert.Equal(t, int64(100), f.Amount(1000))
	})

	t.Run("Invalid percent means no selection", func(t *testing.T) {
		assert.Equal(t, int64(0), PaymentField{}.Choose("35").Amount(1000))
		assert.Equal(t, int64(0), PaymentField{}.Choose("abc").Amount(1000))
	})
}

func TestSplit_FieldsAreIndependent(t *testing.T) {
	s := Split{
		Deposit: Percent(10),
		Middle:  Manual(300),
		Final:   Percent(50),
	}
	s.Middle = s.Middle.BackToSelect()

	amounts := s.Amounts(1000)
	assert.Equal(t, int64(100), amounts.Deposit)
	assert.Equal(t, int64(0), amounts.MiddlePayment)
	assert.Equal(t, int64(500), amounts.FinalPayment)
}

func TestPaymentField_JSON(t *testing.T) {
	t.Run("Percent", func(t *testing.T) {
		data, err := json.Marshal(Percent(30))
		require.NoError(t, err)
		assert.JSONEq(t, `{"mode":"percent","percent":30}`, string(data))
	})

	t.Run("Manual", func(t *testing.T) {
		var f PaymentField
		require.NoError(t, json.Unmarshal([]byte(`{"mode":"manual","amount":5000}`), &f))
		assert.Equal(t, ModeCustom, f.Mode())
		assert.Equal(t, int64(5000), f.Amount(0))
	})

	t.Run("Unknown mode", func(t *testing.T) {
		var f PaymentField
		assert.Error(t, json.Unmarshal([]byte(`{"mode":"installments"}`), &f))
	})
}
