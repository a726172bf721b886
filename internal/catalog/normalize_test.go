package catalog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, body string) []RawRecord {
	t.Helper()
	dec := json.NewDecoder(bytes.NewBufferString(body))
	dec.UseNumber()
	var out []RawRecord
	require.NoError(t, dec.Decode(&out))
	return out
}

func TestNormalizeProducts(t *testing.T) {
	t.Run("Defaults and coercion", func(t *testing.T) {
		raw := decodeRaw(t, `[
			{"_id":"p1","businessId":"b1","businessName":"Acme","itemCategory":"sofa","productName":"X","price":"12,000"},
			{"id":"p2","businessId":"b1","itemCategory":"sofa","productName":"Y","option":null,"price":1500.9},
			{"_id":"p3","businessId":"b1","itemCategory":"sofa","productName":"Z","option":"red"}
		]`)

		res := NormalizeProducts(raw)
		require.Len(t, res.Records, 3)
		assert.Equal(t, 0, res.Dropped)

		assert.Equal(t, "p1", res.Records[0].ID)
		assert.Equal(t, int64(12000), res.Records[0].Price)
		assert.Equal(t, "", res.Records[0].Option)

		assert.Equal(t, "p2", res.Records[1].ID)
		assert.Equal(t, int64(1500), res.Records[1].Price)
		assert.Equal(t, "", res.Records[1].Option)

		assert.Equal(t, int64(0), res.Records[2].Price)
		assert.Equal(t, "red", res.Records[2].Option)
	})

	t.Run("Missing identity fields are dropped and counted", func(t *testing.T) {
		raw := decodeRaw(t, `[
			{"_id":"p1","productName":"X","price":100},
			{"_id":"p2","businessId":"b1","price":100},
			{"_id":"p3","businessId":"b1","productName":"Z","price":100}
		]`)

		res := NormalizeProducts(raw)
		require.Len(t, res.Records, 1)
		assert.Equal(t, 2, res.Dropped)
		assert.Equal(t, "p3", res.Records[0].ID)
	})

	t.Run("Negative and garbage prices", func(t *testing.T) {
		raw := []RawRecord{
			{"businessId": "b1", "productName": "A", "price": json.Number("-5")},
			{"businessId": "b1", "productName": "B", "price": "abc"},
			{"businessId": "b1", "productName": "C", "price": map[string]any{"v": 1}},
		}

		res := NormalizeProducts(raw)
		require.Len(t, res.Records, 3)
		for _, p := range res.Records {
			assert.Equal(t, int64(0), p.Price)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		res := NormalizeProducts(nil)
		assert.NotNil(t, res.Records)
		assert.Empty(t, res.Records)
		assert.Equal(t, 0, res.Dropped)
	})
}

func TestNormalizePurchases(t *testing.T) {
	raw := decodeRaw(t, `[
		{"_id":"u1","buyerId":"buyer","businessId":"b1","productName":"X","price":"100000",
		 "discountOrSurcharge":5000,"finalPrice":95000,"deposit":"9500","contractDate":"2024-03-01T00:00:00.000Z",
		 "installationDate":"not a date","status":"confirmed","dongHo":"101동 202호"},
		{"buyerId":"buyer","productName":"no id"},
		{"_id":"u2","status":"WEIRD","createdAt":"2024-02-01"}
	]`)

	res := NormalizePurchases(raw)
	require.Len(t, res.Records, 2)
	assert.Equal(t, 1, res.Dropped)

	p := res.Records[0]
	assert.Equal(t, int64(100000), p.Price)
	assert.Equal(t, int64(5000), p.DiscountOrSurcharge)
	assert.Equal(t, int64(9500), p.Deposit)
	require.NotNil(t, p.ContractDate)
	assert.Equal(t, 2024, p.ContractDate.Year())
	assert.Nil(t, p.InstallationDate)
	assert.Equal(t, domain.PurchaseStatusConfirmed, p.Status)
	assert.Equal(t, "101동 202호", p.DongHo)

	assert.Equal(t, domain.PurchaseStatusPending, res.Records[1].Status)
	require.NotNil(t, res.Records[1].CreatedAt)
	assert.Nil(t, res.Records[1].ContractDate)
}

func TestNormalizeAccounts(t *testing.T) {
	raw := decodeRaw(t, `[
		{"_id":"a1","userId":"acme","name":"Acme","approved":false,"password":"secret","__v":0,
		 "role":"BUSINESS","businessNumber":"1248100998","personalInfoAgreement":true},
		{"_id":"a2","name":"no user id"}
	]`)

	res := NormalizeAccounts(domain.AccountKindBusiness, raw)
	require.Len(t, res.Records, 1)
	assert.Equal(t, 1, res.Dropped)

	a := res.Records[0]
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, domain.AccountKindBusiness, a.Kind)
	assert.False(t, a.Approved)
	assert.Equal(t, "1248100998", a.BusinessNumber)
	assert.NotContains(t, a.Details, "password")
	assert.NotContains(t, a.Details, "__v")
	assert.NotContains(t, a.Details, "role")
	assert.NotContains(t, a.Details, "personalInfoAgreement")
	assert.Contains(t, a.Details, "name")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "RFC3339 with millis", input: "2024-03-01T10:00:00.000Z", ok: true},
		{name: "RFC3339", input: "2024-03-01T10:00:00+09:00", ok: true},
		{name: "Date only", input: "2024-03-01", ok: true},
		{name: "Empty", input: "", ok: false},
		{name: "Garbage", input: "yesterday", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			assert.Equal(t, tt.ok, got != nil)
		})
	}
}
