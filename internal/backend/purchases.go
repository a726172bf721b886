package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
)

type purchaseBody struct {
	BuyerID             string     `json:"buyerId"`
	BusinessID          string     `json:"businessId"`
	ItemCategory        string     `json:"itemCategory"`
	BusinessName        string     `json:"businessName"`
	ProductName         string     `json:"productName"`
	Option              string     `json:"option"`
	Price               int64      `json:"price"`
	DiscountOrSurcharge int64      `json:"discountOrSurcharge"`
	FinalPrice          int64      `json:"finalPrice"`
	Deposit             int64      `json:"deposit"`
	MiddlePayment       int64      `json:"middlePayment"`
	FinalPayment        int64      `json:"finalPayment"`
	ContractDate        *time.Time `json:"contractDate"`
	InstallationDate    *time.Time `json:"installationDate"`
	Note                string     `json:"note"`
}

func toPurchaseBody(p domain.Purchase) purchaseBody {
	return purchaseBody{
		BuyerID:             p.BuyerID,
		BusinessID:          p.BusinessID,
		ItemCategory:        p.ItemCategory,
		BusinessName:        p.BusinessName,
		ProductName:         p.ProductName,
		Option:              p.Option,
		Price:               p.Price,
		DiscountOrSurcharge: p.DiscountOrSurcharge,
		FinalPrice:          p.FinalPrice,
		Deposit:             p.Deposit,
		MiddlePayment:       p.MiddlePayment,
		FinalPayment:        p.FinalPayment,
		ContractDate:        p.ContractDate,
		InstallationDate:    p.InstallationDate,
		Note:                p.Note,
	}
}

// ListPurchases выбирает покупки по фильтру: покупателя, опцию товара бизнеса
// или весь список администратора с серверным поиском
func (c *Client) ListPurchases(ctx context.Context, f domain.PurchaseFilter) ([]domain.Purchase, error) {
	r := request{method: http.MethodGet}
	switch {
	case f.ByOption:
		r.path = "/api/purchases/by-option"
		r.query = url.Values{
			"businessId":   {f.BusinessID},
			"itemCategory": {f.ItemCategory},
			"productName":  {f.ProductName},
			"option":       {f.Option},
		}
	case f.BuyerID != "":
		r.path = "/api/purchases"
		r.query = url.Values{"buyerId": {f.BuyerID}}
	default:
		r.path = "/api/admin/purchases"
		if f.Keyword != "" {
			r.query = url.Values{"field": {f.Field}, "keyword": {f.Keyword}}
		}
	}

	raw, err := c.list(ctx, r)
	if err != nil {
		return nil, err
	}
	res := catalog.NormalizePurchases(raw)
	c.logDropped("purchases", res.Dropped, len(res.Records))
	return res.Records, nil
}

// GetPurchase возвращает покупку
func (c *Client) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	return c.getPurchase(ctx, "/api/purchases/"+url.PathEscape(id))
}

// GetAdminPurchase возвращает покупку с полями, которые видит администратор
func (c *Client) GetAdminPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	return c.getPurchase(ctx, "/api/admin/purchases/"+url.PathEscape(id))
}

func (c *Client) getPurchase(ctx context.Context, path string) (*domain.Purchase, error) {
	raw, err := c.one(ctx, request{method: http.MethodGet, path: path}, "purchase")
	if err != nil {
		return nil, err
	}
	p, ok := catalog.NormalizePurchase(raw)
	if !ok {
		return nil, fmt.Errorf("backend client: malformed purchase at %s", path)
	}
	return &p, nil
}

// CreatePurchase оформляет покупку
func (c *Client) CreatePurchase(ctx context.Context, p domain.Purchase) (*domain.Purchase, error) {
	raw, err := c.one(ctx, request{method: http.MethodPost, path: "/api/purchases", body: toPurchaseBody(p)}, "purchase")
	if err != nil {
		return nil, err
	}
	if created, ok := catalog.NormalizePurchase(raw); ok {
		return &created, nil
	}
	return &p, nil
}

// UpdatePurchase сохраняет изменения покупки
func (c *Client) UpdatePurchase(ctx context.Context, p domain.Purchase) (*domain.Purchase, error) {
	raw, err := c.one(ctx, request{
		method: http.MethodPut,
		path:   "/api/purchases/" + url.PathEscape(p.ID),
		body:   toPurchaseBody(p),
	}, "purchase")
	if err != nil {
		return nil, err
	}
	if updated, ok := catalog.NormalizePurchase(raw); ok {
		return &updated, nil
	}
	return &p, nil
}

// DeletePurchase удаляет покупку
func (c *Client) DeletePurchase(ctx context.Context, id string) error {
	if err := c.do(ctx, request{method: http.MethodDelete, path: "/api/purchases/" + url.PathEscape(id)}, nil); err != nil {
		return fmt.Errorf("backend client: delete purchase %s: %w", id, err)
	}
	return nil
}

// UpdatePurchaseStatus выставляет статус покупки
func (c *Client) UpdatePurchaseStatus(ctx context.Context, id string, status domain.PurchaseStatus) error {
	body := struct {
		Status domain.PurchaseStatus `json:"status"`
	}{Status: status}
	if err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/api/purchases/" + url.PathEscape(id) + "/status",
		body:   body,
	}, nil); err != nil {
		return fmt.Errorf("backend client: update status of %s: %w", id, err)
	}
	return nil
}
