package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
)

type productBody struct {
	BusinessID   string `json:"businessId,omitempty"`
	BusinessName string `json:"businessName,omitempty"`
	ItemCategory string `json:"itemCategory"`
	ProductName  string `json:"productName"`
	Option       string `json:"option"`
	Price        int64  `json:"price"`
}

// ListProducts возвращает товары бизнеса, search фильтрует на стороне бэкенда
func (c *Client) ListProducts(ctx context.Context, businessID, search string) ([]domain.Product, error) {
	q := url.Values{"businessId": {businessID}}
	if search != "" {
		q.Set("search", search)
	}
	raw, err := c.list(ctx, request{method: http.MethodGet, path: "/api/products", query: q})
	if err != nil {
		return nil, err
	}
	res := catalog.NormalizeProducts(raw)
	c.logDropped("products", res.Dropped, len(res.Records))
	return res.Records, nil
}

// ListAllProducts возвращает общий список товаров всех бизнесов
func (c *Client) ListAllProducts(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.list(ctx, request{method: http.MethodGet, path: "/api/products/all"})
	if err != nil {
		return nil, err
	}
	res := catalog.NormalizeProducts(raw)
	c.logDropped("products", res.Dropped, len(res.Records))
	return res.Records, nil
}

// CreateProduct создает товар бизнеса
func (c *Client) CreateProduct(ctx context.Context, businessID, businessName string, in domain.ProductInput) (*domain.Product, error) {
	body := toProductBody(in)
	body.BusinessID = businessID
	body.BusinessName = businessName

	raw, err := c.one(ctx, request{method: http.MethodPost, path: "/api/products", body: body}, "product")
	if err != nil {
		return nil, err
	}
	return productOrInput(raw, body), nil
}

// UpdateProduct изменяет товар
func (c *Client) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	body := toProductBody(in)
	raw, err := c.one(ctx, request{
		method: http.MethodPatch,
		path:   "/api/products/" + url.PathEscape(id),
		body:   body,
	}, "product")
	if err != nil {
		return nil, err
	}
	p := productOrInput(raw, body)
	if p.ID == "" {
		p.ID = id
	}
	return p, nil
}

// DeleteProduct удаляет товар
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.do(ctx, request{method: http.MethodDelete, path: "/api/products/" + url.PathEscape(id)}, nil); err != nil {
		return fmt.Errorf("backend client: delete product %s: %w", id, err)
	}
	return nil
}

func toProductBody(in domain.ProductInput) productBody {
	body := productBody{
		ItemCategory: in.ItemCategory,
		ProductName:  in.ProductName,
		Option:       in.Option,
	}
	if in.Price != nil {
		body.Price = *in.Price
	}
	return body
}

// productOrInput нормализует ответ бэкенда; если ответ не содержит товара
// (например только message), возвращает отправленные поля
func productOrInput(raw catalog.RawRecord, body productBody) *domain.Product {
	if p, ok := catalog.NormalizeProduct(raw); ok {
		return &p
	}
	id, _ := raw["_id"].(string)
	return &domain.Product{
		ID:           id,
		BusinessID:   body.BusinessID,
		BusinessName: body.BusinessName,
		ItemCategory: body.ItemCategory,
		ProductName:  body.ProductName,
		Option:       body.Option,
		Price:        body.Price,
	}
}
