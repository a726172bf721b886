package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
)

// listPath коллекция учетных записей ("businesses", "buyers")
func listPath(kind domain.AccountKind) string {
	if kind == domain.AccountKindBusiness {
		return "/api/admin/businesses"
	}
	return "/api/admin/buyers"
}

// ListAccounts возвращает учетные записи; approved == nil возвращает все
func (c *Client) ListAccounts(ctx context.Context, kind domain.AccountKind, approved *bool) ([]domain.Account, error) {
	r := request{method: http.MethodGet, path: listPath(kind)}
	if approved != nil {
		r.query = url.Values{"approved": {strconv.FormatBool(*approved)}}
	}
	raw, err := c.list(ctx, r)
	if err != nil {
		return nil, err
	}
	res := catalog.NormalizeAccounts(kind, raw)
	c.logDropped(string(kind)+" accounts", res.Dropped, len(res.Records))
	return res.Records, nil
}

// GetAccount возвращает учетную запись без служебных полей
func (c *Client) GetAccount(ctx context.Context, kind domain.AccountKind, id string) (*domain.Account, error) {
	raw, err := c.one(ctx, request{method: http.MethodGet, path: listPath(kind) + "/" + url.PathEscape(id)}, string(kind))
	if err != nil {
		return nil, err
	}
	a, ok := catalog.NormalizeAccount(kind, raw)
	if !ok {
		return nil, fmt.Errorf("backend client: malformed %s account %s", kind, id)
	}
	return &a, nil
}

// ApproveAccount одобряет учетную запись
func (c *Client) ApproveAccount(ctx context.Context, kind domain.AccountKind, id string) error {
	path := fmt.Sprintf("/api/admin/%s/%s/approve", kind, url.PathEscape(id))
	if err := c.do(ctx, request{method: http.MethodPatch, path: path}, nil); err != nil {
		return fmt.Errorf("backend client: approve %s %s: %w", kind, id, err)
	}
	return nil
}
