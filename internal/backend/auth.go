package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
)

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// Login проверяет учетные данные на бэкенде
func (c *Client) Login(ctx context.Context, userID, password string) (*domain.LoginResult, error) {
	var res domain.LoginResult
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/api/login",
		body:   loginRequest{UserID: userID, Password: password},
	}, &res)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) {
			switch se.Code {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
				return nil, domain.ErrInvalidCredentials
			case http.StatusForbidden:
				return nil, domain.ErrAccountNotApproved
			}
		}
		return nil, err
	}
	if res.UserID == "" {
		res.UserID = userID
	}
	return &res, nil
}

// RegisterBuyer регистрирует покупателя
func (c *Client) RegisterBuyer(ctx context.Context, reg domain.BuyerRegistration) error {
	return c.register(ctx, "/api/buyers/register", reg)
}

// RegisterBusiness регистрирует бизнес
func (c *Client) RegisterBusiness(ctx context.Context, reg domain.BusinessRegistration) error {
	return c.register(ctx, "/api/businesses/register", reg)
}

func (c *Client) register(ctx context.Context, path string, body any) error {
	err := c.do(ctx, request{method: http.MethodPost, path: path, body: body}, nil)
	if errors.Is(err, domain.ErrConflict) {
		return domain.ErrUserExists
	}
	return err
}

// GetBuyerProfile возвращает профиль покупателя по токену бэкенда
func (c *Client) GetBuyerProfile(ctx context.Context, backendToken string) (*domain.BuyerProfile, error) {
	raw, err := c.one(ctx, request{method: http.MethodGet, path: "/api/buyers/me", token: backendToken}, "buyer")
	if err != nil {
		return nil, err
	}
	profile := catalog.NormalizeBuyerProfile(raw)
	return &profile, nil
}

// UpdateBuyerProfile сохраняет профиль покупателя
func (c *Client) UpdateBuyerProfile(ctx context.Context, backendToken string, upd domain.BuyerProfileUpdate) error {
	if err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/api/buyers/me",
		body:   upd,
		token:  backendToken,
	}, nil); err != nil {
		return fmt.Errorf("backend client: update profile: %w", err)
	}
	return nil
}
