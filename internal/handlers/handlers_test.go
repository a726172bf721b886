package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/storefront-gateway/internal/backend"
	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	domainmocks "github.com/avc/storefront-gateway/internal/domain/mocks"
	handlermocks "github.com/avc/storefront-gateway/internal/handlers/mocks"
	"github.com/avc/storefront-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	testBuyer    = &domain.Session{Role: domain.RoleBuyer, UserID: "kim01"}
	testBusiness = &domain.Session{Role: domain.RoleBusiness, UserID: "acme", BusinessID: "b1", BusinessName: "Acme"}
)

// newRequest собирает запрос с сессией и параметрами пути chi
func newRequest(method, target, body string, session *domain.Session, params map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}

	ctx := req.Context()
	if session != nil {
		ctx = context.WithValue(ctx, SessionKey, session)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "acme", "password123").Return(&domain.AuthResult{
			Token:        "token",
			Role:         domain.RoleBusiness,
			UserID:       "acme",
			BusinessName: "Acme",
		}, nil).Once()

		req := newRequest(http.MethodPost, "/api/login", `{"userId":"acme","password":"password123"}`, nil, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer token", w.Header().Get("Authorization"))
		assert.JSONEq(t, `{"token":"token","role":"BUSINESS","userId":"acme","businessName":"Acme"}`, w.Body.String())
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "acme", "wrong").Return(nil, domain.ErrInvalidCredentials).Once()

		req := newRequest(http.MethodPost, "/api/login", `{"userId":"acme","password":"wrong"}`, nil, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Not approved", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "newbiz", "password123").Return(nil, domain.ErrAccountNotApproved).Once()

		req := newRequest(http.MethodPost, "/api/login", `{"userId":"newbiz","password":"password123"}`, nil, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		req := newRequest(http.MethodPost, "/api/login", `{"userId":}`, nil, nil)
		w := httptest.NewRecorder()

		handler.Login(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Business created", func(t *testing.T) {
		mockService.EXPECT().RegisterBusiness(mock.Anything, mock.MatchedBy(func(reg domain.BusinessRegistration) bool {
			return reg.UserID == "acme" && reg.BusinessNumber == "1248100998"
		})).Return(nil).Once()

		req := newRequest(http.MethodPost, "/api/register/business",
			`{"userId":"acme","password":"password123","name":"Acme","businessNumber":"1248100998"}`, nil, nil)
		w := httptest.NewRecorder()

		handler.RegisterBusiness(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Bad business number", func(t *testing.T) {
		mockService.EXPECT().RegisterBusiness(mock.Anything, mock.Anything).Return(domain.ErrInvalidBusinessNumber).Once()

		req := newRequest(http.MethodPost, "/api/register/business", `{"userId":"acme"}`, nil, nil)
		w := httptest.NewRecorder()

		handler.RegisterBusiness(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Buyer exists", func(t *testing.T) {
		mockService.EXPECT().RegisterBuyer(mock.Anything, mock.Anything).Return(domain.ErrUserExists).Once()

		req := newRequest(http.MethodPost, "/api/register/buyer", `{"userId":"kim01"}`, nil, nil)
		w := httptest.NewRecorder()

		handler.RegisterBuyer(w, req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAuthHandler(mockService, logger)

	t.Run("Profile", func(t *testing.T) {
		mockService.EXPECT().Me(mock.Anything, *testBuyer).Return(&domain.BuyerProfile{UserID: "kim01", Dong: "101", Ho: "1203"}, nil).Once()

		w := httptest.NewRecorder()
		handler.Me(w, newRequest(http.MethodGet, "/api/me", "", testBuyer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.BuyerProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "1203", got.Ho)
	})

	t.Run("Update with bad dong ho", func(t *testing.T) {
		mockService.EXPECT().UpdateProfile(mock.Anything, *testBuyer, mock.Anything).Return(domain.ErrInvalidDongHo).Once()

		w := httptest.NewRecorder()
		handler.UpdateMe(w, newRequest(http.MethodPatch, "/api/me", `{"dongHo":"101-1203"}`, testBuyer, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Without session", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Me(w, newRequest(http.MethodGet, "/api/me", "", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCatalogHandler_Options(t *testing.T) {
	mockService := handlermocks.NewCatalogServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCatalogHandler(mockService, logger)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Options(mock.Anything, catalog.LevelProduct, catalog.Selection{Category: "sofa", Business: "Acme"}).
			Return([]string{"Alpha", "Zeta"}, nil).Once()

		w := httptest.NewRecorder()
		handler.Options(w, newRequest(http.MethodGet, "/api/catalog/options?level=product&category=sofa&business=Acme", "", testBuyer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"level":"product","options":["Alpha","Zeta"]}`, w.Body.String())
	})

	t.Run("Unknown level", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Options(w, newRequest(http.MethodGet, "/api/catalog/options?level=color", "", testBuyer, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Backend rate limited", func(t *testing.T) {
		mockService.EXPECT().Options(mock.Anything, catalog.LevelCategory, catalog.Selection{}).
			Return(nil, backend.NewRateLimitError(1500*time.Millisecond)).Once()

		w := httptest.NewRecorder()
		handler.Options(w, newRequest(http.MethodGet, "/api/catalog/options?level=category", "", testBuyer, nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
	})
}

func TestCatalogHandler_Price(t *testing.T) {
	mockService := handlermocks.NewCatalogServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCatalogHandler(mockService, logger)

	sel := catalog.Selection{Category: "sofa", Business: "Acme", Product: "Zeta", Option: "L"}
	mockService.EXPECT().Price(mock.Anything, sel).Return(int64(1000), nil).Once()

	w := httptest.NewRecorder()
	handler.Price(w, newRequest(http.MethodGet, "/api/catalog/price?category=sofa&business=Acme&product=Zeta&option=L", "", testBuyer, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"price":1000}`, w.Body.String())
}

func TestCatalogHandler_Products(t *testing.T) {
	mockService := handlermocks.NewCatalogServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewCatalogHandler(mockService, logger)

	t.Run("Tree", func(t *testing.T) {
		tree := catalog.GroupByCategory([]domain.Product{{ItemCategory: "sofa", ProductName: "Zeta", Option: "L"}})
		mockService.EXPECT().BusinessTree(mock.Anything, *testBusiness, "ze").Return(tree, nil).Once()

		w := httptest.NewRecorder()
		handler.BusinessCatalog(w, newRequest(http.MethodGet, "/api/business/catalog?search=ze", "", testBusiness, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"category":"sofa","products":[{"productName":"Zeta","options":["L"]}]}]`, w.Body.String())
	})

	t.Run("Create incomplete", func(t *testing.T) {
		mockService.EXPECT().CreateProduct(mock.Anything, *testBusiness, domain.ProductInput{ItemCategory: "sofa"}).
			Return(nil, domain.ErrIncompleteProduct).Once()

		w := httptest.NewRecorder()
		handler.CreateProduct(w, newRequest(http.MethodPost, "/api/business/products", `{"itemCategory":"sofa"}`, testBusiness, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Update foreign product", func(t *testing.T) {
		mockService.EXPECT().UpdateProduct(mock.Anything, *testBusiness, "p3", mock.Anything).Return(nil, domain.ErrNotFound).Once()

		w := httptest.NewRecorder()
		handler.UpdateProduct(w, newRequest(http.MethodPatch, "/api/business/products/p3",
			`{"itemCategory":"sofa","productName":"X","price":1}`, testBusiness, map[string]string{"id": "p3"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteProduct(mock.Anything, *testBusiness, "p1").Return(nil).Once()

		w := httptest.NewRecorder()
		handler.DeleteProduct(w, newRequest(http.MethodDelete, "/api/business/products/p1", "", testBusiness, map[string]string{"id": "p1"}))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPurchasesHandler_List(t *testing.T) {
	mockService := handlermocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	t.Run("Query is parsed", func(t *testing.T) {
		want := catalog.Query{
			SearchField: "productName",
			Term:        "zeta",
			Sort:        catalog.SortState{Field: "contractDate", Order: catalog.Desc},
		}
		mockService.EXPECT().ListForBuyer(mock.Anything, *testBuyer, want).Return(catalog.PurchaseView{
			Rows:     []domain.Purchase{{ID: "u1", FinalPrice: 900, Deposit: 100}},
			Totals:   catalog.Totals{FinalPrice: 900, Deposit: 100},
			Sort:     want.Sort,
			NextSort: catalog.SortState{Field: "contractDate", Order: catalog.Asc},
		}, nil).Once()

		w := httptest.NewRecorder()
		handler.List(w, newRequest(http.MethodGet, "/api/purchases?search=zeta&sort=contractDate&order=desc", "", testBuyer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var got catalog.PurchaseView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(900), got.Totals.FinalPrice)
		assert.Equal(t, catalog.Asc, got.NextSort.Order)
	})

	t.Run("Admin keyword search", func(t *testing.T) {
		mockService.EXPECT().ListAll(mock.Anything, catalog.Query{
			SearchField: "dongHo",
			Term:        "101",
			Sort:        catalog.SortState{Order: catalog.Asc},
		}).Return(catalog.PurchaseView{}, nil).Once()

		w := httptest.NewRecorder()
		handler.AdminList(w, newRequest(http.MethodGet, "/api/admin/purchases?field=dongHo&keyword=101", "", nil, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Option purchases", func(t *testing.T) {
		mockService.EXPECT().ListForOption(mock.Anything, *testBusiness, service.OptionFilter{
			ItemCategory: "sofa", ProductName: "Zeta", Option: "L",
		}, mock.Anything).Return(catalog.PurchaseView{}, nil).Once()

		w := httptest.NewRecorder()
		handler.OptionPurchases(w, newRequest(http.MethodGet,
			"/api/business/option-purchases?itemCategory=sofa&productName=Zeta&option=L", "", testBusiness, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Internal error is hidden", func(t *testing.T) {
		mockService.EXPECT().ListForBuyer(mock.Anything, *testBuyer, mock.Anything).
			Return(catalog.PurchaseView{}, errors.New("dial tcp: connection refused")).Once()

		w := httptest.NewRecorder()
		handler.List(w, newRequest(http.MethodGet, "/api/purchases", "", testBuyer, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestPurchasesHandler_Create(t *testing.T) {
	mockService := handlermocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)

	t.Run("Created", func(t *testing.T) {
		mockService.EXPECT().Create(mock.Anything, *testBuyer, mock.MatchedBy(func(d catalog.Draft) bool {
			return d.Selection.Product == "Zeta" && d.Payments.Deposit.Amount(1000) == 300
		})).Return(&domain.Purchase{ID: "u1", Status: domain.PurchaseStatusPending}, nil).Once()

		body := `{"selection":{"category":"sofa","business":"Acme","product":"Zeta","option":"L"},
			"payments":{"deposit":{"mode":"percent","percent":30}}}`
		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/purchases", body, testBuyer, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Unknown payment mode", func(t *testing.T) {
		body := `{"payments":{"deposit":{"mode":"installments"}}}`
		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/purchases", body, testBuyer, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Quote", func(t *testing.T) {
		mockService.EXPECT().Quote(mock.Anything, catalog.Draft{}, []catalog.Action{
			{Kind: catalog.ActionSelect, Level: "category", Value: "sofa"},
		}).Return(catalog.DraftView{Options: map[string][]string{"business": {"Acme"}}}, nil).Once()

		body := `{"draft":{},"actions":[{"kind":"select","level":"category","value":"sofa"}]}`
		w := httptest.NewRecorder()
		handler.Quote(w, newRequest(http.MethodPost, "/api/purchases/quote", body, testBuyer, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPurchasesHandler_UpdateStatus(t *testing.T) {
	mockService := handlermocks.NewPurchaseServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewPurchasesHandler(mockService, logger)
	params := map[string]string{"id": "u1"}

	t.Run("Confirmed", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(mock.Anything, *testBusiness, "u1", domain.PurchaseStatusConfirmed).
			Return(&domain.Purchase{ID: "u1", Status: domain.PurchaseStatusConfirmed}, nil).Once()

		w := httptest.NewRecorder()
		handler.UpdateStatus(w, newRequest(http.MethodPatch, "/api/business/purchases/u1/status", `{"status":"CONFIRMED"}`, testBusiness, params))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Pending is rejected", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(mock.Anything, *testBusiness, "u1", domain.PurchaseStatusPending).
			Return(nil, domain.ErrInvalidStatus).Once()

		w := httptest.NewRecorder()
		handler.UpdateStatus(w, newRequest(http.MethodPatch, "/api/business/purchases/u1/status", `{"status":"PENDING"}`, testBusiness, params))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Another business", func(t *testing.T) {
		mockService.EXPECT().UpdateStatus(mock.Anything, *testBusiness, "u1", domain.PurchaseStatusCanceled).
			Return(nil, domain.ErrForbidden).Once()

		w := httptest.NewRecorder()
		handler.UpdateStatus(w, newRequest(http.MethodPatch, "/api/business/purchases/u1/status", `{"status":"CANCELED"}`, testBusiness, params))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAdminHandler(t *testing.T) {
	mockService := handlermocks.NewAdminServiceMock(t)
	logger, _ := zap.NewDevelopment()
	handler := NewAdminHandler(mockService, logger)
	admin := &domain.Session{Role: domain.RoleAdmin, UserID: "admin"}

	t.Run("Pending businesses", func(t *testing.T) {
		approved := false
		mockService.EXPECT().Accounts(mock.Anything, domain.AccountKindBusiness, &approved, mock.Anything).
			Return(catalog.AccountView{Rows: []domain.Account{{ID: "1", UserID: "acme"}}}, nil).Once()

		w := httptest.NewRecorder()
		handler.Accounts(w, newRequest(http.MethodGet, "/api/admin/accounts/business?approved=false", "", admin, map[string]string{"kind": "business"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Bad approved flag", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Accounts(w, newRequest(http.MethodGet, "/api/admin/accounts/buyer?approved=maybe", "", admin, map[string]string{"kind": "buyer"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown kind", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Account(w, newRequest(http.MethodGet, "/api/admin/accounts/admins/1", "", admin, map[string]string{"kind": "admins", "id": "1"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Approve twice", func(t *testing.T) {
		mockService.EXPECT().Approve(mock.Anything, domain.AccountKindBuyer, "2").Return(domain.ErrAlreadyApproved).Once()

		w := httptest.NewRecorder()
		handler.Approve(w, newRequest(http.MethodPatch, "/api/admin/accounts/buyer/2/approve", "", admin, map[string]string{"kind": "buyer", "id": "2"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type fakeConn bool

func (c fakeConn) IsConnected() bool { return bool(c) }

func TestHealthHandler(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	t.Run("Healthy without events", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{}, nil, logger)
		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","database":"ok","events":"disabled"}`, w.Body.String())
	})

	t.Run("Disconnected broker does not degrade", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{}, fakeConn(false), logger)
		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","database":"ok","events":"disconnected"}`, w.Body.String())
	})

	t.Run("Database down", func(t *testing.T) {
		handler := NewHealthHandler(fakePinger{err: errors.New("refused")}, fakeConn(true), logger)
		w := httptest.NewRecorder()
		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		w = httptest.NewRecorder()
		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: service.ErrInvalidInput, want: http.StatusBadRequest},
		{err: service.ErrSessionWithoutScope, want: http.StatusForbidden},
		{err: service.ErrPasswordMismatch, want: http.StatusUnprocessableEntity},
		{err: domain.ErrConflict, want: http.StatusConflict},
		{err: &backend.StatusError{Code: http.StatusBadRequest, Message: "bad field"}, want: http.StatusBadGateway},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestWriteError_ClientMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "backend message without wrapping",
			err:        fmt.Errorf("purchase service: failed to get purchase %q: %w", "u1", backend.NewStatusError(http.StatusNotFound, "Purchase not found")),
			wantStatus: http.StatusNotFound,
			wantBody:   "Purchase not found",
		},
		{
			name:       "sentinel text",
			err:        fmt.Errorf("purchase service: failed to update purchase %q: %w", "u1", backend.NewStatusError(http.StatusConflict, "")),
			wantStatus: http.StatusConflict,
			wantBody:   "conflict",
		},
		{
			name:       "validation detail stays inside",
			err:        fmt.Errorf("%w: contract date %q", service.ErrInvalidInput, "yesterday"),
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid input",
		},
		{
			name:       "rate limit",
			err:        fmt.Errorf("catalog service: failed to list products: %w", backend.NewRateLimitError(1500*time.Millisecond)),
			wantStatus: http.StatusTooManyRequests,
			wantBody:   http.StatusText(http.StatusTooManyRequests),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, zap.NewNop(), tt.err, "request failed")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantBody+"\n", w.Body.String())
			assert.NotContains(t, w.Body.String(), "service:")
		})
	}
}
