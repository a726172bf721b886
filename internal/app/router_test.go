package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	domainmocks "github.com/avc/storefront-gateway/internal/domain/mocks"
	"github.com/avc/storefront-gateway/internal/handlers"
	handlermocks "github.com/avc/storefront-gateway/internal/handlers/mocks"
	"github.com/avc/storefront-gateway/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type routerFixture struct {
	router    *chi.Mux
	jwt       *jwt.Manager
	purchases *handlermocks.PurchaseServiceMock
	catalog   *handlermocks.CatalogServiceMock
	admin     *handlermocks.AdminServiceMock
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := zap.NewNop()
	f := &routerFixture{
		jwt:       jwt.NewManager("test-secret", time.Hour),
		purchases: handlermocks.NewPurchaseServiceMock(t),
		catalog:   handlermocks.NewCatalogServiceMock(t),
		admin:     handlermocks.NewAdminServiceMock(t),
	}

	deps := &dependencies{
		handlers: &handlerSet{
			auth:      handlers.NewAuthHandler(domainmocks.NewAuthServiceMock(t), logger),
			catalog:   handlers.NewCatalogHandler(f.catalog, logger),
			purchases: handlers.NewPurchasesHandler(f.purchases, logger),
			admin:     handlers.NewAdminHandler(f.admin, logger),
		},
	}
	f.router = setupRouter(deps, f.jwt, logger)
	return f
}

func (f *routerFixture) do(t *testing.T, method, path string, session *domain.Session) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if session != nil {
		token, err := f.jwt.Generate(*session)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RoleGates(t *testing.T) {
	buyer := &domain.Session{Role: domain.RoleBuyer, UserID: "u1"}
	business := &domain.Session{Role: domain.RoleBusiness, UserID: "acme", BusinessID: "b1", BusinessName: "Acme"}
	admin := &domain.Session{Role: domain.RoleAdmin, UserID: "root"}

	tests := []struct {
		name       string
		method     string
		path       string
		session    *domain.Session
		wantStatus int
	}{
		{"no token", http.MethodGet, "/api/purchases", nil, http.StatusUnauthorized},
		{"buyer on admin table", http.MethodGet, "/api/admin/purchases", buyer, http.StatusForbidden},
		{"business on buyer cascade", http.MethodGet, "/api/catalog/options?level=category", business, http.StatusForbidden},
		{"admin on business catalog", http.MethodGet, "/api/business/catalog", admin, http.StatusForbidden},
		{"buyer on account approval", http.MethodPatch, "/api/admin/accounts/buyers/u2/approve", buyer, http.StatusForbidden},
		{"unknown route", http.MethodGet, "/api/nothing", admin, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)
			rec := f.do(t, tt.method, tt.path, tt.session)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_AdminPurchases(t *testing.T) {
	f := newRouterFixture(t)
	f.purchases.EXPECT().
		ListAll(mock.Anything, mock.AnythingOfType("catalog.Query")).
		Return(catalog.PurchaseView{}, nil).
		Once()

	rec := f.do(t, http.MethodGet, "/api/admin/purchases?field=buyerName&keyword=kim", &domain.Session{Role: domain.RoleAdmin, UserID: "root"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_BusinessCatalog(t *testing.T) {
	f := newRouterFixture(t)
	session := &domain.Session{Role: domain.RoleBusiness, UserID: "acme", BusinessID: "b1", BusinessName: "Acme"}
	f.catalog.EXPECT().
		BusinessTree(mock.Anything, mock.MatchedBy(func(s domain.Session) bool { return s.BusinessID == "b1" }), "sofa").
		Return(catalog.CategoryTree{}, nil).
		Once()

	rec := f.do(t, http.MethodGet, "/api/business/catalog?search=sofa", session)
	assert.Equal(t, http.StatusOK, rec.Code)
}
