package app

import (
	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/avc/storefront-gateway/internal/handlers"
	"github.com/avc/storefront-gateway/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, jwtManager *jwt.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps.handlers, jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r chi.Router, h *handlerSet, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/login", h.auth.Login)
	r.Post("/api/register/buyer", h.auth.RegisterBuyer)
	r.Post("/api/register/business", h.auth.RegisterBusiness)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		// Покупатель
		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireRole(domain.RoleBuyer))

			r.Get("/api/me", h.auth.Me)
			r.Patch("/api/me", h.auth.UpdateMe)

			r.Get("/api/catalog/options", h.catalog.Options)
			r.Get("/api/catalog/price", h.catalog.Price)

			r.Post("/api/purchases/quote", h.purchases.Quote)
			r.Post("/api/purchases", h.purchases.Create)
			r.Get("/api/purchases", h.purchases.List)
			r.Get("/api/purchases/{id}", h.purchases.Get)
			r.Put("/api/purchases/{id}", h.purchases.Update)
			r.Delete("/api/purchases/{id}", h.purchases.Delete)
		})

		// Бизнес
		r.Route("/api/business", func(r chi.Router) {
			r.Use(handlers.RequireRole(domain.RoleBusiness))

			r.Get("/catalog", h.catalog.BusinessCatalog)
			r.Post("/products", h.catalog.CreateProduct)
			r.Patch("/products/{id}", h.catalog.UpdateProduct)
			r.Delete("/products/{id}", h.catalog.DeleteProduct)

			r.Get("/option-purchases", h.purchases.OptionPurchases)
			r.Get("/purchases/{id}", h.purchases.Get)
			r.Patch("/purchases/{id}/status", h.purchases.UpdateStatus)
		})

		// Администратор
		r.Route("/api/admin", func(r chi.Router) {
			r.Use(handlers.RequireRole(domain.RoleAdmin))

			r.Get("/purchases", h.purchases.AdminList)
			r.Get("/purchases/{id}", h.purchases.Get)

			r.Get("/accounts/{kind}", h.admin.Accounts)
			r.Get("/accounts/{kind}/{id}", h.admin.Account)
			r.Patch("/accounts/{kind}/{id}/approve", h.admin.Approve)
		})
	})
}
