package handlers

import (
	"net/http"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler обслуживает каскадный выбор покупателя и товары бизнеса
type CatalogHandler struct {
	catalogService CatalogService
	logger         *zap.Logger
}

// NewCatalogHandler создает новый CatalogHandler
func NewCatalogHandler(catalogService CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

type optionsResponse struct {
	Level   string   `json:"level"`
	Options []string `json:"options"`
}

type priceResponse struct {
	Price int64 `json:"price"`
}

func selectionFrom(r *http.Request) catalog.Selection {
	q := r.URL.Query()
	return catalog.Selection{
		Category: q.Get("category"),
		Business: q.Get("business"),
		Product:  q.Get("product"),
		Option:   q.Get("option"),
	}
}

// Options возвращает варианты уровня каскада
func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	level, ok := catalog.ParseLevel(r.URL.Query().Get("level"))
	if !ok {
		http.Error(w, "unknown level", http.StatusBadRequest)
		return
	}

	options, err := h.catalogService.Options(r.Context(), level, selectionFrom(r))
	if err != nil {
		writeError(w, h.logger, err, "failed to resolve options")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, optionsResponse{Level: level.String(), Options: options})
}

// Price возвращает цену выбранного товара, 0 при отсутствии однозначного совпадения
func (h *CatalogHandler) Price(w http.ResponseWriter, r *http.Request) {
	price, err := h.catalogService.Price(r.Context(), selectionFrom(r))
	if err != nil {
		writeError(w, h.logger, err, "failed to resolve price")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, priceResponse{Price: price})
}

// BusinessCatalog возвращает дерево категорий бизнеса
func (h *CatalogHandler) BusinessCatalog(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	tree, err := h.catalogService.BusinessTree(r.Context(), session, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, h.logger, err, "failed to build catalog tree")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, tree)
}

func (h *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var in domain.ProductInput
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.CreateProduct(r.Context(), session, in)
	if err != nil {
		writeError(w, h.logger, err, "failed to create product")
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var in domain.ProductInput
	if err := decodeJSON(r, &in); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	product, err := h.catalogService.UpdateProduct(r.Context(), session, chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, h.logger, err, "failed to update product")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteProduct(r.Context(), session, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err, "failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
