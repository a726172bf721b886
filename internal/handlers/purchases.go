package handlers

import (
	"net/http"

	"github.com/avc/storefront-gateway/internal/catalog"
	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/avc/storefront-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PurchasesHandler обслуживает покупки всех трех ролей
type PurchasesHandler struct {
	purchaseService PurchaseService
	logger          *zap.Logger
}

// NewPurchasesHandler создает новый PurchasesHandler
func NewPurchasesHandler(purchaseService PurchaseService, logger *zap.Logger) *PurchasesHandler {
	return &PurchasesHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

type quoteRequest struct {
	Draft   catalog.Draft    `json:"draft"`
	Actions []catalog.Action `json:"actions"`
}

type statusRequest struct {
	Status domain.PurchaseStatus `json:"status"`
}

// Quote применяет действия к черновику и возвращает пересчитанную форму
func (h *PurchasesHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	view, err := h.purchaseService.Quote(r.Context(), req.Draft, req.Actions)
	if err != nil {
		writeError(w, h.logger, err, "failed to quote purchase")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var draft catalog.Draft
	if err := decodeJSON(r, &draft); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	purchase, err := h.purchaseService.Create(r.Context(), session, draft)
	if err != nil {
		writeError(w, h.logger, err, "failed to create purchase")
		return
	}
	writeJSON(w, h.logger, http.StatusCreated, purchase)
}

// List возвращает покупки покупателя
func (h *PurchasesHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	view, err := h.purchaseService.ListForBuyer(r.Context(), session, tableQuery(r, "productName"))
	if err != nil {
		writeError(w, h.logger, err, "failed to list purchases")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

// Get возвращает покупку; доступ проверяет сервис по роли сессии
func (h *PurchasesHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	purchase, err := h.purchaseService.Get(r.Context(), session, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "failed to get purchase")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, purchase)
}

func (h *PurchasesHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var edit domain.PurchaseEdit
	if err := decodeJSON(r, &edit); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	purchase, err := h.purchaseService.Update(r.Context(), session, chi.URLParam(r, "id"), edit)
	if err != nil {
		writeError(w, h.logger, err, "failed to update purchase")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, purchase)
}

func (h *PurchasesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	if err := h.purchaseService.Delete(r.Context(), session, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err, "failed to delete purchase")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OptionPurchases возвращает покупки одной опции товара бизнеса
func (h *PurchasesHandler) OptionPurchases(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opt := service.OptionFilter{
		ItemCategory: q.Get("itemCategory"),
		ProductName:  q.Get("productName"),
		Option:       q.Get("option"),
	}

	view, err := h.purchaseService.ListForOption(r.Context(), session, opt, tableQuery(r, "buyerName"))
	if err != nil {
		writeError(w, h.logger, err, "failed to list option purchases")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

// UpdateStatus подтверждает или отменяет покупку
func (h *PurchasesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	purchase, err := h.purchaseService.UpdateStatus(r.Context(), session, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, h.logger, err, "failed to update purchase status")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, purchase)
}

// AdminList возвращает таблицу всех покупок
func (h *PurchasesHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	view, err := h.purchaseService.ListAll(r.Context(), tableQuery(r, "buyerName"))
	if err != nil {
		writeError(w, h.logger, err, "failed to list purchases")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}
