package handlers

import (
	"net/http"
	"strconv"

	"github.com/avc/storefront-gateway/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler обслуживает таблицы и одобрение учетных записей
type AdminHandler struct {
	adminService AdminService
	logger       *zap.Logger
}

// NewAdminHandler создает новый AdminHandler
func NewAdminHandler(adminService AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

func accountKindFrom(w http.ResponseWriter, r *http.Request) (domain.AccountKind, bool) {
	kind, ok := domain.ParseAccountKind(chi.URLParam(r, "kind"))
	if !ok {
		http.Error(w, "Not Found", http.StatusNotFound)
	}
	return kind, ok
}

// Accounts возвращает таблицу учетных записей. Параметр approved необязателен.
func (h *AdminHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	kind, ok := accountKindFrom(w, r)
	if !ok {
		return
	}

	var approved *bool
	if raw := r.URL.Query().Get("approved"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, "approved must be true or false", http.StatusBadRequest)
			return
		}
		approved = &v
	}

	view, err := h.adminService.Accounts(r.Context(), kind, approved, tableQuery(r, "name"))
	if err != nil {
		writeError(w, h.logger, err, "failed to list accounts")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, view)
}

func (h *AdminHandler) Account(w http.ResponseWriter, r *http.Request) {
	kind, ok := accountKindFrom(w, r)
	if !ok {
		return
	}

	acc, err := h.adminService.Account(r.Context(), kind, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err, "failed to get account")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, acc)
}

func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	kind, ok := accountKindFrom(w, r)
	if !ok {
		return
	}

	if err := h.adminService.Approve(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err, "failed to approve account")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
